package serrors_test

import (
	"errors"
	"fmt"
	"testing"
	"travelcatalog/pkg/serrors"

	"github.com/stretchr/testify/require"
)

type customError struct{ msg string }

func (e customError) Error() string { return e.msg }

func TestDefaultKindsDistinct(t *testing.T) {
	kinds := []serrors.Kind{
		serrors.ErrValidation,
		serrors.ErrDuplicateKey,
		serrors.ErrUnavailable,
		serrors.ErrInternal,
	}
	seen := map[serrors.Kind]bool{}
	for i, k := range kinds {
		require.NotNil(t, k, "kind at index %d is nil", i)
		require.False(t, seen[k], "kind at index %d is duplicate: %v", i, k)
		seen[k] = true
	}
}

func TestErrorFormatting(t *testing.T) {
	base := errors.New("db down")

	e1 := serrors.With(serrors.ErrDuplicateKey, "Package with code %s already exists", "P-001")
	require.Equal(t, "Package with code P-001 already exists", e1.Error())

	e2 := serrors.Wrap(serrors.ErrInternal, base, "listing packages")
	require.Equal(t, "listing packages: db down", e2.Error())

	e3 := serrors.With(serrors.ErrUnavailable, "")
	require.Equal(t, "UNAVAILABLE", e3.Error())

	var nilErr *serrors.Error
	require.Equal(t, "<nil>", nilErr.Error())
}

func TestIsMatchesKindAndWrapped(t *testing.T) {
	base := customError{"root cause"}
	e := serrors.Wrap(serrors.ErrValidation, base, "reading")

	require.ErrorIs(t, e, serrors.ErrValidation)
	require.ErrorIs(t, e, base)
	require.NotErrorIs(t, e, serrors.ErrDuplicateKey)
}

func TestAsMatchesKindAndWrapped(t *testing.T) {
	base := &customError{"root cause"}
	e := serrors.Wrap(serrors.ErrUnavailable, base, "reading")

	var k serrors.Kind
	require.ErrorAs(t, e, &k)
	require.Equal(t, serrors.ErrUnavailable, k)

	var ce *customError
	require.ErrorAs(t, e, &ce)
	require.Equal(t, base, ce)
}

func TestAccessors(t *testing.T) {
	base := errors.New("boom")
	e := serrors.Wrap(serrors.ErrUnavailable, base, "store unreachable")
	require.Equal(t, serrors.ErrUnavailable, e.Kind())
	require.Equal(t, "store unreachable", e.Message())
	require.Equal(t, base, errors.Unwrap(e))
}

func TestKindOf(t *testing.T) {
	require.Nil(t, serrors.KindOf(nil))
	require.Equal(t, serrors.ErrInternal, serrors.KindOf(errors.New("plain")))
	require.Equal(t, serrors.ErrValidation, serrors.KindOf(serrors.With(serrors.ErrValidation, "bad")))

	wrapped := fmt.Errorf("outer: %w", serrors.With(serrors.ErrDuplicateKey, "dup"))
	require.Equal(t, serrors.ErrDuplicateKey, serrors.KindOf(wrapped))
}
