package postgres

import (
	"errors"
	"fmt"
	"travelcatalog/pkg/storage"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// classifyError maps connection failures and constraint violations reported
// by PostgreSQL onto the storage sentinels. Other errors are returned unchanged.
func classifyError(err error) error {
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return fmt.Errorf("%w: %w", storage.ErrUnavailable, err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return fmt.Errorf("%w: %s", storage.ErrDuplicatePackageCode, pgErr.ConstraintName)
	case pgerrcode.CheckViolation, pgerrcode.NotNullViolation:
		return fmt.Errorf("%w: %s", storage.ErrInvalidPackage, pgErr.Message)
	default:
		return err
	}
}
