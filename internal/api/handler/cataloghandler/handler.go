// Package cataloghandler implements the HTTP endpoints of the travel package
// catalog. Every /api endpoint answers with status 200; the outcome is carried
// by the "message" field of the JSON payload.
package cataloghandler

import (
	"context"
	"net/http"
	"travelcatalog/internal/catalog"
	"travelcatalog/pkg/logger"
	"travelcatalog/pkg/serrors"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// Response messages understood by the catalog UI.
const (
	MsgPackageSaved   = "Package Saved Successfully"
	MsgPackageDeleted = "Package deleted successfully"
	MsgDeleteFailed   = "Error deleting package"
	MsgFetchFailed    = "Error fetching packages"
)

const (
	contentTypeJSON   = "application/json; charset=utf-8"
	statusOK          = "ok"
	statusUnavailable = "unavailable"
)

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Deps struct {
	Catalog catalog.Catalog
	Pinger  Pinger
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{
		deps: deps,
	}
}

func writeJSON(w http.ResponseWriter, status int, e *jx.Encoder) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_, _ = w.Write(e.Bytes())
}

func writeMessage(w http.ResponseWriter, msg string) {
	var e jx.Encoder
	encodeMessage(&e, msg)
	writeJSON(w, http.StatusOK, &e)
}

// messageOf returns the client facing text of err. Validation and duplicate
// errors carry their own message; anything else reports the full chain.
func messageOf(err error) string {
	var sErr *serrors.Error
	if errors.As(err, &sErr) && sErr.Message() != "" {
		switch sErr.Kind() {
		case serrors.ErrValidation, serrors.ErrDuplicateKey:
			return sErr.Message()
		}
	}

	return err.Error()
}

// logFailure logs err at a level matching its kind.
func logFailure(ctx context.Context, msg string, err error) {
	switch serrors.KindOf(err) {
	case serrors.ErrValidation, serrors.ErrDuplicateKey:
		logger.Debug(ctx, msg, zap.Error(err))
	default:
		logger.Error(ctx, msg, zap.Error(err))
	}
}
