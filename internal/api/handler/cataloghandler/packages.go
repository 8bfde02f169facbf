package cataloghandler

import (
	"net/http"
	"travelcatalog/pkg/logger"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// ListPackages handles GET /api/packages.
func (h Handler) ListPackages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	pkgs, err := h.deps.Catalog.List(ctx)
	if err != nil {
		logFailure(ctx, "could not list packages", err)
		writeMessage(w, MsgFetchFailed)

		return
	}

	var e jx.Encoder
	encodePackages(&e, pkgs)
	writeJSON(w, http.StatusOK, &e)
}

// AddPackage handles POST /api/addPackage.
func (h Handler) AddPackage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := readBody(w, r)
	if err != nil {
		logger.Debug(ctx, "could not read add request", zap.Error(err))
		writeMessage(w, err.Error())

		return
	}

	in, err := decodeInput(body)
	if err != nil {
		logger.Debug(ctx, "could not decode add request", zap.Error(err))
		writeMessage(w, messageOf(err))

		return
	}

	_, err = h.deps.Catalog.Add(ctx, in)
	if err != nil {
		logFailure(ctx, "could not add package", err)
		writeMessage(w, messageOf(err))

		return
	}

	writeMessage(w, MsgPackageSaved)
}

// DeletePackage handles POST /api/deletePackage.
func (h Handler) DeletePackage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := readBody(w, r)
	if err == nil {
		var id string
		id, err = decodeID(body)
		if err == nil {
			err = h.deps.Catalog.Delete(ctx, id)
		}
	}
	if err != nil {
		logFailure(ctx, "could not delete package", err)
		writeMessage(w, MsgDeleteFailed)

		return
	}

	writeMessage(w, MsgPackageDeleted)
}
