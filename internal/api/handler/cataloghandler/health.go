package cataloghandler

import (
	"net/http"
	"travelcatalog/pkg/logger"

	"github.com/go-faster/jx"
	"go.uber.org/zap"
)

// Health handles GET /health. It answers 503 when the store cannot be reached.
func (h Handler) Health(w http.ResponseWriter, r *http.Request) {
	status, code := statusOK, http.StatusOK
	if err := h.deps.Pinger.Ping(r.Context()); err != nil {
		logger.Warn(r.Context(), "store ping failed", zap.Error(err))
		status, code = statusUnavailable, http.StatusServiceUnavailable
	}

	var e jx.Encoder
	e.Obj(func(e *jx.Encoder) {
		e.Field("status", func(e *jx.Encoder) { e.Str(status) })
	})
	writeJSON(w, code, &e)
}
