package controller

import (
	"context"
	"net/http"
	"time"
)

// WithTimeout bounds the request context by d. Unlike http.TimeoutHandler it
// never writes a response itself: handlers observe the deadline through the
// context and report it in their own payload. A non-positive d disables it.
func WithTimeout(next http.Handler, d time.Duration) http.Handler {
	if d <= 0 {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), d)
		defer cancel()

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
