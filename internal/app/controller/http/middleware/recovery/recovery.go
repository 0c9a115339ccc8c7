package recovery

import (
	"net/http"

	"go.uber.org/zap"
)

// RecoveryMiddleware turns a handler panic into the given fault response.
// The panic value is logged, never written to the client.
func RecoveryMiddleware(fault func(w http.ResponseWriter)) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}

				zap.L().Error(
					"panic while handling HTTP request",
					zap.String("uri", r.URL.Path),
					zap.String("method", r.Method),
					zap.Any("panic", rec),
					zap.Stack("stack"),
				)
				fault(w)
			}()

			h.ServeHTTP(w, r)
		}

		return http.HandlerFunc(fn)
	}
}
