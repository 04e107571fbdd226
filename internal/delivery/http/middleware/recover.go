package middleware

import (
	"log/slog"
	"net/http"

	"eventadmin/internal/delivery/http/views"
)

// RecoverMiddleware converts a handler panic into the generic error page so
// the browser never sees a stack trace or a dropped connection.
func RecoverMiddleware(logger *slog.Logger, renderer *views.Renderer, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("panic recovered",
					"method", r.Method,
					"path", r.URL.Path,
					"panic", rec,
				)
				renderer.Error(w, views.Page{})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
