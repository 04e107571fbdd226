package middleware

import (
	"context"
	"log/slog"
	"net/http"

	h "eventadmin/internal/delivery/http/helpers"
	"eventadmin/internal/domain"
)

type contextKey string

const principalKey contextKey = "principal"

// SetPrincipal returns a context with the authenticated principal set.
// Used by session middleware.
func SetPrincipal(ctx context.Context, p *domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// PrincipalFromContext returns the authenticated principal from the context, if present.
func PrincipalFromContext(ctx context.Context) (*domain.Principal, bool) {
	p, ok := ctx.Value(principalKey).(*domain.Principal)
	return p, ok
}

// RequireSession returns a wrapper that resolves the session cookie and sets
// the principal in the request context. Browsers without a valid session are
// redirected to the login form instead of receiving a bare status code.
func RequireSession(auth domain.AuthService, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(h.SessionCookieName)
			if err != nil || cookie.Value == "" {
				http.Redirect(w, r, "/users/login", http.StatusFound)
				return
			}
			principal, err := auth.Principal(r.Context(), cookie.Value)
			if err != nil {
				h.ClearSessionCookie(w)
				http.Redirect(w, r, "/users/login", http.StatusFound)
				return
			}
			r = r.WithContext(SetPrincipal(r.Context(), principal))
			next(w, r)
		}
	}
}

// WithPrincipal returns a wrapper that attaches the principal when a valid
// session cookie is present but never blocks the request. Open pages use it
// so the navigation can reflect the login state.
func WithPrincipal(auth domain.AuthService) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if cookie, err := r.Cookie(h.SessionCookieName); err == nil && cookie.Value != "" {
				if principal, err := auth.Principal(r.Context(), cookie.Value); err == nil {
					r = r.WithContext(SetPrincipal(r.Context(), principal))
				}
			}
			next(w, r)
		}
	}
}
