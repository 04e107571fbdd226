package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	h "eventadmin/internal/delivery/http/helpers"
	"eventadmin/internal/delivery/http/middleware"
	"eventadmin/internal/delivery/http/views"
	"eventadmin/internal/domain"
)

type AuthController struct {
	Logger     *slog.Logger
	Service    domain.AuthService
	Views      *views.Renderer
	SessionTTL time.Duration
	// SecureCookies marks session cookies Secure; off in local development
	// where the server speaks plain HTTP.
	SecureCookies bool
}

func NewAuthController(logger *slog.Logger, svc domain.AuthService, renderer *views.Renderer, sessionTTL time.Duration, secureCookies bool) *AuthController {
	return &AuthController{
		Logger:        logger,
		Service:       svc,
		Views:         renderer,
		SessionTTL:    sessionTTL,
		SecureCookies: secureCookies,
	}
}

// LoginForm renders the login form, surfacing any pending flash message.
// Logged-in browsers are sent back to the event list instead.
func (c *AuthController) LoginForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.PrincipalFromContext(r.Context()); ok {
		http.Redirect(w, r, "/users", http.StatusFound)
		return
	}
	page := newPage(r, "Log in")
	page.Message = h.PopFlash(w, r)
	c.Views.Render(w, http.StatusOK, "login", page)
}

// Login handles the login form. Failure leaves a flash message and sends the
// browser back to the form; success sets the session cookie and lands on the
// event list.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, "/users/login", http.StatusFound)
		return
	}
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	token, err := c.Service.Login(r.Context(), username, password)
	if err != nil {
		if !errors.Is(err, domain.ErrInvalidCredentials) {
			c.Logger.ErrorContext(r.Context(), "login failed", "err", err)
			c.Views.Error(w, newPage(r, "Log in"))
			return
		}
		h.SetFlash(w, "Invalid username or password.")
		http.Redirect(w, r, "/users/login", http.StatusFound)
		return
	}

	h.SetSessionCookie(w, token, c.SessionTTL, c.SecureCookies)
	http.Redirect(w, r, "/users", http.StatusSeeOther)
}

// Logout revokes the session behind the cookie, clears the cookie, and sends
// the browser to the site root.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(h.SessionCookieName); err == nil && cookie.Value != "" {
		if err := c.Service.Logout(r.Context(), cookie.Value); err != nil {
			c.Logger.ErrorContext(r.Context(), "failed to revoke session", "err", err)
		}
	}
	h.ClearSessionCookie(w)
	http.Redirect(w, r, "/", http.StatusFound)
}
