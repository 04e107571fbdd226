package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	h "eventadmin/internal/delivery/http/helpers"
	"eventadmin/internal/delivery/http/middleware"
	"eventadmin/internal/delivery/http/views"
	"eventadmin/internal/domain"
)

// registrationFailedMessage is deliberately generic: it covers a taken
// username and mismatched passwords alike, so the form never confirms
// whether a username exists.
const registrationFailedMessage = "Registration failed. Check that the username is available and both passwords match."

type UserController struct {
	Logger  *slog.Logger
	Service domain.UserService
	Views   *views.Renderer
}

func NewUserController(logger *slog.Logger, svc domain.UserService, renderer *views.Renderer) *UserController {
	return &UserController{
		Logger:  logger,
		Service: svc,
		Views:   renderer,
	}
}

// List renders the user directory.
func (c *UserController) List(w http.ResponseWriter, r *http.Request) {
	page := newPage(r, "Users")
	users, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "failed to list users", "err", err)
		c.Views.Error(w, page)
		return
	}
	page.Users = users
	c.Views.Render(w, http.StatusOK, "users", page)
}

// RegisterForm renders the registration form. Logged-in browsers are sent
// back to the event list instead.
func (c *UserController) RegisterForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := middleware.PrincipalFromContext(r.Context()); ok {
		http.Redirect(w, r, "/users", http.StatusFound)
		return
	}
	c.Views.Render(w, http.StatusOK, "register", newPage(r, "Register"))
}

// Register handles the registration form. All failure causes collapse into
// one generic message. Success redirects to the event list; the new account
// has no session yet, so the gate forwards to the login form, where the
// flash left here explains the bounce.
func (c *UserController) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		c.Views.Render(w, http.StatusBadRequest, "register", newPage(r, "Register"))
		return
	}
	name := r.PostFormValue("name")
	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	confirm := r.PostFormValue("password2")

	_, err := c.Service.Register(r.Context(), name, username, password, confirm)
	if err == nil {
		h.SetFlash(w, "Account created. Please log in.")
		http.Redirect(w, r, "/users", http.StatusSeeOther)
		return
	}

	page := newPage(r, "Register")
	if !errors.Is(err, domain.ErrRegistrationConflict) {
		c.Logger.ErrorContext(r.Context(), "failed to register user", "err", err)
		c.Views.Error(w, page)
		return
	}
	page.Errors = []string{registrationFailedMessage}
	page.Form = map[string]string{
		"name":     name,
		"username": username,
	}
	c.Views.Render(w, http.StatusOK, "register", page)
}
