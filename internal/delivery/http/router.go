package http

import (
	"log/slog"
	"net/http"

	"eventadmin/internal/delivery/http/controllers"
	"eventadmin/internal/delivery/http/middleware"
	"eventadmin/internal/delivery/http/views"
	"eventadmin/internal/domain"
)

// NewRouter wires all application routes. Literal segments win over the
// {slug} wildcard, so /users/login and friends are never shadowed by the
// event detail route.
func NewRouter(
	logger *slog.Logger,
	renderer *views.Renderer,
	auth domain.AuthService,
	eventController *controllers.EventController,
	userController *controllers.UserController,
	authController *controllers.AuthController,
) http.Handler {
	mux := http.NewServeMux()

	requireSession := middleware.RequireSession(auth, logger)
	withPrincipal := middleware.WithPrincipal(auth)

	// Events (session required)
	mux.HandleFunc("GET /users", requireSession(eventController.Index))
	mux.HandleFunc("POST /users", requireSession(eventController.Create))
	mux.HandleFunc("GET /users/{slug}", requireSession(eventController.Show))
	mux.HandleFunc("POST /users/{slug}", requireSession(eventController.Update))

	// Accounts
	mux.HandleFunc("GET /users/allusers", withPrincipal(userController.List))
	mux.HandleFunc("GET /users/register", withPrincipal(userController.RegisterForm))
	mux.HandleFunc("POST /users/register", userController.Register)
	mux.HandleFunc("GET /users/login", withPrincipal(authController.LoginForm))
	mux.HandleFunc("POST /users/login", authController.Login)
	mux.HandleFunc("GET /users/logout", authController.Logout)

	// Root and fallthrough
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/users", http.StatusFound)
	})
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		renderer.NotFound(w, views.Page{Title: "Not found"})
	})

	return middleware.LoggingMiddleware(logger, middleware.RecoverMiddleware(logger, renderer, mux))
}
