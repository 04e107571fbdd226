package controllers

import (
	"net/http"

	"github.com/gorilla/csrf"

	"eventadmin/internal/delivery/http/middleware"
	"eventadmin/internal/delivery/http/views"
)

// newPage builds the base view model for a request: title, the logged-in
// principal when present, and the CSRF field for forms.
func newPage(r *http.Request, title string) views.Page {
	page := views.Page{
		Title:     title,
		CSRFField: csrf.TemplateField(r),
	}
	if principal, ok := middleware.PrincipalFromContext(r.Context()); ok {
		page.Username = principal.Username
		page.Admin = principal.Admin
	}
	return page
}
