package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"eventadmin/internal/delivery/http/views"
	"eventadmin/internal/domain"
)

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
	Views   *views.Renderer
}

func NewEventController(logger *slog.Logger, svc domain.EventService, renderer *views.Renderer) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
		Views:   renderer,
	}
}

// Index renders the event list with the creation form.
func (c *EventController) Index(w http.ResponseWriter, r *http.Request) {
	page := newPage(r, "Events")
	events, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "failed to list events", "err", err)
		c.Views.Error(w, page)
		return
	}
	page.Events = events
	c.Views.Render(w, http.StatusOK, "events", page)
}

// Create handles the event creation form. Validation failures re-render the
// list page with the accumulated messages and the submitted values echoed
// back into the form.
func (c *EventController) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		c.Views.Render(w, http.StatusBadRequest, "events", newPage(r, "Events"))
		return
	}
	input := domain.EventInput{
		Name:        r.PostFormValue("name"),
		Description: r.PostFormValue("description"),
	}
	_, err := c.Service.Create(r.Context(), input)
	if err == nil {
		http.Redirect(w, r, "/users", http.StatusSeeOther)
		return
	}

	page := newPage(r, "Events")
	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		c.Logger.ErrorContext(r.Context(), "failed to create event", "err", err)
		c.Views.Error(w, page)
		return
	}
	for _, f := range vErr.Fields {
		page.Errors = append(page.Errors, f.Message)
	}
	page.Form = map[string]string{
		"name":        input.Name,
		"description": input.Description,
	}
	if events, listErr := c.Service.List(r.Context()); listErr == nil {
		page.Events = events
	}
	c.Views.Render(w, http.StatusOK, "events", page)
}

// Show renders a single event looked up by slug.
func (c *EventController) Show(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	page := newPage(r, "Event")
	event, err := c.Service.GetBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			c.Views.NotFound(w, page)
			return
		}
		c.Logger.ErrorContext(r.Context(), "failed to load event", "slug", slug, "err", err)
		c.Views.Error(w, page)
		return
	}
	page.Title = event.Name
	page.Event = event
	page.Form = map[string]string{
		"name":        event.Name,
		"description": event.Description,
	}
	c.Views.Render(w, http.StatusOK, "event", page)
}

// Update handles the event edit form. The slug in the URL identifies the
// event; a rename recomputes the slug, so the redirect always goes back to
// the list rather than the possibly stale detail URL.
func (c *EventController) Update(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	if err := r.ParseForm(); err != nil {
		c.Views.Render(w, http.StatusBadRequest, "events", newPage(r, "Events"))
		return
	}
	input := domain.EventInput{
		Name:        r.PostFormValue("name"),
		Description: r.PostFormValue("description"),
	}
	_, err := c.Service.Update(r.Context(), slug, input)
	if err == nil {
		http.Redirect(w, r, "/users", http.StatusSeeOther)
		return
	}

	page := newPage(r, "Event")
	if errors.Is(err, domain.ErrEventNotFound) {
		c.Views.NotFound(w, page)
		return
	}
	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) {
		c.Logger.ErrorContext(r.Context(), "failed to update event", "slug", slug, "err", err)
		c.Views.Error(w, page)
		return
	}
	event, getErr := c.Service.GetBySlug(r.Context(), slug)
	if getErr != nil {
		c.Views.Error(w, page)
		return
	}
	page.Title = event.Name
	page.Event = event
	for _, f := range vErr.Fields {
		page.Errors = append(page.Errors, f.Message)
	}
	page.Form = map[string]string{
		"name":        input.Name,
		"description": input.Description,
	}
	c.Views.Render(w, http.StatusOK, "event", page)
}
