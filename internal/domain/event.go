package domain

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for event operations.
var (
	ErrEventNotFound      = errors.New("event not found")
	ErrDuplicateEventName = errors.New("an event with this name already exists")
)

// Event is a named record administered through this backend.
// The slug is derived from the name and doubles as the URL path segment.
type Event struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewEvent returns a new Event with the given fields. ID is set by the repository on create.
func NewEvent(name, slug, description string, createdAt, updatedAt time.Time) *Event {
	return &Event{
		Name:        name,
		Slug:        slug,
		Description: description,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// EventInput carries the submitted form fields for create and update.
// The validate tags are the structural rules of the validation stage.
type EventInput struct {
	Name        string `validate:"required,max=64"`
	Description string `validate:"required,max=1000"`
}

// EventRepository defines the interface for event storage.
// Create and Update return ErrDuplicateEventName when a name or slug
// unique constraint is violated.
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	GetByName(ctx context.Context, name string) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
	Update(ctx context.Context, event *Event) error
}

// EventService defines the business logic for event administration.
// Create and Update return *ValidationError when the validation stage
// rejects the input, and ErrEventNotFound when the slug resolves nothing.
type EventService interface {
	List(ctx context.Context) ([]*Event, error)
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	Create(ctx context.Context, input EventInput) (*Event, error)
	Update(ctx context.Context, slug string, input EventInput) (*Event, error)
}
