package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"eventadmin/internal/domain"
	"eventadmin/internal/sanitize"
)

const duplicateNameMessage = "an event with this name already exists"

type eventService struct {
	eventRepo domain.EventRepository
	validate  *validator.Validate
}

// NewEventService creates an EventService backed by the given repository.
func NewEventService(eventRepo domain.EventRepository) domain.EventService {
	return &eventService{
		eventRepo: eventRepo,
		validate:  validator.New(),
	}
}

func (s *eventService) List(ctx context.Context) ([]*domain.Event, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func (s *eventService) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	event, err := s.eventRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return event, nil
}

// Create runs the validation stage and, only when it passes, the creation
// transition. The duplicate lookup always happens before the write; the
// store's unique constraint is a backstop for concurrent submissions and
// maps to the same duplicate-name failure.
func (s *eventService) Create(ctx context.Context, input domain.EventInput) (*domain.Event, error) {
	input.Name = sanitize.Text(strings.TrimSpace(input.Name))

	fieldErrs, slug, err := s.runValidation(ctx, input, "")
	if err != nil {
		return nil, err
	}
	if len(fieldErrs) > 0 {
		return nil, &domain.ValidationError{Fields: fieldErrs}
	}

	now := time.Now()
	event := domain.NewEvent(input.Name, slug, sanitize.HTML(input.Description), now, now)
	if err := s.eventRepo.Create(ctx, event); err != nil {
		if errors.Is(err, domain.ErrDuplicateEventName) {
			return nil, &domain.ValidationError{Fields: []domain.FieldError{
				{Field: "name", Message: duplicateNameMessage},
			}}
		}
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return event, nil
}

// Update resolves the target by its current slug, runs the validation stage
// against the submitted fields, and persists under the existing identity
// with a freshly derived slug. Renaming an event to its own current name is
// not a conflict.
func (s *eventService) Update(ctx context.Context, slug string, input domain.EventInput) (*domain.Event, error) {
	current, err := s.eventRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrEventNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	input.Name = sanitize.Text(strings.TrimSpace(input.Name))

	fieldErrs, newSlug, err := s.runValidation(ctx, input, current.ID)
	if err != nil {
		return nil, err
	}
	if len(fieldErrs) > 0 {
		return nil, &domain.ValidationError{Fields: fieldErrs}
	}

	current.Name = input.Name
	current.Slug = newSlug
	current.Description = sanitize.HTML(input.Description)
	current.UpdatedAt = time.Now()
	if err := s.eventRepo.Update(ctx, current); err != nil {
		if errors.Is(err, domain.ErrDuplicateEventName) {
			return nil, &domain.ValidationError{Fields: []domain.FieldError{
				{Field: "name", Message: duplicateNameMessage},
			}}
		}
		if errors.Is(err, domain.ErrEventNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return current, nil
}

// runValidation accumulates structural and semantic field errors for one
// submission. currentID is the identity being edited, or "" on create; an
// existing event under the submitted name only conflicts when its identity
// differs.
func (s *eventService) runValidation(ctx context.Context, input domain.EventInput, currentID string) ([]domain.FieldError, string, error) {
	fieldErrs := s.structuralErrors(input)

	slug := domain.Slugify(input.Name)
	if input.Name != "" && slug == "" {
		fieldErrs = append(fieldErrs, domain.FieldError{Field: "name", Message: "name must contain letters or digits"})
	}

	existing, err := s.eventRepo.GetByName(ctx, input.Name)
	if err != nil && !errors.Is(err, domain.ErrEventNotFound) {
		return nil, "", fmt.Errorf("failed to look up event by name: %w", err)
	}
	if existing != nil && existing.ID != currentID {
		fieldErrs = append(fieldErrs, domain.FieldError{Field: "name", Message: duplicateNameMessage})
	}
	return fieldErrs, slug, nil
}

func (s *eventService) structuralErrors(input domain.EventInput) []domain.FieldError {
	err := s.validate.Struct(input)
	if err == nil {
		return nil
	}
	var validateErrs validator.ValidationErrors
	if !errors.As(err, &validateErrs) {
		return []domain.FieldError{{Field: "name", Message: "invalid input"}}
	}
	fieldErrs := make([]domain.FieldError, 0, len(validateErrs))
	for _, fe := range validateErrs {
		field := strings.ToLower(fe.Field())
		var msg string
		switch fe.Tag() {
		case "required":
			msg = field + " is required"
		case "max":
			msg = field + " must be at most " + fe.Param() + " characters"
		default:
			msg = field + " is invalid"
		}
		fieldErrs = append(fieldErrs, domain.FieldError{Field: field, Message: msg})
	}
	return fieldErrs
}
