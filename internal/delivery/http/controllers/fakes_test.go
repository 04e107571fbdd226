package controllers

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"eventadmin/internal/delivery/http/views"
	"eventadmin/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testRenderer(t *testing.T) *views.Renderer {
	t.Helper()
	renderer, err := views.NewRenderer(testLogger())
	require.NoError(t, err)
	return renderer
}

// fakeEventService implements domain.EventService for controller tests.
type fakeEventService struct {
	events    []*domain.Event
	bySlug    map[string]*domain.Event
	createErr error
	updateErr error
	listErr   error
}

func newFakeEventService() *fakeEventService {
	return &fakeEventService{bySlug: make(map[string]*domain.Event)}
}

func (f *fakeEventService) add(e *domain.Event) {
	f.events = append(f.events, e)
	f.bySlug[e.Slug] = e
}

func (f *fakeEventService) List(ctx context.Context) ([]*domain.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.events, nil
}

func (f *fakeEventService) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	if e, ok := f.bySlug[slug]; ok {
		return e, nil
	}
	return nil, domain.ErrEventNotFound
}

func (f *fakeEventService) Create(ctx context.Context, input domain.EventInput) (*domain.Event, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	e := &domain.Event{ID: "e-new", Name: input.Name, Slug: domain.Slugify(input.Name), Description: input.Description}
	f.add(e)
	return e, nil
}

func (f *fakeEventService) Update(ctx context.Context, slug string, input domain.EventInput) (*domain.Event, error) {
	e, ok := f.bySlug[slug]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	e.Name = input.Name
	e.Description = input.Description
	return e, nil
}

// fakeUserService implements domain.UserService for controller tests.
type fakeUserService struct {
	users       []*domain.User
	registerErr error
	registered  []string
}

func (f *fakeUserService) Register(ctx context.Context, name, username, password, confirm string) (*domain.User, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	f.registered = append(f.registered, username)
	return &domain.User{ID: "u-new", Name: name, Username: username}, nil
}

func (f *fakeUserService) List(ctx context.Context) ([]*domain.User, error) {
	return f.users, nil
}

// fakeAuthService implements domain.AuthService for controller tests.
type fakeAuthService struct {
	loginToken   string
	loginErr     error
	principal    *domain.Principal
	principalErr error
	loggedOut    []string
}

func (f *fakeAuthService) Login(ctx context.Context, username, password string) (string, error) {
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return f.loginToken, nil
}

func (f *fakeAuthService) Principal(ctx context.Context, token string) (*domain.Principal, error) {
	if f.principalErr != nil {
		return nil, f.principalErr
	}
	return f.principal, nil
}

func (f *fakeAuthService) Logout(ctx context.Context, token string) error {
	f.loggedOut = append(f.loggedOut, token)
	return nil
}

func (f *fakeAuthService) PurgeExpiredSessions(ctx context.Context) (int64, error) { return 0, nil }
