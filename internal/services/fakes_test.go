package services

import (
	"context"
	"errors"
	"time"

	"eventadmin/internal/domain"
)

// fakeEventRepo implements domain.EventRepository for tests.
type fakeEventRepo struct {
	byName      map[string]*domain.Event
	bySlug      map[string]*domain.Event
	createCalls int
	createErr   error
	updateErr   error
	listErr     error
	updated     *domain.Event
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{
		byName: make(map[string]*domain.Event),
		bySlug: make(map[string]*domain.Event),
	}
}

func (f *fakeEventRepo) add(e *domain.Event) {
	f.byName[e.Name] = e
	f.bySlug[e.Slug] = e
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	e.ID = "event-created-1"
	f.add(e)
	return nil
}

func (f *fakeEventRepo) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	if e, ok := f.bySlug[slug]; ok {
		return e, nil
	}
	return nil, domain.ErrEventNotFound
}

func (f *fakeEventRepo) GetByName(ctx context.Context, name string) (*domain.Event, error) {
	if e, ok := f.byName[name]; ok {
		return e, nil
	}
	return nil, domain.ErrEventNotFound
}

func (f *fakeEventRepo) List(ctx context.Context) ([]*domain.Event, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	events := make([]*domain.Event, 0, len(f.bySlug))
	for _, e := range f.bySlug {
		events = append(events, e)
	}
	return events, nil
}

func (f *fakeEventRepo) Update(ctx context.Context, e *domain.Event) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.updated = e
	return nil
}

// fakeUserRepo implements domain.UserRepository for tests.
type fakeUserRepo struct {
	byUsername  map[string]*domain.User
	createCalls int
	createErr   error
	listErr     error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byUsername: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *domain.User) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	u.ID = "user-created-1"
	f.byUsername[u.Username] = u
	return nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if u, ok := f.byUsername[username]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (f *fakeUserRepo) List(ctx context.Context) ([]*domain.User, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	users := make([]*domain.User, 0, len(f.byUsername))
	for _, u := range f.byUsername {
		users = append(users, u)
	}
	return users, nil
}

// fakeSessionRepo implements domain.SessionRepository for tests.
type fakeSessionRepo struct {
	byID      map[string]*domain.Session
	createErr error
	deleted   []string
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{byID: make(map[string]*domain.Session)}
}

func (f *fakeSessionRepo) Create(ctx context.Context, s *domain.Session) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.byID[s.ID] = s
	return nil
}

func (f *fakeSessionRepo) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	if s, ok := f.byID[id]; ok {
		return s, nil
	}
	return nil, domain.ErrInvalidSession
}

func (f *fakeSessionRepo) Delete(ctx context.Context, id string) error {
	delete(f.byID, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeSessionRepo) DeleteExpired(ctx context.Context) (int64, error) {
	var n int64
	for id, s := range f.byID {
		if s.ExpiresAt.Before(time.Now()) {
			delete(f.byID, id)
			n++
		}
	}
	return n, nil
}

// fakeHasher implements domain.PasswordHasher for tests.
type fakeHasher struct {
	hashErr    error
	compareErr error
}

func (f *fakeHasher) Hash(password string) (string, error) {
	if f.hashErr != nil {
		return "", f.hashErr
	}
	return "hash-" + password, nil
}

func (f *fakeHasher) Compare(hash, password string) error {
	if f.compareErr != nil {
		return f.compareErr
	}
	if hash != "hash-"+password {
		return errors.New("mismatch")
	}
	return nil
}

// fakeTokenCodec implements both session token ports for tests.
type fakeTokenCodec struct {
	issueErr  error
	verifyErr error
	sessionID string
	principal domain.Principal
}

func (f *fakeTokenCodec) Issue(sessionID string, principal domain.Principal, expiry time.Duration) (string, error) {
	if f.issueErr != nil {
		return "", f.issueErr
	}
	return "token-" + sessionID, nil
}

func (f *fakeTokenCodec) Verify(token string) (string, domain.Principal, error) {
	if f.verifyErr != nil {
		return "", domain.Principal{}, f.verifyErr
	}
	return f.sessionID, f.principal, nil
}

// fakeEmailService implements domain.EmailService for tests.
type fakeEmailService struct {
	notices []*domain.NewAccountEmailData
	err     error
}

func (f *fakeEmailService) SendNewAccountNotice(ctx context.Context, data *domain.NewAccountEmailData) error {
	if f.err != nil {
		return f.err
	}
	f.notices = append(f.notices, data)
	return nil
}
