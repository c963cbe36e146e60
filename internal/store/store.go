package store

import (
	"context"
	"fmt"
	"net/http"

	"github.com/csbs-dept/portal-api/internal/kvstore"
	"github.com/csbs-dept/portal-api/internal/models"
	"github.com/csbs-dept/portal-api/internal/session"
)

// Backend names the storage strategy behind the facade.
type Backend string

const (
	BackendLocal  Backend = "local"
	BackendRemote Backend = "remote"
)

// Options configures New. Exactly one backend is bound for the life of the
// store.
type Options struct {
	Backend Backend

	// Local backend: path of the embedded store and the credential pair the
	// local authenticator accepts.
	StorePath     string
	AdminUsername string
	AdminPassword string

	// Remote backend: service base URL, e.g. "http://localhost:5000/api".
	// HTTPClient defaults to a client with the transport's default timeouts.
	BaseURL    string
	HTTPClient *http.Client
}

// Store is the facade everything above the data layer talks to. The typed
// collections all satisfy the same contract regardless of backend.
type Store struct {
	Notices      Collection[models.Notice, models.NoticePatch]
	Events       Collection[models.Event, models.EventPatch]
	Faculty      Collection[models.Faculty, models.FacultyPatch]
	Students     Collection[models.Student, models.StudentPatch]
	Achievements Collection[models.Achievement, models.AchievementPatch]

	regs    registrations
	session *session.Holder
}

// New builds a store bound to the configured backend. The local backend is
// seeded on first open.
func New(ctx context.Context, opts Options) (*Store, error) {
	switch opts.Backend {
	case BackendLocal:
		return newLocalStore(ctx, opts)
	case BackendRemote:
		return newRemoteStore(opts), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", opts.Backend)
	}
}

func newLocalStore(ctx context.Context, opts Options) (*Store, error) {
	kv, err := kvstore.Open(opts.StorePath)
	if err != nil {
		return nil, fmt.Errorf("open local store: %w", err)
	}
	if err := initialize(ctx, kv); err != nil {
		return nil, fmt.Errorf("seed local store: %w", err)
	}
	ids := newIDAllocator()
	return &Store{
		Notices:      &localCollection[models.Notice, *models.Notice, models.NoticePatch]{kv: kv, name: Notices, ids: ids},
		Events:       &localCollection[models.Event, *models.Event, models.EventPatch]{kv: kv, name: Events, ids: ids},
		Faculty:      &localCollection[models.Faculty, *models.Faculty, models.FacultyPatch]{kv: kv, name: Faculty, ids: ids},
		Students:     &localCollection[models.Student, *models.Student, models.StudentPatch]{kv: kv, name: Students, ids: ids},
		Achievements: &localCollection[models.Achievement, *models.Achievement, models.AchievementPatch]{kv: kv, name: Achievements, ids: ids},
		regs:         &localRegistrations{kv: kv, ids: ids},
		session: session.NewHolder(session.Local{
			Username: opts.AdminUsername,
			Password: opts.AdminPassword,
		}),
	}, nil
}

func newRemoteStore(opts Options) *Store {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	holder := session.NewHolder(&session.Remote{BaseURL: opts.BaseURL, Client: httpClient})
	c := &client{baseURL: opts.BaseURL, http: httpClient, session: holder}
	return &Store{
		Notices:      &remoteCollection[models.Notice, models.NoticePatch]{c: c, name: Notices},
		Events:       &remoteCollection[models.Event, models.EventPatch]{c: c, name: Events},
		Faculty:      &remoteCollection[models.Faculty, models.FacultyPatch]{c: c, name: Faculty},
		Students:     &remoteCollection[models.Student, models.StudentPatch]{c: c, name: Students},
		Achievements: &remoteCollection[models.Achievement, models.AchievementPatch]{c: c, name: Achievements},
		regs:         &remoteRegistrations{c: c},
		session:      holder,
	}
}

// Registrations lists event registrations, newest first. eventID 0 means all
// events. Registrations for a deleted event are still returned.
func (s *Store) Registrations(ctx context.Context, eventID uint) []models.Registration {
	return s.regs.List(ctx, eventID)
}

// Register submits a public event registration.
func (s *Store) Register(ctx context.Context, reg *models.Registration) (*models.Registration, error) {
	return s.regs.Create(ctx, reg)
}

func (s *Store) DeleteRegistration(ctx context.Context, id uint) bool {
	return s.regs.Delete(ctx, id)
}

func (s *Store) Login(ctx context.Context, username, password string) error {
	return s.session.Login(ctx, username, password)
}

func (s *Store) Logout() { s.session.Logout() }

func (s *Store) IsAuthenticated() bool { return s.session.IsAuthenticated() }
