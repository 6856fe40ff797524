// Package session owns the client's authentication state: the current
// user, the bearer token, and the authenticated flag. The in-memory state
// and its durable mirror are written only by this package's mutators;
// every mutation persists a versioned envelope so the session survives
// restarts.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/povreview/povcli/internal/client/api"
	"github.com/povreview/povcli/internal/client/models"
	"github.com/povreview/povcli/internal/client/storage"
	"github.com/povreview/povcli/internal/logging"
)

// AuthAPI is the slice of the backend client the store depends on.
// *api.Client satisfies it; tests provide fakes.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*api.AuthResponse, error)
	Register(ctx context.Context, name, email, password string) (*api.AuthResponse, error)
	GetProfile(ctx context.Context) (*models.User, error)
	Logout(ctx context.Context) error
	Token(ctx context.Context) (string, error)
}

// Snapshot is a point-in-time copy of the session state, the value the
// authorization policy evaluates against.
//
// Invariant: IsAuthenticated is true iff Token is non-empty. User may lag
// Token only inside a Login call; by the time Login returns, both are set
// together.
type Snapshot struct {
	User            *models.User
	Token           string
	IsAuthenticated bool
}

// Store is the session state container. Construct one per client; the
// zero value is not usable.
type Store struct {
	auth AuthAPI
	repo storage.Repository
	log  logging.Logger

	mu    sync.RWMutex
	state Snapshot
}

// NewStore builds a Store and rehydrates it from the persisted envelope.
// An absent, corrupt, or version-mismatched envelope yields Anonymous.
func NewStore(ctx context.Context, auth AuthAPI, repo storage.Repository, log logging.Logger) *Store {
	s := &Store{auth: auth, repo: repo, log: log}

	data, err := repo.Get(ctx, storage.KeySession)
	if err != nil || len(data) == 0 {
		return s
	}
	restored, err := unmarshalEnvelope(data)
	if err != nil {
		log.Warn(ctx, "discarding persisted session", "error", err)
		return s
	}
	s.state = restored
	return s
}

// persistLocked writes the current state's envelope. Callers hold mu.
func (s *Store) persistLocked(ctx context.Context) error {
	data, err := marshalEnvelope(s.state)
	if err != nil {
		return err
	}
	return s.repo.Set(ctx, storage.KeySession, data)
}

// Login authenticates and commits {user, token, authenticated} atomically.
// The login response carries no profile, so a second call fetches it; on
// failure of either call the session state is left untouched and the error
// propagates.
func (s *Store) Login(ctx context.Context, email, password string) error {
	resp, err := s.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}
	user, err := s.auth.GetProfile(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Snapshot{User: user, Token: resp.Token, IsAuthenticated: true}
	return s.persistLocked(ctx)
}

// Register creates an account and commits state straight from the register
// response, which, unlike login, embeds the user.
func (s *Store) Register(ctx context.Context, name, email, password string) error {
	resp, err := s.auth.Register(ctx, name, email, password)
	if err != nil {
		return err
	}
	user := resp.User

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Snapshot{User: &user, Token: resp.Token, IsAuthenticated: true}
	return s.persistLocked(ctx)
}

// Logout clears the durable token and resets to Anonymous. The in-memory
// reset happens unconditionally; storage errors are reported but cannot
// resurrect the session.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Snapshot{}

	if err := s.auth.Logout(ctx); err != nil {
		return err
	}
	return s.persistLocked(ctx)
}

// CheckAuth re-derives the token and authenticated flag from durable
// storage. No durable token forces Anonymous, clearing the user too. A
// durable token marks the session authenticated without validating the
// token against the backend or refreshing the user. Idempotent.
func (s *Store) CheckAuth(ctx context.Context) error {
	token, err := s.auth.Token(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if token == "" {
		s.state = Snapshot{}
	} else {
		s.state.Token = token
		s.state.IsAuthenticated = true
	}
	return s.persistLocked(ctx)
}

// IsAdmin reports whether the current user carries the admin role.
func (s *Store) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.User.IsAdmin()
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// TokenExpiresAt extracts the exp claim from the bearer token without
// verifying the signature. Display-only; the backend stays authoritative.
// Returns false when there is no token or no readable exp claim.
func (s *Store) TokenExpiresAt() (time.Time, bool) {
	s.mu.RLock()
	token := s.state.Token
	s.mu.RUnlock()
	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
