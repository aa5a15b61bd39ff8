// Package session holds the signed-in user's credential token and profile.
//
// Store is the one authority on whether the user is logged in. The HTTP
// client reads the token from it (Store is an api.TokenSource) and the
// router asks it before protected navigation (Store is a router.AuthState).
// The metadata repository is only a persistence mirror: it is written on
// login, cleared on logout and read back once by Restore at startup.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/storefront/internal/client/api"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

const (
	registerFailed        = "Registration failed"
	loginFailed           = "Login failed"
	invalidResponseFormat = "Invalid response format"
)

// Authenticator is the part of the backend API the session talks to.
type Authenticator interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error)
}

type Store struct {
	auth    Authenticator
	storage metadata.Repository
	logger  logging.Logger

	mu    sync.RWMutex
	token string
	user  *models.User
}

// New returns an empty (logged out) Store. Call Restore to pick up a token
// saved by a previous run.
func New(auth Authenticator, storage metadata.Repository, logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Store{auth: auth, storage: storage, logger: logger.With("component", "session")}
}

// SetAuthenticator wires the backend after construction. The HTTP client
// needs the Store as its token source, so the two are built in turn.
func (s *Store) SetAuthenticator(auth Authenticator) {
	s.auth = auth
}

// Restore loads the persisted token into memory. The profile is not
// persisted and stays empty until the next Login.
func (s *Store) Restore(ctx context.Context) error {
	value, err := s.storage.Get(ctx, common.TokenKey)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}

	s.mu.Lock()
	s.token = string(value)
	s.user = nil
	s.mu.Unlock()

	if len(value) > 0 {
		s.logger.Info(ctx, "session restored")
	}
	return nil
}

// Register forwards req to the backend. The session is never changed, even
// though the backend replies with a token.
func (s *Store) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	resp, err := s.auth.Register(ctx, req)
	if err != nil {
		apiErr := api.Normalize(err, registerFailed)
		s.logger.Error(ctx, "register failed", "username", req.Username, "status", apiErr.Status, "message", apiErr.Message)
		return nil, apiErr
	}
	s.logger.Info(ctx, "registered", "username", req.Username)
	return resp, nil
}

// Login authenticates with creds. Only a response carrying both a token and
// a user is accepted. The token is persisted before memory is updated, so a
// storage failure leaves the session exactly as it was.
func (s *Store) Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	resp, err := s.auth.Login(ctx, creds)
	if err != nil {
		return nil, s.loginError(ctx, creds.Username, err)
	}
	if !resp.Complete() {
		return nil, s.loginError(ctx, creds.Username, &api.Error{Message: invalidResponseFormat})
	}

	if err := s.storage.Set(ctx, common.TokenKey, []byte(resp.Token)); err != nil {
		return nil, s.loginError(ctx, creds.Username, fmt.Errorf("persist token: %w", err))
	}

	user := *resp.User
	s.mu.Lock()
	s.token = resp.Token
	s.user = &user
	s.mu.Unlock()

	s.logger.Info(ctx, "logged in", "username", user.Username)
	return resp, nil
}

func (s *Store) loginError(ctx context.Context, username string, err error) *api.Error {
	apiErr := api.Normalize(err, loginFailed)
	s.logger.Error(ctx, "login failed", "username", username, "status", apiErr.Status, "message", apiErr.Message)
	return apiErr
}

// Logout drops the token and profile from memory and storage. It cannot
// fail: a storage error is logged and memory is cleared regardless.
func (s *Store) Logout(ctx context.Context) {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.mu.Unlock()

	if err := s.storage.Delete(ctx, common.TokenKey); err != nil {
		s.logger.Warn(ctx, "could not remove persisted token", "error", err)
	}
	s.logger.Info(ctx, "logged out")
}

// IsLoggedIn reports whether a token is held.
func (s *Store) IsLoggedIn() bool {
	return s.Token() != ""
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns a copy of the profile, or nil when none is loaded.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}
