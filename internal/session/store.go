package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"gallery/cli/internal/api"
	"gallery/cli/internal/models"
)

type Status int

const (
	StatusUnknown Status = iota
	StatusVerifying
	StatusAuthenticated
	StatusAnonymous
)

func (s Status) String() string {
	switch s {
	case StatusVerifying:
		return "verifying"
	case StatusAuthenticated:
		return "authenticated"
	case StatusAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// Navigation is a signal for the caller to act on. The store never navigates
// itself, which keeps it testable without a route layer.
type Navigation int

const (
	NavigateNone Navigation = iota
	NavigateHome
	NavigateLogin
)

// AuthAPI is the slice of the REST client the store needs.
type AuthAPI interface {
	Signup(ctx context.Context, input api.SignupInput) (string, error)
	Login(ctx context.Context, creds api.Credentials) (string, error)
	Verify(ctx context.Context) (models.User, error)
}

// Store holds the current session. Invariant: status is Authenticated
// exactly when a token is persisted, the last verification accepted it, and
// a user is set.
type Store struct {
	api    AuthAPI
	tokens *TokenStore
	log    zerolog.Logger

	mu     sync.Mutex
	status Status
	user   *models.User
}

func NewStore(authAPI AuthAPI, tokens *TokenStore, log zerolog.Logger) *Store {
	return &Store{
		api:    authAPI,
		tokens: tokens,
		log:    log,
		status: StatusUnknown,
	}
}

func (s *Store) Status() Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

func (s *Store) User() *models.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

func (s *Store) Authenticated() bool {
	return s.Status() == StatusAuthenticated
}

// Token reads the persisted slot. Handed to the API client as its
// TokenSource so a login mid-process takes effect immediately.
func (s *Store) Token() string {
	return s.tokens.Read()
}

// Verify resolves the persisted token against the server. No token means
// Anonymous. A rejected token is cleared, the session goes Anonymous, and
// the caller is signalled to navigate to login. Rejection is terminal for
// the session; there is no retry.
func (s *Store) Verify(ctx context.Context) Navigation {
	token := s.tokens.Read()
	if token == "" {
		s.set(StatusAnonymous, nil)
		return NavigateNone
	}

	s.set(StatusVerifying, nil)

	user, err := s.api.Verify(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("token verification failed")
		if err := s.tokens.Clear(); err != nil {
			s.log.Error().Err(err).Msg("clear token failed")
		}
		s.set(StatusAnonymous, nil)
		return NavigateLogin
	}

	s.set(StatusAuthenticated, &user)
	return NavigateNone
}

func (s *Store) Login(ctx context.Context, creds api.Credentials) (Navigation, error) {
	token, err := s.api.Login(ctx, creds)
	if err != nil {
		return NavigateNone, err
	}
	return s.adopt(ctx, token)
}

func (s *Store) Signup(ctx context.Context, input api.SignupInput) (Navigation, error) {
	token, err := s.api.Signup(ctx, input)
	if err != nil {
		return NavigateNone, err
	}
	return s.adopt(ctx, token)
}

// adopt persists a freshly issued token, then runs the normal verification
// path to populate the user.
func (s *Store) adopt(ctx context.Context, token string) (Navigation, error) {
	if err := s.tokens.Write(token); err != nil {
		return NavigateNone, fmt.Errorf("persist token: %w", err)
	}

	if nav := s.Verify(ctx); s.Status() != StatusAuthenticated {
		return nav, fmt.Errorf("session: verification after login failed")
	}
	return NavigateHome, nil
}

// Logout clears the token and identity synchronously. No network call.
func (s *Store) Logout() Navigation {
	if err := s.tokens.Clear(); err != nil {
		s.log.Error().Err(err).Msg("clear token failed")
	}
	s.set(StatusAnonymous, nil)
	return NavigateLogin
}

func (s *Store) set(status Status, user *models.User) {
	s.mu.Lock()
	s.status = status
	s.user = user
	s.mu.Unlock()
}
