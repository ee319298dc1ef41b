package session

import (
	"context"
	"sync"

	"hostel-store/internal/logger"
	"hostel-store/internal/remote"

	"go.uber.org/zap"
)

// State is the auth state of a storefront session. A freshly built store
// reports StateLoading until Restore resolves, so callers never mistake
// a not-yet-restored session for a signed-out one.
type State int

const (
	StateLoading State = iota
	StateSignedOut
	StateSignedIn
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateSignedIn:
		return "signed_in"
	default:
		return "signed_out"
	}
}

// Authenticator is the auth slice of the remote data service.
type Authenticator interface {
	SignUp(ctx context.Context, email, password string) (*remote.Session, error)
	SignIn(ctx context.Context, email, password string) (*remote.Session, error)
	SignOut(ctx context.Context, accessToken string) error
	RefreshSession(ctx context.Context, refreshToken string) (*remote.Session, error)
}

// Store holds the current identity (or absence thereof) for one
// storefront session.
type Store struct {
	auth Authenticator

	mu           sync.RWMutex
	state        State
	sess         *remote.Session
	restoreToken string
	restored     bool
}

// NewStore builds a store in the loading state. restoreToken is the
// persisted refresh token from a previous visit, empty when none.
func NewStore(auth Authenticator, restoreToken string) *Store {
	return &Store{
		auth:         auth,
		state:        StateLoading,
		restoreToken: restoreToken,
	}
}

// Restore resolves the persisted refresh token against the auth service
// and moves the store out of the loading state exactly once. A sign-in
// that lands first wins; a late restore never clobbers it.
func (s *Store) Restore(ctx context.Context) {
	s.mu.RLock()
	token := s.restoreToken
	s.mu.RUnlock()

	var sess *remote.Session
	if token != "" {
		restored, err := s.auth.RefreshSession(ctx, token)
		if err != nil {
			logger.FromCtx(ctx).Info("session restore failed, treating as signed out", zap.Error(err))
		} else {
			sess = restored
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.restored || s.state != StateLoading {
		return
	}
	s.restored = true
	if sess != nil {
		s.sess = sess
		s.state = StateSignedIn
	} else {
		s.state = StateSignedOut
	}
}

// SignUp registers an account and signs the session in.
func (s *Store) SignUp(ctx context.Context, email, password string) (*remote.Identity, error) {
	sess, err := s.auth.SignUp(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.adopt(sess), nil
}

// SignIn exchanges credentials for an identity.
func (s *Store) SignIn(ctx context.Context, email, password string) (*remote.Identity, error) {
	sess, err := s.auth.SignIn(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return s.adopt(sess), nil
}

// SignOut revokes the remote session and drops the local identity. The
// local state is cleared even when revocation fails; the error is
// returned for surfacing.
func (s *Store) SignOut(ctx context.Context) error {
	s.mu.Lock()
	sess := s.sess
	s.sess = nil
	s.state = StateSignedOut
	s.restored = true
	s.mu.Unlock()

	if sess == nil {
		return nil
	}
	if err := s.auth.SignOut(ctx, sess.AccessToken); err != nil {
		logger.FromCtx(ctx).Warn("remote sign-out failed", zap.Error(err))
		return err
	}
	return nil
}

// Current returns the signed-in identity, or nil with the store's state.
func (s *Store) Current() (*remote.Identity, State) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state != StateSignedIn || s.sess == nil {
		return nil, s.state
	}
	ident := s.sess.User
	return &ident, s.state
}

// AccessToken is the bearer token for table calls, empty when signed out.
func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.sess == nil {
		return ""
	}
	return s.sess.AccessToken
}

// RefreshToken is the token worth persisting across visits.
func (s *Store) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.sess == nil {
		return ""
	}
	return s.sess.RefreshToken
}

func (s *Store) adopt(sess *remote.Session) *remote.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sess = sess
	s.state = StateSignedIn
	s.restored = true
	ident := sess.User
	return &ident
}
