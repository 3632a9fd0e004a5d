package store

import (
	"context"
	"errors"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/MBahyeldin/online-shoping/domain"
)

// SessionStore is the process-wide owner of authentication state. All reads
// go through its accessors; the only writers are SetAuth and ClearAuth. The
// token and the user are always set or cleared together.
type SessionStore struct {
	mu      sync.RWMutex
	session *domain.Session
	creds   domain.CredentialStore
	log     *logrus.Entry
}

// NewSessionStore creates the store and restores any persisted session so
// authentication survives a process restart.
func NewSessionStore(ctx context.Context, creds domain.CredentialStore, logger *logrus.Logger) *SessionStore {
	s := &SessionStore{
		creds: creds,
		log:   logger.WithField("component", "session_store"),
	}
	token, user, err := creds.Load(ctx)
	switch {
	case err == nil:
		s.session = &domain.Session{Token: token, User: *user}
		s.log.WithField("email", user.Email).Info("restored persisted session")
	case errors.Is(err, domain.ErrSessionNotFound):
		// Fresh start, nothing persisted.
	default:
		s.log.WithError(err).Warn("could not restore persisted session")
	}
	return s
}

// SetAuth persists the token and user, then marks the process authenticated.
// If persistence fails the in-memory state is left untouched.
func (s *SessionStore) SetAuth(ctx context.Context, user domain.User, token string) error {
	if err := s.creds.Save(ctx, token, &user); err != nil {
		return err
	}
	s.mu.Lock()
	s.session = &domain.Session{Token: token, User: user}
	s.mu.Unlock()
	return nil
}

// ClearAuth wipes both the persisted and the in-memory session. The
// in-memory state is dropped even if clearing persistence fails, so a 401
// teardown always signs the process out.
func (s *SessionStore) ClearAuth(ctx context.Context) error {
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()
	return s.creds.Clear(ctx)
}

// IsAuthenticated derives from token presence. No client-side expiry: expiry
// is enforced by the backend and surfaces as a 401.
func (s *SessionStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session != nil && s.session.Token != ""
}

// Token returns the current bearer token, empty when signed out.
func (s *SessionStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return ""
	}
	return s.session.Token
}

// User returns the signed-in user, if any.
func (s *SessionStore) User() (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return domain.User{}, false
	}
	return s.session.User, true
}
