package identity

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/shopfront/backend/internal/domain/identity"
	"github.com/shopfront/backend/internal/domain/shared"
	"github.com/shopfront/backend/internal/infrastructure/statestore"
	"go.uber.org/zap"
)

// Auth states. The service is authenticating only while a login attempt
// is waiting out its verification delay.
const (
	StateAnonymous      = "anonymous"
	StateAuthenticating = "authenticating"
	StateAuthenticated  = "authenticated"
)

// AuthService manages the single mock session. Login simulates a remote
// identity provider: credentials are checked by the injected verifier,
// then the result is applied after a configurable delay. A logout (or a
// newer login) issued during the delay wins; the stale attempt's result
// is discarded when it completes. Store writes happen inside the same
// critical section as the in-memory transition, so the persisted copy
// can never diverge from the service state.
type AuthService struct {
	verifier identity.CredentialVerifier
	store    statestore.Store
	delay    time.Duration
	logger   *zap.Logger

	mu         sync.Mutex
	session    *identity.Session
	inFlight   bool
	generation uint64
}

// NewAuthService creates an auth service with no active session
func NewAuthService(verifier identity.CredentialVerifier, store statestore.Store, delay time.Duration, logger *zap.Logger) *AuthService {
	return &AuthService{
		verifier: verifier,
		store:    store,
		delay:    delay,
		logger:   logger,
	}
}

// Login verifies the credentials, waits out the simulated provider delay,
// then establishes the session and persists it. The call blocks for the
// duration of the delay; cancelling ctx abandons the attempt. Failed
// credentials return ErrUnauthorized and leave any existing session
// untouched.
func (s *AuthService) Login(ctx context.Context, email, password string) (*identity.Session, error) {
	if !s.verifier.Verify(email, password) {
		return nil, shared.ErrUnauthorized
	}

	session, err := identity.NewSession(email)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.inFlight = true
	s.mu.Unlock()

	select {
	case <-ctx.Done():
		s.mu.Lock()
		if s.generation == gen {
			s.inFlight = false
		}
		s.mu.Unlock()
		return nil, ctx.Err()
	case <-time.After(s.delay):
	}

	s.mu.Lock()
	if s.generation != gen {
		// a logout or newer login superseded this attempt
		s.mu.Unlock()
		return nil, shared.NewDomainError("LOGIN_SUPERSEDED", "Login attempt was superseded")
	}
	s.session = session
	s.inFlight = false
	// persist before releasing the guard: a logout racing this write must
	// not have its delete re-overwritten by a commit it superseded
	if err := s.persist(ctx, session); err != nil {
		s.logger.Warn("failed to persist session", zap.Error(err))
	}
	s.mu.Unlock()

	s.logger.Info("user signed in", zap.String("email", session.Email))
	return copySession(session), nil
}

// Logout clears the session synchronously and invalidates any login
// attempt still waiting out its delay.
func (s *AuthService) Logout(ctx context.Context) {
	s.mu.Lock()
	s.generation++
	s.session = nil
	s.inFlight = false
	if err := s.store.Delete(ctx, statestore.KeySession); err != nil {
		s.logger.Warn("failed to clear persisted session", zap.Error(err))
	}
	s.mu.Unlock()

	s.logger.Info("user signed out")
}

// Session returns a copy of the active session, or nil when anonymous
func (s *AuthService) Session() *identity.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copySession(s.session)
}

// State returns the current auth state
func (s *AuthService) State() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case s.inFlight:
		return StateAuthenticating
	case s.session != nil:
		return StateAuthenticated
	default:
		return StateAnonymous
	}
}

// Rehydrate restores the session persisted by a previous run. A missing
// or unreadable value means the storefront starts anonymous; corrupt
// state is cleaned up rather than surfaced.
func (s *AuthService) Rehydrate(ctx context.Context) {
	raw, err := s.store.Get(ctx, statestore.KeySession)
	if err != nil {
		if err != statestore.ErrKeyNotFound {
			s.logger.Warn("failed to read persisted session", zap.Error(err))
		}
		return
	}

	var session identity.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil || session.Email == "" {
		s.logger.Warn("discarding malformed persisted session")
		if err := s.store.Delete(ctx, statestore.KeySession); err != nil {
			s.logger.Warn("failed to clear malformed session", zap.Error(err))
		}
		return
	}

	s.mu.Lock()
	s.session = &session
	s.mu.Unlock()
	s.logger.Info("session restored", zap.String("email", session.Email))
}

func (s *AuthService) persist(ctx context.Context, session *identity.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, statestore.KeySession, string(raw))
}

func copySession(s *identity.Session) *identity.Session {
	if s == nil {
		return nil
	}
	cp := *s
	return &cp
}
