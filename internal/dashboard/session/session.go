// Package session owns the authentication state of the dashboard: the bearer
// token, the cached user record, the loading flag the gates wait on, and the
// session-scoped category tracker. State is rehydrated from the Store at
// startup and destroyed on logout; token and user are always written and
// cleared together.
package session

import (
	"context"
	"sync"

	"shopdash/internal/dashboard/api"
	"shopdash/internal/domain"
)

const (
	loginFailedMessage  = "login failed"
	signupFailedMessage = "signup failed"
)

type Session struct {
	mu      sync.Mutex
	store   Store
	backend AuthAPI

	user            *domain.User
	token           string
	loading         bool
	err             string
	categoryCreated bool
}

// State is a point-in-time snapshot of the session, safe to hand to the
// gates and the navigation derivation.
type State struct {
	User          *domain.User
	Token         string
	Authenticated bool
	Loading       bool
	Err           string
}

// New returns a session that reports loading until Initialize has run.
func New(store Store, backend AuthAPI) *Session {
	return &Session{store: store, backend: backend, loading: true}
}

// Initialize rehydrates the session from the store. A persisted token is
// trusted as-is: an invalid one surfaces later as a 401 on the first API
// call. Idempotent: the outcome depends only on the store contents.
func (s *Session) Initialize() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.user = nil
	if token, ok := s.store.Token(); ok {
		s.token = token
		if user, ok := s.store.User(); ok {
			s.user = user
		}
	}
	s.loading = false
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		User:          s.user,
		Token:         s.token,
		Authenticated: s.token != "",
		Loading:       s.loading,
		Err:           s.err,
	}
}

// Token implements api.TokenSource.
func (s *Session) Token() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.token != ""
}

// Login authenticates against the backend. On failure the token and user are
// cleared together and the error is both recorded for display and returned
// so the screen can toast it. Overlapping logins are not fenced: the later
// completion wins.
func (s *Session) Login(ctx context.Context, email, password string) error {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	result, err := s.backend.Login(ctx, api.Credentials{Email: email, Password: password})

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		s.clearLocked()
		s.err = api.ErrorMessage(err, loginFailedMessage)
		return err
	}

	if err := s.store.Save(result.Token, result.User); err != nil {
		s.clearLocked()
		s.err = loginFailedMessage
		return err
	}
	s.user = result.User
	s.token = result.Token
	return nil
}

// Signup registers an account and nothing more: no token is stored and the
// session stays unauthenticated. The caller navigates to the login screen.
func (s *Session) Signup(ctx context.Context, req api.SignupRequest) error {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	_, err := s.backend.Signup(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		s.err = api.ErrorMessage(err, signupFailedMessage)
		return err
	}
	return nil
}

// Logout destroys the session synchronously: memory, store, and the
// session-scoped category flag.
func (s *Session) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
	s.err = ""
	s.categoryCreated = false
}

// RefreshUser re-fetches the authoritative user record and overwrites the
// cached copy. Best effort: failures are swallowed and the stale record
// stays in effect. No-op without a user.
func (s *Session) RefreshUser(ctx context.Context) {
	s.mu.Lock()
	current := s.user
	s.mu.Unlock()
	if current == nil {
		return
	}

	fresh, err := s.backend.GetUser(ctx, current.ID)
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		// logged out while the refresh was in flight
		return
	}
	s.user = fresh
	_ = s.store.Save(s.token, fresh)
}

// NotifyCategoryCreated records that a category was created in this session,
// unlocking gated navigation tabs ahead of the next server lookup. The flag
// only resets on logout.
func (s *Session) NotifyCategoryCreated() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categoryCreated = true
}

func (s *Session) CategoryCreatedThisSession() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.categoryCreated
}

// clearLocked drops token and user from memory and store together. Callers
// must hold s.mu.
func (s *Session) clearLocked() {
	s.user = nil
	s.token = ""
	_ = s.store.Clear()
}
