// Package session tracks the client-held authentication state.
//
// Login and registration never contact an authority: any non-empty
// credentials are accepted. This is a UI placeholder contract, not a
// security boundary, and must not ship as production auth.
package session

import (
	"strings"
	"sync"
)

// Errors returned by the credential placeholder checks.
var (
	ErrInvalidCredentials  = Error("invalid credentials")
	ErrInvalidRegistration = Error("invalid registration data")
)

// Error is a session operation failure.
type Error string

func (e Error) Error() string { return string(e) }

// placeholderName is the display name assigned on login, where only an email
// is collected.
const placeholderName = "Test User"

// User identifies the signed-in user.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// State is the serializable session snapshot.
type State struct {
	IsAuthenticated bool  `json:"isAuthenticated"`
	User            *User `json:"user"`
}

// Store holds authentication state. All methods are safe for concurrent use.
type Store struct {
	mu          sync.Mutex
	state       State
	subscribers []func()
}

// NewStore builds a logged-out session store.
func NewStore() *Store {
	return &Store{}
}

// Restore replaces the session state from a persisted snapshot without
// notifying subscribers.
func (s *Store) Restore(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !state.IsAuthenticated {
		state = State{}
	}
	s.state = state
}

// Login authenticates when both fields are non-empty. The user record gets a
// placeholder name since login collects no name. On failure the session state
// is unchanged.
func (s *Store) Login(email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return ErrInvalidCredentials
	}
	s.mu.Lock()
	s.state = State{
		IsAuthenticated: true,
		User:            &User{Name: placeholderName, Email: email},
	}
	s.mu.Unlock()
	s.notify()
	return nil
}

// Register authenticates when all fields are non-empty, recording the given
// name and email. On failure the session state is unchanged.
func (s *Store) Register(name, email, password string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return ErrInvalidRegistration
	}
	s.mu.Lock()
	s.state = State{
		IsAuthenticated: true,
		User:            &User{Name: name, Email: email},
	}
	s.mu.Unlock()
	s.notify()
	return nil
}

// Logout clears the authenticated flag and user record.
func (s *Store) Logout() {
	s.mu.Lock()
	s.state = State{}
	s.mu.Unlock()
	s.notify()
}

// IsAuthenticated reports the current authentication flag.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.IsAuthenticated
}

// Snapshot returns a copy of the current session state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	state := s.state
	if state.User != nil {
		user := *state.User
		state.User = &user
	}
	return state
}

// Subscribe registers a callback invoked after every state change. Callbacks
// run outside the store lock, in registration order.
func (s *Store) Subscribe(fn func()) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

func (s *Store) notify() {
	s.mu.Lock()
	subscribers := append([]func(){}, s.subscribers...)
	s.mu.Unlock()
	for _, fn := range subscribers {
		fn()
	}
}
