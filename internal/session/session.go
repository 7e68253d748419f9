package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/rmartin/promptsynth/internal/auth"
	"github.com/rmartin/promptsynth/internal/domain"
)

// State is the explicit per-session context: current user, selected template
// name and the tip of the day. All fields start unset; the tip is pinned on
// first access and the rest is cleared on logout. Nothing here survives a
// restart.
type State struct {
	Gate             *auth.Gate
	SelectedTemplate string
	Tip              string

	// LastRequest holds the parameters of the last successful generation,
	// so a remix can re-roll tone and format against them.
	LastRequest *domain.GenerationRequest
}

// Reset is the logout teardown: clears the user, the selected template and
// the last request. The tip survives so the sidebar does not reshuffle
// mid-visit.
func (s *State) Reset() {
	s.Gate.Logout()
	s.SelectedTemplate = ""
	s.LastRequest = nil
}

// Manager hands out token-keyed session states. Tokens ride in a cookie; the
// map is in-memory only.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*State
	verifier auth.Verifier
	tip      func() string
}

// NewManager builds a manager. tip supplies the tip-of-the-day pinned when a
// session is first created.
func NewManager(verifier auth.Verifier, tip func() string) *Manager {
	return &Manager{
		sessions: make(map[string]*State),
		verifier: verifier,
		tip:      tip,
	}
}

// Create initializes a fresh session and returns its token.
func (m *Manager) Create() (string, *State) {
	m.mu.Lock()
	defer m.mu.Unlock()

	token := uuid.NewString()
	state := &State{
		Gate: auth.NewGate(m.verifier),
		Tip:  m.tip(),
	}
	m.sessions[token] = state
	return token, state
}

// Get returns the session for a token.
func (m *Manager) Get(token string) (*State, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	state, ok := m.sessions[token]
	return state, ok
}

// Drop removes a session entirely.
func (m *Manager) Drop(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
}
