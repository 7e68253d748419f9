package auth

import "github.com/rmartin/promptsynth/internal/domain"

// Verifier checks a username/password pair. It is injected into the Gate so
// the trivial single-account check can be swapped without touching the state
// machine. Hardening (hashing, expiry, MFA) is explicitly out of scope.
type Verifier interface {
	Verify(username, password string) bool
}

// StaticCredentials is the shipped Verifier: a fixed, tiny credential table
// with one demo account.
type StaticCredentials map[string]string

// DemoCredentials returns the default credential table.
func DemoCredentials() StaticCredentials {
	return StaticCredentials{"demo": "pass123"}
}

func (c StaticCredentials) Verify(username, password string) bool {
	stored, ok := c[username]
	return ok && stored == password
}

// Gate is the two-state auth machine: LoggedOut or LoggedIn(user).
type Gate struct {
	verifier Verifier
	user     string
}

// NewGate starts in LoggedOut.
func NewGate(verifier Verifier) *Gate {
	return &Gate{verifier: verifier}
}

// Login transitions to LoggedIn(user) on a matching credential pair. Any
// mismatch stays LoggedOut and returns ErrInvalidCredentials.
func (g *Gate) Login(username, password string) error {
	if !g.verifier.Verify(username, password) {
		return domain.ErrInvalidCredentials
	}
	g.user = username
	return nil
}

// Logout returns to LoggedOut from any state.
func (g *Gate) Logout() {
	g.user = ""
}

// User returns the current user, or "" when LoggedOut.
func (g *Gate) User() string {
	return g.user
}

// LoggedIn reports whether the gate holds a user.
func (g *Gate) LoggedIn() bool {
	return g.user != ""
}
