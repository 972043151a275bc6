// Package gate holds the shared-password check in front of the landing page.
// The secret is a plain string compare; the unlocked flag lives only as long
// as the process, like a browser session.
package gate

import "sync/atomic"

// DefaultSecret is the password handed out with the preview link.
const DefaultSecret = "relva2026"

// Session remembers whether the visitor has unlocked the site.
type Session struct {
	secret   string
	unlocked atomic.Bool
}

// NewSession returns a locked session guarded by secret. An empty secret
// falls back to DefaultSecret.
func NewSession(secret string) *Session {
	if secret == "" {
		secret = DefaultSecret
	}
	return &Session{secret: secret}
}

// Try unlocks the session when input matches the secret and reports the
// resulting state. A wrong input never locks an unlocked session.
func (s *Session) Try(input string) bool {
	if input == s.secret {
		s.unlocked.Store(true)
	}
	return s.unlocked.Load()
}

// Unlocked reports whether the session has been unlocked.
func (s *Session) Unlocked() bool { return s.unlocked.Load() }

// Lock ends the session.
func (s *Session) Lock() { s.unlocked.Store(false) }
