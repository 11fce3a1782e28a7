package domain

import (
	"fmt"
	"time"
)

// ChallengeTTL is how long an issued verification code stays valid.
const ChallengeTTL = 300 * time.Second

// Challenge is the one-time verification code bound to an email address.
// It is owned by exactly one Session and cleared on consumption, expiry
// or logout.
type Challenge struct {
	Code     string    `json:"code"`
	Email    string    `json:"email"`
	IssuedAt time.Time `json:"issued_at"`
}

// Session is the ephemeral per-client state. It is held server-side and
// referenced by an opaque ID carried in a signed cookie. At most one
// challenge is outstanding per session; reissuing overwrites.
type Session struct {
	SessionID string     `json:"id"`
	LoggedIn  bool       `json:"logged_in"`
	UserEmail string     `json:"user_email,omitempty"`
	Challenge *Challenge `json:"challenge,omitempty"`
	CreatedAt time.Time  `json:"created"`
	UpdatedAt time.Time  `json:"updated"`
}

// IssueChallenge stores a fresh challenge on the session, replacing any
// prior one. A code issued before this call can no longer verify.
func (s *Session) IssueChallenge(email, code string, now time.Time) {
	s.Challenge = &Challenge{Code: code, Email: email, IssuedAt: now}
	s.UpdatedAt = now
}

// ConsumeChallenge validates the submitted email and code against the
// outstanding challenge and, on success, clears it and authenticates the
// session. Checks run in a fixed order: existence, email match, expiry,
// code match. The ordering is observable (an expired submission with a
// wrong code reports expiry) and must not change.
func (s *Session) ConsumeChallenge(email, code string, now time.Time) error {
	if s.Challenge == nil {
		return fmt.Errorf("session %s: %w", s.SessionID, ErrNoChallenge)
	}
	if s.Challenge.Email != email {
		return fmt.Errorf("session %s: %w", s.SessionID, ErrEmailMismatch)
	}
	if now.Sub(s.Challenge.IssuedAt) > ChallengeTTL {
		return fmt.Errorf("session %s: %w", s.SessionID, ErrCodeExpired)
	}
	if s.Challenge.Code != code {
		return fmt.Errorf("session %s: %w", s.SessionID, ErrCodeMismatch)
	}
	s.Challenge = nil
	s.LoggedIn = true
	s.UserEmail = email
	s.UpdatedAt = now
	return nil
}

// Logout clears authentication and any outstanding challenge.
func (s *Session) Logout(now time.Time) {
	s.LoggedIn = false
	s.UserEmail = ""
	s.Challenge = nil
	s.UpdatedAt = now
}
