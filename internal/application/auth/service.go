package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-intake-sheets/internal/domain"
	"github.com/go-intake-sheets/internal/infrastructure/smtp"
	"github.com/go-intake-sheets/internal/pkg/code"
	"github.com/go-intake-sheets/internal/pkg/validate"
)

// SessionStore is the minimal interface the workflow requires from the
// session store. All transitions run inside Mutate under the store lock.
type SessionStore interface {
	Mutate(ctx context.Context, sessionID string, fn func(*domain.Session) error) error
}

// Service runs the challenge workflow: issue a code, verify it, log out.
type Service interface {
	Issue(ctx context.Context, sessionID, email string) error
	Verify(ctx context.Context, sessionID, email, codeStr string) error
	Logout(ctx context.Context, sessionID string) error
}

type service struct {
	sessions SessionStore
	mailer   smtp.Mailer
	timeout  time.Duration

	// injectable for tests
	now      func() time.Time
	generate func() string
}

func NewService(sessions SessionStore, mailer smtp.Mailer, timeout time.Duration) Service {
	return &service{
		sessions: sessions,
		mailer:   mailer,
		timeout:  timeout,
		now:      time.Now,
		generate: code.Generate,
	}
}

// Issue validates the email, stores a fresh challenge on the session
// (overwriting any outstanding one) and attempts delivery. A failed
// delivery returns ErrSendFailed but does NOT roll back the stored
// challenge: the user never received the code, so the practical effect is
// "no usable challenge", and the next Issue overwrites it anyway.
func (s *service) Issue(ctx context.Context, sessionID, email string) error {
	if !validate.Email(email) {
		return fmt.Errorf("invalid email %q: %w", email, domain.ErrBadRequest)
	}
	if s.mailer == nil {
		slog.Error("mailer not configured, cannot deliver verification code")
		return domain.ErrSendFailed
	}

	c := s.generate()
	now := s.now()
	err := s.sessions.Mutate(ctx, sessionID, func(sess *domain.Session) error {
		sess.IssueChallenge(email, c, now)
		return nil
	})
	if err != nil {
		return err
	}

	sendCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := s.mailer.SendChallenge(sendCtx, email, c); err != nil {
		slog.Error("verification code delivery failed", "email", email, "err", err)
		return fmt.Errorf("send challenge: %w", domain.ErrSendFailed)
	}
	slog.Info("verification code sent", "email", email)
	return nil
}

// Verify consumes the outstanding challenge. Failure kinds map one-to-one
// onto the domain sentinels; see Session.ConsumeChallenge for the check
// ordering.
func (s *service) Verify(ctx context.Context, sessionID, email, codeStr string) error {
	now := s.now()
	return s.sessions.Mutate(ctx, sessionID, func(sess *domain.Session) error {
		return sess.ConsumeChallenge(email, codeStr, now)
	})
}

// Logout clears authentication and any outstanding challenge.
func (s *service) Logout(ctx context.Context, sessionID string) error {
	now := s.now()
	return s.sessions.Mutate(ctx, sessionID, func(sess *domain.Session) error {
		sess.Logout(now)
		return nil
	})
}
