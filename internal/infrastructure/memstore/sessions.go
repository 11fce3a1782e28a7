// Package memstore holds sessions in process memory. Sessions are
// ephemeral by design: a restart logs everyone out, which matches the
// challenge lifecycle (codes expire in minutes anyway).
package memstore

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-intake-sheets/internal/domain"
	"github.com/go-intake-sheets/internal/pkg/id"
)

// SessionStore is a mutex-guarded session map. Mutations run under the
// store lock, which serializes concurrent transitions on one session;
// cross-session requests never contend beyond the map access itself.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*domain.Session
	idleTTL  time.Duration
	now      func() time.Time
}

func NewSessionStore(idleTTL time.Duration) *SessionStore {
	return &SessionStore{
		sessions: make(map[string]*domain.Session),
		idleTTL:  idleTTL,
		now:      time.Now,
	}
}

// Create registers a fresh session and returns it.
func (s *SessionStore) Create(ctx context.Context) (*domain.Session, error) {
	now := s.now()
	sess := &domain.Session{
		SessionID: id.New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.mu.Lock()
	s.sessions[sess.SessionID] = sess
	s.mu.Unlock()
	return sess, nil
}

// Get returns a copy of the session, so readers never observe a
// half-applied transition.
func (s *SessionStore) Get(ctx context.Context, sessionID string) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", sessionID, domain.ErrUnauthorized)
	}
	cp := *sess
	if sess.Challenge != nil {
		ch := *sess.Challenge
		cp.Challenge = &ch
	}
	return &cp, nil
}

// Mutate applies fn to the session under the store lock. The transition
// functions on domain.Session are meant to run inside fn; their error is
// returned unchanged.
func (s *SessionStore) Mutate(ctx context.Context, sessionID string, fn func(*domain.Session) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[sessionID]
	if !ok {
		return fmt.Errorf("session %s: %w", sessionID, domain.ErrUnauthorized)
	}
	return fn(sess)
}

// Delete removes the session entirely.
func (s *SessionStore) Delete(ctx context.Context, sessionID string) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
}

// Sweep drops sessions idle for longer than the configured TTL and
// returns how many were removed.
func (s *SessionStore) Sweep() int {
	cutoff := s.now().Add(-s.idleTTL)
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for sid, sess := range s.sessions {
		if sess.UpdatedAt.Before(cutoff) {
			delete(s.sessions, sid)
			n++
		}
	}
	return n
}

// StartSweeper runs Sweep periodically until ctx is cancelled.
func (s *SessionStore) StartSweeper(ctx context.Context, every time.Duration) {
	go func() {
		t := time.NewTicker(every)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				s.Sweep()
			}
		}
	}()
}
