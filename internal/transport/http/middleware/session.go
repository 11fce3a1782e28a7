package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-intake-sheets/internal/domain"
	"github.com/go-intake-sheets/internal/infrastructure/cookie"
)

type contextKey string

const SessionKey contextKey = "session"

// SessionStore is the minimal store interface the middleware requires.
type SessionStore interface {
	Create(ctx context.Context) (*domain.Session, error)
	Get(ctx context.Context, sessionID string) (*domain.Session, error)
}

// Session resolves the signed cookie to a server-held session, creating a
// fresh one (and setting the cookie) when the cookie is absent, invalid or
// references a session the store no longer holds. Every request downstream
// can rely on a session being present in the context.
func Session(store SessionStore, cookies *cookie.Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if c, err := r.Cookie(cookie.Name); err == nil {
				if sid, err := cookies.Verify(c.Value); err == nil {
					if sess, err := store.Get(r.Context(), sid); err == nil {
						next.ServeHTTP(w, r.WithContext(withSession(r.Context(), sess)))
						return
					}
				}
			}

			sess, err := store.Create(r.Context())
			if err != nil {
				writeSystemError(w)
				return
			}
			token, err := cookies.Sign(sess.SessionID)
			if err != nil {
				slog.Error("failed to sign session cookie", "err", err)
				writeSystemError(w)
				return
			}
			http.SetCookie(w, cookies.NewCookie(token))
			next.ServeHTTP(w, r.WithContext(withSession(r.Context(), sess)))
		})
	}
}

// writeSystemError emits the generic workflow envelope. Failures are
// communicated via the body, not the HTTP status.
func writeSystemError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"success":false,"message":"system error, please try again later"}`))
}

func withSession(ctx context.Context, sess *domain.Session) context.Context {
	return context.WithValue(ctx, SessionKey, sess)
}

// SessionFromContext extracts the resolved session from the request context.
func SessionFromContext(ctx context.Context) (*domain.Session, bool) {
	s, ok := ctx.Value(SessionKey).(*domain.Session)
	return s, ok
}
