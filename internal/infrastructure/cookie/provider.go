// Package cookie signs and verifies the session cookie. The cookie carries
// only the opaque session ID; all session state stays server-side.
package cookie

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Name is the session cookie name.
const Name = "intake_session"

// Claims holds the signed cookie payload.
type Claims struct {
	SessionID string `json:"session_id"`
	jwt.RegisteredClaims
}

// Provider signs and verifies HS256 tokens over the configured secret.
type Provider struct {
	secret []byte
	maxAge time.Duration
}

func NewProvider(secret string, maxAge time.Duration) *Provider {
	return &Provider{secret: []byte(secret), maxAge: maxAge}
}

// Sign returns a signed token embedding the session ID.
func (p *Provider) Sign(sessionID string) (string, error) {
	claims := Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(p.maxAge)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(p.secret)
}

// Verify parses the token and returns the embedded session ID.
func (p *Provider) Verify(tokenStr string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return p.secret, nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.SessionID == "" {
		return "", errors.New("invalid cookie claims")
	}
	return claims.SessionID, nil
}

// NewCookie wraps a signed token in an HTTP cookie.
func (p *Provider) NewCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     Name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(p.maxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
