package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-intake-sheets/internal/infrastructure/cookie"
	"github.com/go-intake-sheets/internal/infrastructure/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionEcho(t *testing.T) (http.Handler, *string) {
	t.Helper()
	var seen string
	h := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := SessionFromContext(r.Context())
		require.True(t, ok)
		seen = sess.SessionID
		w.WriteHeader(http.StatusOK)
	})
	return h, &seen
}

func TestSession_CreatesOnFirstRequest(t *testing.T) {
	store := memstore.NewSessionStore(time.Hour)
	cookies := cookie.NewProvider("secret", time.Hour)
	h, seen := sessionEcho(t)

	rr := httptest.NewRecorder()
	Session(store, cookies)(h).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, *seen)

	set := rr.Result().Cookies()
	require.Len(t, set, 1)
	assert.Equal(t, cookie.Name, set[0].Name)

	sid, err := cookies.Verify(set[0].Value)
	require.NoError(t, err)
	assert.Equal(t, *seen, sid)
}

func TestSession_ReusesExistingSession(t *testing.T) {
	store := memstore.NewSessionStore(time.Hour)
	cookies := cookie.NewProvider("secret", time.Hour)
	h, seen := sessionEcho(t)
	mw := Session(store, cookies)(h)

	rr := httptest.NewRecorder()
	mw.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	first := *seen
	set := rr.Result().Cookies()
	require.Len(t, set, 1)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(set[0])
	rr2 := httptest.NewRecorder()
	mw.ServeHTTP(rr2, r)

	assert.Equal(t, first, *seen)
	assert.Empty(t, rr2.Result().Cookies(), "no new cookie for a valid session")
}

func TestSession_TamperedCookieGetsFreshSession(t *testing.T) {
	store := memstore.NewSessionStore(time.Hour)
	cookies := cookie.NewProvider("secret", time.Hour)
	h, seen := sessionEcho(t)
	mw := Session(store, cookies)(h)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: cookie.Name, Value: "forged-token"})
	rr := httptest.NewRecorder()
	mw.ServeHTTP(rr, r)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, *seen)
	assert.Len(t, rr.Result().Cookies(), 1, "fresh cookie issued")
}

func TestSession_UnknownSessionIDGetsFreshSession(t *testing.T) {
	store := memstore.NewSessionStore(time.Hour)
	cookies := cookie.NewProvider("secret", time.Hour)
	h, seen := sessionEcho(t)
	mw := Session(store, cookies)(h)

	// Signed token for a session the store no longer holds (e.g. restart).
	token, err := cookies.Sign("01GONE")
	require.NoError(t, err)
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: cookie.Name, Value: token})
	rr := httptest.NewRecorder()
	mw.ServeHTTP(rr, r)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotEqual(t, "01GONE", *seen)
}
