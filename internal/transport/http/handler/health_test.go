package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-intake-sheets/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	h := NewHealthHandler(&config.Config{})
	rr := httptest.NewRecorder()
	h.Health(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestDebug_ReportsPresenceNotValues(t *testing.T) {
	t.Setenv("SMTP_EMAIL", "sender@example.com")
	t.Setenv("SMTP_PASSWORD", "")
	t.Setenv("GOOGLE_SHEETS_ID", "sheet123")
	t.Setenv("GOOGLE_CREDENTIALS_JSON", `{"type":"service_account"}`)

	h := NewHealthHandler(&config.Config{SessionSecret: "hunter2!"})
	rr := httptest.NewRecorder()
	h.Debug(rr, httptest.NewRequest(http.MethodGet, "/debug", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	var body struct {
		Status string            `json:"status"`
		Env    map[string]string `json:"environment_variables"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "debug", body.Status)
	assert.Equal(t, "Present", body.Env["SMTP_EMAIL"])
	assert.Equal(t, "Missing", body.Env["SMTP_PASSWORD"])
	assert.Equal(t, "Present and valid JSON", body.Env["GOOGLE_CREDENTIALS_JSON"])
	assert.Equal(t, "Present (length 8)", body.Env["SESSION_SECRET"])

	// Never the values themselves.
	assert.NotContains(t, rr.Body.String(), "sender@example.com")
	assert.NotContains(t, rr.Body.String(), "sheet123")
	assert.NotContains(t, rr.Body.String(), "hunter2")
}

func TestDebug_InvalidInlineCredentials(t *testing.T) {
	t.Setenv("GOOGLE_CREDENTIALS_JSON", "{not json")

	h := NewHealthHandler(&config.Config{})
	rr := httptest.NewRecorder()
	h.Debug(rr, httptest.NewRequest(http.MethodGet, "/debug", nil))

	var body struct {
		Env map[string]string `json:"environment_variables"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Present but invalid JSON", body.Env["GOOGLE_CREDENTIALS_JSON"])
}
