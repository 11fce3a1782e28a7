package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-intake-sheets/internal/config"
)

// HealthHandler serves the liveness and diagnostic probes. These use HTTP
// status (unlike the workflow endpoints) so check scripts can key off it.
type HealthHandler struct {
	cfg *config.Config
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

// Health handles GET /health: basic liveness, no external connections.
func (h *HealthHandler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"message":   "application running normally",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// Debug handles GET /debug: reports presence of required configuration
// without exposing values. Secrets are reported as presence only; the
// inline credentials additionally as valid/invalid JSON and the session
// secret as its length.
func (h *HealthHandler) Debug(w http.ResponseWriter, _ *http.Request) {
	env := make(map[string]string, len(config.RequiredVars)+1)
	for _, name := range config.RequiredVars {
		v := os.Getenv(name)
		switch {
		case v == "":
			env[name] = "Missing"
		case name == "GOOGLE_CREDENTIALS_JSON" && !json.Valid([]byte(v)):
			env[name] = "Present but invalid JSON"
		case name == "GOOGLE_CREDENTIALS_JSON":
			env[name] = "Present and valid JSON"
		default:
			env[name] = "Present"
		}
	}
	env["SESSION_SECRET"] = fmt.Sprintf("Present (length %d)", len(h.cfg.SessionSecret))

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":                "debug",
		"environment_variables": env,
		"timestamp":             time.Now().Format(time.RFC3339),
	})
}
