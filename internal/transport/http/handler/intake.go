package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-intake-sheets/internal/application/intake"
	"github.com/go-intake-sheets/internal/domain"
	"github.com/go-intake-sheets/internal/pkg/validate"
	"github.com/go-intake-sheets/internal/transport/http/middleware"
)

// IntakeHandler handles authenticated profile-link submissions.
type IntakeHandler struct {
	svc intake.Service
}

func NewIntakeHandler(svc intake.Service) *IntakeHandler {
	return &IntakeHandler{svc: svc}
}

// SubmitLinkedIn handles POST /submit_linkedin. The submission is recorded
// under the session's authenticated email, never one supplied by the body.
func (h *IntakeHandler) SubmitLinkedIn(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok || !sess.LoggedIn {
		respond(w, false, msgLoginRequired)
		return
	}
	var body struct {
		LinkedinURLs string `json:"linkedin_urls" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond(w, false, msgSystemError)
		return
	}
	body.LinkedinURLs = strings.TrimSpace(body.LinkedinURLs)
	if err := validate.Struct(body); err != nil {
		respond(w, false, msgLinksRequired)
		return
	}
	raw := body.LinkedinURLs

	count, err := h.svc.Submit(r.Context(), sess.UserEmail, raw)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNoValidLinks):
			respond(w, false, msgNoValidLinks)
		case errors.Is(err, domain.ErrLedgerUnavailable):
			respond(w, false, msgLedgerFailed)
		default:
			slog.Error("submit_linkedin failed", "err", err)
			respond(w, false, msgSystemError)
		}
		return
	}
	respond(w, true, fmt.Sprintf("successfully submitted %d LinkedIn link(s)", count))
}
