package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-intake-sheets/internal/application/auth"
	"github.com/go-intake-sheets/internal/domain"
	"github.com/go-intake-sheets/internal/pkg/validate"
	"github.com/go-intake-sheets/internal/transport/http/middleware"
)

// AuthHandler handles challenge issuance, verification and logout.
type AuthHandler struct {
	svc auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// SendCode handles POST /send_code. It never reveals whether the email is
// known elsewhere; no such check exists.
func (h *AuthHandler) SendCode(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		respond(w, false, msgSystemError)
		return
	}
	var body struct {
		Email string `json:"email" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond(w, false, msgSystemError)
		return
	}
	body.Email = strings.TrimSpace(body.Email)
	if err := validate.Struct(body); err != nil {
		respond(w, false, msgEmailRequired)
		return
	}
	email := body.Email
	if !validate.Email(email) {
		respond(w, false, msgEmailInvalid)
		return
	}

	if err := h.svc.Issue(r.Context(), sess.SessionID, email); err != nil {
		switch {
		case errors.Is(err, domain.ErrBadRequest):
			respond(w, false, msgEmailInvalid)
		case errors.Is(err, domain.ErrSendFailed):
			respond(w, false, msgSendFailed)
		default:
			slog.Error("send_code failed", "err", err)
			respond(w, false, msgSystemError)
		}
		return
	}
	respond(w, true, msgCodeSent)
}

// VerifyCode handles POST /verify_code.
func (h *AuthHandler) VerifyCode(w http.ResponseWriter, r *http.Request) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		respond(w, false, msgSystemError)
		return
	}
	var body struct {
		Email string `json:"email" validate:"required"`
		Code  string `json:"code" validate:"required"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond(w, false, msgSystemError)
		return
	}
	body.Email = strings.TrimSpace(body.Email)
	body.Code = strings.TrimSpace(body.Code)
	if err := validate.Struct(body); err != nil {
		respond(w, false, msgCredsRequired)
		return
	}
	email, code := body.Email, body.Code

	if err := h.svc.Verify(r.Context(), sess.SessionID, email, code); err != nil {
		switch {
		case errors.Is(err, domain.ErrNoChallenge):
			respond(w, false, msgNoChallenge)
		case errors.Is(err, domain.ErrEmailMismatch):
			respond(w, false, msgEmailMismatch)
		case errors.Is(err, domain.ErrCodeExpired):
			respond(w, false, msgCodeExpired)
		case errors.Is(err, domain.ErrCodeMismatch):
			respond(w, false, msgCodeMismatch)
		default:
			slog.Error("verify_code failed", "err", err)
			respond(w, false, msgSystemError)
		}
		return
	}
	respond(w, true, msgLoginOK)
}

// Logout handles GET /logout: clears the whole session state and sends
// the user back to the login view.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if sess, ok := middleware.SessionFromContext(r.Context()); ok {
		if err := h.svc.Logout(r.Context(), sess.SessionID); err != nil {
			slog.Warn("logout failed", "err", err)
		}
	}
	http.Redirect(w, r, "/login", http.StatusFound)
}
