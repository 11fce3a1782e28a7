package handler

import (
	"encoding/json"
	"net/http"
)

// Envelope is the response wrapper for the workflow endpoints. Failures
// are communicated through the success field, not HTTP status codes; the
// workflow endpoints always answer 200.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// User-facing message catalogue. Handlers map domain errors onto these;
// transport and ledger details stay in the server logs.
const (
	msgEmailRequired = "please enter an email address"
	msgEmailInvalid  = "invalid email address format"
	msgCodeSent      = "verification code sent, please check your email"
	msgSendFailed    = "failed to send verification code, please try again later"
	msgCredsRequired = "please enter your email and verification code"
	msgNoChallenge   = "please request a verification code first"
	msgEmailMismatch = "email does not match"
	msgCodeExpired   = "verification code expired, please request a new one"
	msgCodeMismatch  = "incorrect verification code"
	msgLoginOK       = "login successful"
	msgLoginRequired = "please log in first"
	msgLinksRequired = "please enter LinkedIn links"
	msgNoValidLinks  = "no valid LinkedIn links"
	msgLedgerFailed  = "failed to save data, please try again later"
	msgSystemError   = "system error, please try again later"
)

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respond(w http.ResponseWriter, success bool, message string) {
	writeJSON(w, http.StatusOK, Envelope{Success: success, Message: message})
}
