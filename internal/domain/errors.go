package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to user-facing messages without
// leaking infrastructure details.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")

	// Challenge verification failures, one per kind so handlers can return
	// a specific message for each.
	ErrNoChallenge   = errors.New("no outstanding verification code")
	ErrEmailMismatch = errors.New("email does not match verification code")
	ErrCodeExpired   = errors.New("verification code expired")
	ErrCodeMismatch  = errors.New("verification code mismatch")

	// ErrSendFailed means the mail transport rejected the delivery attempt.
	// The issued challenge is left in place; see auth.Service.Issue.
	ErrSendFailed = errors.New("verification code delivery failed")

	// Submission failures.
	ErrNoValidLinks      = errors.New("no valid profile links")
	ErrLedgerUnavailable = errors.New("ledger unavailable")
)
