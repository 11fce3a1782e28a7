package http

import (
	"github.com/go-intake-sheets/internal/infrastructure/cookie"
	"github.com/go-intake-sheets/internal/infrastructure/memstore"
	"github.com/go-intake-sheets/internal/infrastructure/sheets"
	"github.com/go-intake-sheets/internal/infrastructure/smtp"
)

// Deps holds all infrastructure dependencies for the router. Mailer and
// Ledger may be nil when their configuration is missing; the affected
// endpoints then answer with their generic failure message.
type Deps struct {
	Sessions *memstore.SessionStore
	Cookies  *cookie.Provider
	Mailer   smtp.Mailer
	Ledger   sheets.Ledger
}
