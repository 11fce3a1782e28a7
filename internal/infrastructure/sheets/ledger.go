// Package sheets implements the append-only ledger on Google Sheets.
package sheets

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/go-intake-sheets/internal/config"
	"github.com/go-intake-sheets/internal/domain"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const scope = "https://www.googleapis.com/auth/spreadsheets"

// appendRange is the fixed destination table; values.append locates the
// first empty row below it.
const appendRange = "A1"

// Ledger appends validated rows to the external store. Rows are immutable
// once appended; there is no update or delete path.
type Ledger interface {
	Append(ctx context.Context, rows []domain.LedgerRow) error
}

type ledger struct {
	svc           *sheets.Service
	spreadsheetID string
}

// NewLedger opens the ledger spreadsheet using service-account credentials
// from a file path or, failing that, inline JSON. Errors here are
// configuration problems; callers degrade rather than abort.
func NewLedger(ctx context.Context, cfg *config.Config) (Ledger, error) {
	if cfg.SheetsID == "" {
		return nil, errors.New("no spreadsheet ID configured")
	}
	opt, err := credentialsOption(cfg)
	if err != nil {
		return nil, err
	}
	svc, err := sheets.NewService(ctx, opt, option.WithScopes(scope))
	if err != nil {
		return nil, fmt.Errorf("sheets client: %w", err)
	}
	return &ledger{svc: svc, spreadsheetID: cfg.SheetsID}, nil
}

func credentialsOption(cfg *config.Config) (option.ClientOption, error) {
	if cfg.CredentialsPath != "" {
		if _, err := os.Stat(cfg.CredentialsPath); err == nil {
			return option.WithCredentialsFile(cfg.CredentialsPath), nil
		}
	}
	if cfg.CredentialsJSON != "" {
		return option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)), nil
	}
	return nil, errors.New("no Google service-account credentials found")
}

// Append writes all rows in a single batch call. The batch either appends
// as a whole or the operation fails; partial-failure semantics belong to
// the external store.
func (l *ledger) Append(ctx context.Context, rows []domain.LedgerRow) error {
	values := make([][]interface{}, 0, len(rows))
	for _, r := range rows {
		values = append(values, r.Values())
	}
	vr := &sheets.ValueRange{Values: values}
	_, err := l.svc.Spreadsheets.Values.
		Append(l.spreadsheetID, appendRange, vr).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("append %d rows: %v: %w", len(rows), err, domain.ErrLedgerUnavailable)
	}
	return nil
}
