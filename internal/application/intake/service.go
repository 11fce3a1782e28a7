package intake

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-intake-sheets/internal/domain"
	"github.com/go-intake-sheets/internal/infrastructure/sheets"
	"github.com/go-intake-sheets/internal/pkg/linkedin"
)

// Service turns raw multi-line submissions into ledger rows.
type Service interface {
	// Submit validates and normalizes the candidate links in rawText and
	// appends one row per valid link under the given email. Returns the
	// number of rows written.
	Submit(ctx context.Context, email, rawText string) (int, error)
}

type service struct {
	ledger  sheets.Ledger
	timeout time.Duration

	// injectable for tests
	now func() time.Time
}

func NewService(ledger sheets.Ledger, timeout time.Duration) Service {
	return &service{ledger: ledger, timeout: timeout, now: time.Now}
}

func (s *service) Submit(ctx context.Context, email, rawText string) (int, error) {
	now := s.now()
	var rows []domain.LedgerRow
	for _, line := range strings.Split(rawText, "\n") {
		candidate := strings.TrimSpace(line)
		if candidate == "" {
			continue
		}
		if !linkedin.ValidProfileURL(candidate) {
			// Invalid candidates are dropped, not reported per-line.
			slog.Warn("invalid profile link dropped", "url", candidate)
			continue
		}
		rows = append(rows, domain.LedgerRow{
			Email:       email,
			URL:         linkedin.NormalizeProfileURL(candidate),
			SubmittedAt: now,
			Status:      domain.StatusPending,
		})
	}
	if len(rows) == 0 {
		return 0, fmt.Errorf("submission from %s: %w", email, domain.ErrNoValidLinks)
	}

	if s.ledger == nil {
		slog.Error("ledger not configured, dropping submission", "email", email, "rows", len(rows))
		return 0, fmt.Errorf("ledger not configured: %w", domain.ErrLedgerUnavailable)
	}

	appendCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := s.ledger.Append(appendCtx, rows); err != nil {
		slog.Error("ledger append failed", "email", email, "rows", len(rows), "err", err)
		if errors.Is(err, domain.ErrLedgerUnavailable) {
			return 0, err
		}
		return 0, fmt.Errorf("%v: %w", err, domain.ErrLedgerUnavailable)
	}
	slog.Info("submission recorded", "email", email, "rows", len(rows))
	return len(rows), nil
}
