package domain

import "time"

// RowStatus is the processing state recorded with every ledger row.
// The ledger is append-only; rows never change status inside this system.
type RowStatus string

const StatusPending RowStatus = "Pending"

// LedgerRow is one validated, normalized profile link ready to append to
// the external ledger. Immutable once appended.
type LedgerRow struct {
	Email       string    `json:"email"`
	URL         string    `json:"url"`
	SubmittedAt time.Time `json:"submitted_at"`
	Status      RowStatus `json:"status"`
}

// Values renders the row in the ledger wire shape:
// [email, url, "YYYY-MM-DD HH:MM:SS", status].
func (r LedgerRow) Values() []interface{} {
	return []interface{}{
		r.Email,
		r.URL,
		r.SubmittedAt.Format("2006-01-02 15:04:05"),
		string(r.Status),
	}
}
