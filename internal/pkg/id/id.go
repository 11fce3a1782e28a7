package id

import (
	"crypto/rand"

	"github.com/oklog/ulid/v2"
)

// New generates a new ULID string, used as the opaque session identifier
// carried in the signed cookie. ULIDs are lexicographically sortable by
// creation time and safe to log.
func New() string {
	return ulid.MustNew(ulid.Now(), rand.Reader).String()
}
