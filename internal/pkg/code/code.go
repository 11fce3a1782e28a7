// Package code generates short numeric verification codes.
package code

import "math/rand"

const (
	digits = "0123456789"
	length = 6
)

// Generate returns a 6-character code drawn uniformly with replacement
// from 0-9. Not cryptographically hardened; the code only needs to resist
// casual guessing within the 5-minute expiry window.
func Generate() string {
	b := make([]byte, length)
	for i := range b {
		b[i] = digits[rand.Intn(len(digits))]
	}
	return string(b)
}
