package bip38

import "crypto/rand"

// RandomSource produces n cryptographically uniform bytes. Callers may
// substitute a deterministic source for testing.
type RandomSource func(n int) ([]byte, error)

// DefaultRandomSource reads from crypto/rand.
func DefaultRandomSource(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, newErr(InvalidParameter, "failed to read random bytes: %v", err)
	}
	return b, nil
}
