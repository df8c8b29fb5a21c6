package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
)

// Zeroize overwrites every byte of b with zero. It works in place and never
// allocates a copy of the secret.
func Zeroize(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// RandomBytes returns n cryptographically secure random bytes. Safe to call
// from concurrent goroutines.
func RandomBytes(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return b, nil
}

// Checksum returns the base64-encoded SHA-256 digest of data. Used for
// display and integrity hints only, never for authentication decisions.
func Checksum(data []byte) string {
	sum := sha256.Sum256(data)
	return ToBase64(sum[:])
}
