package crypto

import (
	"fmt"

	"golang.org/x/crypto/scrypt"
)

// ValidateKDFParams checks scrypt cost parameters: n must be a nonzero power
// of two, r, p and dklen must be positive. Pure function, no I/O.
func ValidateKDFParams(n, r, p, dklen int) error {
	if n <= 0 || n&(n-1) != 0 {
		return fmt.Errorf("%w: n must be a nonzero power of two, got %d", ErrInvalidKDFParams, n)
	}
	if r <= 0 {
		return fmt.Errorf("%w: r must be positive, got %d", ErrInvalidKDFParams, r)
	}
	if p <= 0 {
		return fmt.Errorf("%w: p must be positive, got %d", ErrInvalidKDFParams, p)
	}
	if dklen <= 0 {
		return fmt.Errorf("%w: dklen must be positive, got %d", ErrInvalidKDFParams, dklen)
	}
	return nil
}

// DeriveKey derives a dklen-byte key from password and salt using scrypt.
// The call is CPU- and memory-intensive by design and can block for seconds
// at the default cost; that is the property that resists offline brute
// force. Deterministic for identical inputs.
func DeriveKey(password, salt []byte, n, r, p, dklen int) ([]byte, error) {
	if err := ValidateKDFParams(n, r, p, dklen); err != nil {
		return nil, err
	}
	key, err := scrypt.Key(password, salt, n, r, p, dklen)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKDFParams, err)
	}
	return key, nil
}
