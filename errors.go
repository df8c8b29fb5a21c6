package keystore

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrPasswordTooShort is returned when an export password is shorter
	// than MinPasswordLen. Raised before any wallet accessor is called.
	ErrPasswordTooShort = errors.New("password too short")

	// ErrInvalidKeystore is returned when a container fails schema
	// validation. Every *ValidationError matches it.
	ErrInvalidKeystore = errors.New("invalid keystore")

	// ErrMalformedJSON is returned when a container is not syntactically
	// valid JSON.
	ErrMalformedJSON = errors.New("malformed keystore JSON")

	// ErrUnsupportedVersion is returned when a container declares a format
	// version this package does not implement.
	ErrUnsupportedVersion = errors.New("unsupported keystore version")

	// ErrDecryptionFailed is returned when authenticated decryption fails.
	// It deliberately does not distinguish a wrong password from a tampered
	// or corrupted container.
	ErrDecryptionFailed = errors.New("keystore decryption failed: check your password")

	// ErrCryptoUnavailable is returned when the underlying cryptographic
	// primitives cannot be used in this runtime. Fatal, not retryable.
	ErrCryptoUnavailable = errors.New("cryptographic backend unavailable")
)

// KeystoreError is implemented by all typed errors in this package.
type KeystoreError interface {
	error
	KeystoreError() // marker method
}

// ValidationError reports a missing, malformed or out-of-range container
// field. Always raised before any secret-bearing buffer is populated.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid keystore: %s: %s", e.Field, e.Reason)
}

// Is implements errors.Is for sentinel error matching.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidKeystore
}

// KeystoreError implements the KeystoreError interface.
func (e *ValidationError) KeystoreError() {}

// ParseError reports syntactically invalid container JSON.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("malformed keystore JSON: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for sentinel error matching. A parse failure is
// also a validation failure for taxonomy purposes.
func (e *ParseError) Is(target error) bool {
	return target == ErrMalformedJSON || target == ErrInvalidKeystore
}

// KeystoreError implements the KeystoreError interface.
func (e *ParseError) KeystoreError() {}

// VersionError reports a container version this package does not implement.
// It carries the offending version for diagnostics.
type VersionError struct {
	Version int
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("unsupported keystore version %d, expected %d", e.Version, Version)
}

// Is implements errors.Is for sentinel error matching.
func (e *VersionError) Is(target error) bool {
	return target == ErrUnsupportedVersion
}

// KeystoreError implements the KeystoreError interface.
func (e *VersionError) KeystoreError() {}
