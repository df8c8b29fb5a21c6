package crypto

import "errors"

var (
	// ErrInvalidKeySize is returned when the AES key size is invalid.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidNonceSize is returned when the nonce size is invalid.
	ErrInvalidNonceSize = errors.New("invalid nonce size")

	// ErrDecryptionFailed is returned when authenticated decryption fails.
	// It carries no detail about why: a wrong key, a flipped ciphertext bit
	// and a truncated tag all produce this same error.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrInvalidKDFParams is returned when scrypt cost parameters are
	// out of range.
	ErrInvalidKDFParams = errors.New("invalid kdf parameters")

	// ErrCipherUnavailable is returned when the AEAD cipher cannot be
	// constructed in this runtime.
	ErrCipherUnavailable = errors.New("cipher unavailable")
)
