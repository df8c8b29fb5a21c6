package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

// EncryptGCM encrypts plaintext using AES-256-GCM and returns the ciphertext
// and the 16-byte authentication tag separately. The ciphertext has the same
// length as the plaintext.
//
// Key and nonce size violations are programmer errors, reported as distinct
// errors; they never depend on external input.
func EncryptGCM(plaintext, key, iv []byte) (ciphertext, tag []byte, err error) {
	if len(key) != KeySize {
		return nil, nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), KeySize)
	}
	if len(iv) != NonceSize {
		return nil, nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidNonceSize, len(iv), NonceSize)
	}

	aead, err := newGCM(key)
	if err != nil {
		return nil, nil, err
	}

	sealed := aead.Seal(nil, iv, plaintext, nil)
	return sealed[:len(sealed)-TagSize], sealed[len(sealed)-TagSize:], nil
}

// DecryptGCM decrypts ciphertext using AES-256-GCM with a detached tag.
// Any authentication failure returns ErrDecryptionFailed with no further
// detail; partial plaintext is never returned.
func DecryptGCM(ciphertext, tag, key, iv []byte) ([]byte, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidKeySize, len(key), KeySize)
	}
	if len(iv) != NonceSize {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrInvalidNonceSize, len(iv), NonceSize)
	}
	if len(tag) != TagSize {
		// A truncated or oversized tag is indistinguishable from a failed
		// verification to the caller.
		return nil, ErrDecryptionFailed
	}

	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	sealed := make([]byte, 0, len(ciphertext)+len(tag))
	sealed = append(sealed, ciphertext...)
	sealed = append(sealed, tag...)

	plaintext, err := aead.Open(nil, iv, sealed, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCipherUnavailable, err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCipherUnavailable, err)
	}
	return aead, nil
}
