package keystore

import (
	"context"
	"errors"
	"fmt"

	"github.com/dytallix/keystore-go/internal/crypto"
)

// ImportResult is what a successful Import returns. The caller owns
// PrivateKey and is responsible for zeroizing it when done.
type ImportResult struct {
	// Algorithm is the scheme tag carried by the container.
	Algorithm Algorithm
	// PrivateKey is the recovered plaintext private key.
	PrivateKey []byte
	// AddressCheck echoes the container's address byte-for-byte so the
	// caller can cross-check the recovered key against an expected address.
	AddressCheck string
}

// Zeroize overwrites the recovered private key with zeros.
func (r *ImportResult) Zeroize() {
	crypto.Zeroize(r.PrivateKey)
}

// Import parses, validates and decrypts a serialized container with
// password. Validation runs entirely before any key derivation; a malformed
// container never reaches the KDF or the cipher.
//
// A wrong password and a tampered container produce the identical
// ErrDecryptionFailed. No retries are performed: an authentication failure
// is terminal for the call.
func Import(ctx context.Context, data []byte, password string) (*ImportResult, error) {
	ks, err := ParseKeystore(data)
	if err != nil {
		return nil, err
	}
	return ImportKeystore(ctx, ks, password)
}

// ImportKeystore decrypts an already parsed container. The container is
// validated again first, so a hand-built Keystore value gets the same gate
// as serialized input.
//
// The derived symmetric key is zeroized before the call returns on every
// path. Like Export, the derivation step blocks by design; the context is
// checked before it starts.
func ImportKeystore(ctx context.Context, ks *Keystore, password string) (*ImportResult, error) {
	if err := ks.Validate(); err != nil {
		return nil, err
	}

	// Validate just vetted these fields; decoding cannot fail here.
	salt, _ := crypto.FromBase64(ks.Crypto.Salt)
	iv, _ := crypto.FromBase64(ks.Crypto.IV)
	ciphertext, _ := crypto.FromBase64(ks.Crypto.Ciphertext)
	tag, _ := crypto.FromBase64(ks.Crypto.AuthTag)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	params := ks.Crypto.KDFParams
	key, err := crypto.DeriveKey([]byte(password), salt, params.N, params.R, params.P, params.DKLen)
	if err != nil {
		return nil, err
	}
	defer crypto.Zeroize(key)

	plaintext, err := crypto.DecryptGCM(ciphertext, tag, key, iv)
	if err != nil {
		if errors.Is(err, crypto.ErrCipherUnavailable) {
			return nil, fmt.Errorf("%w: %v", ErrCryptoUnavailable, err)
		}
		// Single opaque failure: never reveal whether the tag mismatched,
		// the ciphertext was corrupted or the password was wrong.
		return nil, ErrDecryptionFailed
	}

	return &ImportResult{
		Algorithm:    ks.Algorithm,
		PrivateKey:   plaintext,
		AddressCheck: ks.Address,
	}, nil
}
