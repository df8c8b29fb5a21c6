package keystore

import (
	"context"
	"fmt"
	"time"

	"github.com/dytallix/keystore-go/internal/crypto"
)

// MinPasswordLen is the minimum export password length in characters.
const MinPasswordLen = 8

// Export encrypts the wallet's private key under password and returns the
// assembled container. A fresh random salt and IV are generated for every
// call, so exporting the same wallet twice never reuses a nonce.
//
// The key derivation step is expensive by design and can block for seconds
// at the default cost; run Export off any latency-sensitive goroutine. The
// context is checked before the derivation starts, not during it: partial
// derivations are meaningless and are never returned.
//
// The raw private key and the derived symmetric key are zeroized before
// Export returns, on success and failure paths alike.
func Export(ctx context.Context, wallet Wallet, password string, opts ...ExportOption) (*Keystore, error) {
	if len(password) < MinPasswordLen {
		return nil, fmt.Errorf("%w: need at least %d characters, got %d", ErrPasswordTooShort, MinPasswordLen, len(password))
	}

	cfg := exportConfig{
		now: func() time.Time { return time.Now().UTC() },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	params, err := resolveKDFParams(cfg.kdf)
	if err != nil {
		return nil, err
	}

	address, err := wallet.Address(ctx)
	if err != nil {
		return nil, fmt.Errorf("read wallet address: %w", err)
	}
	algorithm, err := wallet.Algorithm(ctx)
	if err != nil {
		return nil, fmt.Errorf("read wallet algorithm: %w", err)
	}
	switch algorithm {
	case AlgorithmMLDSA, AlgorithmSLHDSA:
	default:
		return nil, &ValidationError{Field: "algorithm", Reason: fmt.Sprintf("unknown algorithm %q", algorithm)}
	}
	publicKey, err := wallet.PublicKey(ctx)
	if err != nil {
		return nil, fmt.Errorf("read wallet public key: %w", err)
	}
	privateKey, err := wallet.PrivateKey(ctx)
	if err != nil {
		return nil, fmt.Errorf("read wallet private key: %w", err)
	}
	defer crypto.Zeroize(privateKey)

	salt, err := crypto.RandomBytes(crypto.SaltSize)
	if err != nil {
		return nil, err
	}
	iv, err := crypto.RandomBytes(crypto.NonceSize)
	if err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	key, err := crypto.DeriveKey([]byte(password), salt, params.N, params.R, params.P, params.DKLen)
	if err != nil {
		return nil, err
	}
	defer crypto.Zeroize(key)

	ciphertext, tag, err := crypto.EncryptGCM(privateKey, key, iv)
	if err != nil {
		return nil, err
	}

	return &Keystore{
		Version:   Version,
		Algorithm: algorithm,
		Address:   address,
		PublicKey: crypto.ToBase64(publicKey),
		Crypto: CryptoParams{
			Cipher:     CipherAES256GCM,
			Ciphertext: crypto.ToBase64(ciphertext),
			IV:         crypto.ToBase64(iv),
			AuthTag:    crypto.ToBase64(tag),
			Salt:       crypto.ToBase64(salt),
			KDF:        KDFScrypt,
			KDFParams:  params,
		},
		CreatedAt: cfg.now().Format(time.RFC3339),
		Meta: Meta{
			Checksum: crypto.Checksum(publicKey),
			Note:     cfg.note,
		},
	}, nil
}
