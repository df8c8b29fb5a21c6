package keystore

import "context"

// Wallet supplies the key material an Export call wraps. The post-quantum
// engine behind it (key generation, signing, verification) is outside this
// package; implementations may be backed by anything from in-memory keys to
// a remote signer, so every accessor takes a context and may block.
//
// Export calls the accessors in order: Address, Algorithm, PublicKey,
// PrivateKey.
type Wallet interface {
	// Address returns the wallet's full canonical address.
	Address(ctx context.Context) (string, error)

	// Algorithm returns the scheme tag of the wallet's key material.
	Algorithm(ctx context.Context) (Algorithm, error)

	// PublicKey returns the raw public key bytes.
	PublicKey(ctx context.Context) ([]byte, error)

	// PrivateKey returns the raw private key bytes. Export zeroizes the
	// returned slice after encrypting it; implementations that need to keep
	// the key must return a copy.
	PrivateKey(ctx context.Context) ([]byte, error)
}
