package walletgen

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/cloudflare/circl/sign/mldsa/mldsa65"
	"github.com/cloudflare/circl/sign/slhdsa"

	keystore "github.com/dytallix/keystore-go"
	"github.com/dytallix/keystore-go/internal/crypto"
)

// Key sizes in bytes for the supported schemes.
const (
	// MLDSAPublicKeySize is the size of an ML-DSA-65 public key.
	MLDSAPublicKeySize = 1952
	// MLDSAPrivateKeySize is the size of an ML-DSA-65 private key.
	MLDSAPrivateKeySize = 4032
	// SLHDSAPublicKeySize is the size of an SLH-DSA-SHA2-256s public key.
	SLHDSAPublicKeySize = 64
	// SLHDSAPrivateKeySize is the size of an SLH-DSA-SHA2-256s private key.
	SLHDSAPrivateKeySize = 128
)

var (
	// ErrUnsupportedAlgorithm is returned for algorithm tags walletgen
	// cannot generate keys for.
	ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

	// ErrInvalidKeySize is returned when raw key bytes have the wrong
	// length for the declared algorithm.
	ErrInvalidKeySize = errors.New("invalid key size for algorithm")
)

// Wallet holds a freshly generated or reconstructed post-quantum keypair.
// It implements keystore.Wallet; the accessors never fail and never block.
type Wallet struct {
	algorithm  keystore.Algorithm
	address    string
	publicKey  []byte
	privateKey []byte
}

// Generate creates a new wallet for the given scheme using the system's
// secure random source.
func Generate(algorithm keystore.Algorithm) (*Wallet, error) {
	switch algorithm {
	case keystore.AlgorithmMLDSA:
		pub, priv, err := mldsa65.GenerateKey(rand.Reader)
		if err != nil {
			return nil, fmt.Errorf("generate ML-DSA-65 keypair: %w", err)
		}
		// MarshalBinary never fails for freshly generated keys
		pubBytes, _ := pub.MarshalBinary()
		privBytes, _ := priv.MarshalBinary()
		return FromKeys(algorithm, pubBytes, privBytes)

	case keystore.AlgorithmSLHDSA:
		pub, priv, err := slhdsa.GenerateKey(rand.Reader, slhdsa.SHA2_256s)
		if err != nil {
			return nil, fmt.Errorf("generate SLH-DSA keypair: %w", err)
		}
		pubBytes, _ := pub.MarshalBinary()
		privBytes, _ := priv.MarshalBinary()
		return FromKeys(algorithm, pubBytes, privBytes)

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algorithm)
	}
}

// FromKeys rebuilds a wallet from raw key bytes, deriving the address from
// the public key. The byte slices are copied; the caller keeps ownership of
// its own buffers.
func FromKeys(algorithm keystore.Algorithm, publicKey, privateKey []byte) (*Wallet, error) {
	var wantPK, wantSK int
	switch algorithm {
	case keystore.AlgorithmMLDSA:
		wantPK, wantSK = MLDSAPublicKeySize, MLDSAPrivateKeySize
	case keystore.AlgorithmSLHDSA:
		wantPK, wantSK = SLHDSAPublicKeySize, SLHDSAPrivateKeySize
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algorithm)
	}
	if len(publicKey) != wantPK {
		return nil, fmt.Errorf("%w: public key is %d bytes, want %d", ErrInvalidKeySize, len(publicKey), wantPK)
	}
	if len(privateKey) != wantSK {
		return nil, fmt.Errorf("%w: private key is %d bytes, want %d", ErrInvalidKeySize, len(privateKey), wantSK)
	}

	address, err := DeriveAddress(publicKey)
	if err != nil {
		return nil, err
	}

	return &Wallet{
		algorithm:  algorithm,
		address:    address,
		publicKey:  append([]byte(nil), publicKey...),
		privateKey: append([]byte(nil), privateKey...),
	}, nil
}

// Address returns the wallet's canonical bech32 address.
func (w *Wallet) Address(ctx context.Context) (string, error) {
	return w.address, nil
}

// Algorithm returns the wallet's scheme tag.
func (w *Wallet) Algorithm(ctx context.Context) (keystore.Algorithm, error) {
	return w.algorithm, nil
}

// PublicKey returns a copy of the raw public key bytes.
func (w *Wallet) PublicKey(ctx context.Context) ([]byte, error) {
	return append([]byte(nil), w.publicKey...), nil
}

// PrivateKey returns a copy of the raw private key bytes. The wallet keeps
// its own buffer so it can serve later calls; use Zeroize to destroy it.
func (w *Wallet) PrivateKey(ctx context.Context) ([]byte, error) {
	return append([]byte(nil), w.privateKey...), nil
}

// Zeroize overwrites the wallet's private key material. The wallet is
// unusable for export afterwards.
func (w *Wallet) Zeroize() {
	crypto.Zeroize(w.privateKey)
}
