package keystore

import (
	"encoding/json"

	"github.com/dytallix/keystore-go/internal/crypto"
)

// Version is the container format version this package reads and writes.
const Version = 1

// Fixed discriminators of the crypto sub-record.
const (
	CipherAES256GCM = "aes-256-gcm"
	KDFScrypt       = "scrypt"
)

// Algorithm identifies the post-quantum signature scheme that produced the
// wrapped key. Opaque to this package; passed through unchanged.
type Algorithm string

const (
	// AlgorithmMLDSA tags ML-DSA (FIPS 204, lattice-based) key material.
	AlgorithmMLDSA Algorithm = "ML-DSA"
	// AlgorithmSLHDSA tags SLH-DSA (FIPS 205, hash-based) key material.
	AlgorithmSLHDSA Algorithm = "SLH-DSA"
)

// Keystore is the persisted container. A container is created once per
// Export call and is immutable thereafter; Import never mutates it.
//
// All byte-valued fields are standard base64 strings so the format
// round-trips through any conforming implementation.
type Keystore struct {
	// Version is the container format version. MUST be 1.
	Version int `json:"version"`
	// Algorithm is the scheme that produced the wrapped key.
	Algorithm Algorithm `json:"algorithm"`
	// Address is the wallet's full canonical address, stored and returned
	// byte-for-byte. Never truncated, never re-derived.
	Address string `json:"address"`
	// PublicKey is the base64-encoded raw public key. Informational only.
	PublicKey string `json:"publicKey,omitempty"`
	// Crypto holds the encrypted key and the parameters needed to recover it.
	Crypto CryptoParams `json:"crypto"`
	// CreatedAt is the export timestamp (ISO 8601).
	CreatedAt string `json:"createdAt"`
	// Meta carries display-only metadata.
	Meta Meta `json:"meta"`
}

// CryptoParams is the crypto sub-record of a container.
type CryptoParams struct {
	// Cipher identifies the AEAD cipher. MUST be "aes-256-gcm".
	Cipher string `json:"cipher"`
	// Ciphertext is the base64-encoded encrypted private key. Same length
	// as the plaintext once decoded.
	Ciphertext string `json:"ciphertext"`
	// IV is the base64-encoded 12-byte AES-GCM nonce.
	IV string `json:"iv"`
	// AuthTag is the base64-encoded 16-byte authentication tag.
	AuthTag string `json:"authTag"`
	// Salt is the base64-encoded scrypt salt, at least 16 bytes decoded.
	Salt string `json:"salt"`
	// KDF identifies the key derivation function. MUST be "scrypt".
	KDF string `json:"kdf"`
	// KDFParams are the scrypt cost parameters the key was derived with.
	KDFParams KDFParams `json:"kdfparams"`
}

// KDFParams are scrypt cost parameters. Import always uses the container's
// own parameters, never the caller's defaults.
type KDFParams struct {
	// N is the CPU/memory cost. Must be a nonzero power of two.
	N int `json:"n"`
	// R is the block size parameter.
	R int `json:"r"`
	// P is the parallelization parameter.
	P int `json:"p"`
	// DKLen is the derived key length in bytes. aes-256-gcm fixes it to 32.
	DKLen int `json:"dklen"`
}

// Meta is display-only container metadata.
type Meta struct {
	// Checksum is the base64-encoded SHA-256 digest of the public key.
	// An integrity hint, not a security boundary.
	Checksum string `json:"checksum"`
	// Note is optional free text attached at export time.
	Note string `json:"note,omitempty"`
}

// DefaultKDFParams returns the scrypt cost parameters used when the caller
// supplies no overrides: N=2^18, r=8, p=1, dklen=32.
func DefaultKDFParams() KDFParams {
	return KDFParams{
		N:     crypto.DefaultScryptN,
		R:     crypto.DefaultScryptR,
		P:     crypto.DefaultScryptP,
		DKLen: crypto.DefaultDKLen,
	}
}

// Validate checks the scrypt cost parameters: n must be a nonzero power of
// two, r and p positive, and dklen exactly 32 since aes-256-gcm requires a
// 256-bit key.
func (p KDFParams) Validate() error {
	if p.N <= 0 || p.N&(p.N-1) != 0 {
		return &ValidationError{Field: "crypto.kdfparams.n", Reason: "must be a nonzero power of two"}
	}
	if p.R <= 0 {
		return &ValidationError{Field: "crypto.kdfparams.r", Reason: "must be a positive integer"}
	}
	if p.P <= 0 {
		return &ValidationError{Field: "crypto.kdfparams.p", Reason: "must be a positive integer"}
	}
	if p.DKLen <= 0 {
		return &ValidationError{Field: "crypto.kdfparams.dklen", Reason: "must be a positive integer"}
	}
	if p.DKLen != crypto.KeySize {
		return &ValidationError{Field: "crypto.kdfparams.dklen", Reason: "aes-256-gcm requires a 32-byte derived key"}
	}
	return nil
}

// resolveKDFParams merges caller overrides onto the defaults. Zero-valued
// fields keep their default; the merged result is validated.
func resolveKDFParams(overrides *KDFParams) (KDFParams, error) {
	params := DefaultKDFParams()
	if overrides != nil {
		if overrides.N != 0 {
			params.N = overrides.N
		}
		if overrides.R != 0 {
			params.R = overrides.R
		}
		if overrides.P != 0 {
			params.P = overrides.P
		}
		if overrides.DKLen != 0 {
			params.DKLen = overrides.DKLen
		}
	}
	if err := params.Validate(); err != nil {
		return KDFParams{}, err
	}
	return params, nil
}

// Serialize encodes the container as JSON with the exact wire field names.
func (k *Keystore) Serialize() ([]byte, error) {
	return json.Marshal(k)
}

// SerializeIndent encodes the container as human-readable JSON, for writing
// keystore files meant to be inspected by people.
func (k *Keystore) SerializeIndent() ([]byte, error) {
	return json.MarshalIndent(k, "", "  ")
}

// DecodedPublicKey returns the raw public key bytes, or nil when the
// container does not carry one.
func (k *Keystore) DecodedPublicKey() ([]byte, error) {
	if k.PublicKey == "" {
		return nil, nil
	}
	raw, err := crypto.FromBase64(k.PublicKey)
	if err != nil {
		return nil, &ValidationError{Field: "publicKey", Reason: "must be valid base64"}
	}
	return raw, nil
}
