package keystore

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dytallix/keystore-go/internal/crypto"
)

// ParseKeystore parses and strictly validates a serialized container.
// The whole gate runs before any cryptographic work: malformed input can
// never reach key derivation or decryption.
//
// Validation order: structural parse, then the version field (present and an
// integer, independent of problems elsewhere), then every required field of
// the version 1 schema. Each failure names the offending field.
func ParseKeystore(data []byte) (*Keystore, error) {
	// Probe only the version first so an unsupported version is reported
	// regardless of what else is wrong with the document.
	var probe struct {
		Version *int `json:"version"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "version" {
			return nil, &ValidationError{Field: "version", Reason: "must be an integer"}
		}
		return nil, &ParseError{Err: err}
	}
	if probe.Version == nil {
		return nil, &ValidationError{Field: "version", Reason: "missing"}
	}
	if *probe.Version != Version {
		return nil, &VersionError{Version: *probe.Version}
	}

	var ks Keystore
	if err := json.Unmarshal(data, &ks); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &ValidationError{
				Field:  typeErr.Field,
				Reason: fmt.Sprintf("must be of type %s", typeErr.Type),
			}
		}
		return nil, &ParseError{Err: err}
	}

	if err := ks.Validate(); err != nil {
		return nil, err
	}
	return &ks, nil
}

// Validate checks every required field of a version 1 container. It is run
// by ParseKeystore and again by ImportKeystore, so hand-built containers get
// the same gate as serialized input.
func (k *Keystore) Validate() error {
	if k.Version != Version {
		return &VersionError{Version: k.Version}
	}

	switch k.Algorithm {
	case AlgorithmMLDSA, AlgorithmSLHDSA:
	case "":
		return &ValidationError{Field: "algorithm", Reason: "missing"}
	default:
		return &ValidationError{Field: "algorithm", Reason: fmt.Sprintf("unknown algorithm %q", k.Algorithm)}
	}

	if k.Address == "" {
		return &ValidationError{Field: "address", Reason: "missing"}
	}

	if k.PublicKey != "" {
		if _, err := crypto.FromBase64(k.PublicKey); err != nil {
			return &ValidationError{Field: "publicKey", Reason: "invalid base64"}
		}
	}

	switch k.Crypto.Cipher {
	case CipherAES256GCM:
	case "":
		return &ValidationError{Field: "crypto.cipher", Reason: "missing"}
	default:
		return &ValidationError{Field: "crypto.cipher", Reason: fmt.Sprintf("unsupported cipher %q", k.Crypto.Cipher)}
	}

	switch k.Crypto.KDF {
	case KDFScrypt:
	case "":
		return &ValidationError{Field: "crypto.kdf", Reason: "missing"}
	default:
		return &ValidationError{Field: "crypto.kdf", Reason: fmt.Sprintf("unsupported kdf %q", k.Crypto.KDF)}
	}

	if k.Crypto.Ciphertext == "" {
		return &ValidationError{Field: "crypto.ciphertext", Reason: "missing"}
	}
	if _, err := crypto.FromBase64(k.Crypto.Ciphertext); err != nil {
		return &ValidationError{Field: "crypto.ciphertext", Reason: "invalid base64"}
	}

	if k.Crypto.IV == "" {
		return &ValidationError{Field: "crypto.iv", Reason: "missing"}
	}
	iv, err := crypto.FromBase64(k.Crypto.IV)
	if err != nil {
		return &ValidationError{Field: "crypto.iv", Reason: "invalid base64"}
	}
	if len(iv) != crypto.NonceSize {
		return &ValidationError{Field: "crypto.iv", Reason: fmt.Sprintf("must decode to %d bytes, got %d", crypto.NonceSize, len(iv))}
	}

	if k.Crypto.AuthTag == "" {
		return &ValidationError{Field: "crypto.authTag", Reason: "missing"}
	}
	tag, err := crypto.FromBase64(k.Crypto.AuthTag)
	if err != nil {
		return &ValidationError{Field: "crypto.authTag", Reason: "invalid base64"}
	}
	if len(tag) != crypto.TagSize {
		return &ValidationError{Field: "crypto.authTag", Reason: fmt.Sprintf("must decode to %d bytes, got %d", crypto.TagSize, len(tag))}
	}

	if k.Crypto.Salt == "" {
		return &ValidationError{Field: "crypto.salt", Reason: "missing"}
	}
	salt, err := crypto.FromBase64(k.Crypto.Salt)
	if err != nil {
		return &ValidationError{Field: "crypto.salt", Reason: "invalid base64"}
	}
	if len(salt) < crypto.MinSaltSize {
		return &ValidationError{Field: "crypto.salt", Reason: fmt.Sprintf("must decode to at least %d bytes, got %d", crypto.MinSaltSize, len(salt))}
	}

	if err := k.Crypto.KDFParams.Validate(); err != nil {
		return err
	}

	if k.CreatedAt == "" {
		return &ValidationError{Field: "createdAt", Reason: "missing"}
	}

	return nil
}
