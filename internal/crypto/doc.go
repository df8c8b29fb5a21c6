// Package crypto provides the cryptographic primitives behind the Dytallix
// keystore format: scrypt key derivation, AES-256-GCM authenticated
// encryption with a detached tag, and secure buffer handling.
//
// # Algorithm Suite
//
// The package composes the following primitives:
//
//   - scrypt (RFC 7914): Memory-hard key derivation function that converts a
//     password into a 256-bit symmetric key. The memory cost is the security
//     property: deriving a key is deliberately slow and RAM-hungry, which
//     makes offline brute force against a stolen keystore expensive.
//
//   - AES-256-GCM: Authenticated encryption (AEAD) for the wrapped private
//     key. The 128-bit authentication tag provides the only signal that a
//     password is correct; callers must treat any verification failure as a
//     single opaque event.
//
//   - SHA-256: Display checksum of public key material. Not an
//     authentication boundary.
//
// # Security Notes
//
// AES-GCM nonces MUST be unique per encryption under a given key. The
// keystore exporter guarantees this by generating a fresh random salt (and
// therefore a fresh derived key) and a fresh nonce for every container.
//
// [DecryptGCM] collapses every authentication failure into
// [ErrDecryptionFailed]. Callers must not add detail that would let an
// attacker distinguish a wrong password from a tampered container.
//
// Derived keys and plaintext key material are ephemeral. Call [Zeroize] on
// every secret buffer before releasing it, on success and failure paths
// alike.
//
// # Base64 Encoding
//
// Container byte fields use standard base64 with padding (RFC 4648 §4) via
// [ToBase64] and [FromBase64].
package crypto
