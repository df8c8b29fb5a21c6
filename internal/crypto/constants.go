package crypto

const (
	// KeySize is the size of an AES-256 key in bytes.
	KeySize = 32
	// NonceSize is the size of an AES-GCM nonce in bytes.
	NonceSize = 12
	// TagSize is the size of an AES-GCM authentication tag in bytes.
	TagSize = 16

	// SaltSize is the salt length generated for new keystores in bytes.
	SaltSize = 16
	// MinSaltSize is the smallest decoded salt accepted on import.
	MinSaltSize = 16

	// DefaultScryptN is the default scrypt CPU/memory cost (2^18, ~256MB).
	// Expensive enough to resist GPU brute force while still fitting the
	// per-app memory limits of mobile devices.
	DefaultScryptN = 1 << 18
	// DefaultScryptR is the default scrypt block size parameter.
	DefaultScryptR = 8
	// DefaultScryptP is the default scrypt parallelization parameter.
	DefaultScryptP = 1
	// DefaultDKLen is the default derived key length in bytes.
	DefaultDKLen = 32
)
