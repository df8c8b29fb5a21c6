// Package walletgen generates Dytallix post-quantum wallets whose key
// material the keystore package wraps.
//
// Two signature schemes are supported:
//
//   - ML-DSA-65 (NIST FIPS 204): lattice-based. 1952-byte public keys,
//     4032-byte private keys.
//
//   - SLH-DSA-SHA2-256s (NIST FIPS 205): hash-based. 64-byte public keys,
//     128-byte private keys.
//
// Addresses are derived as bech32("pqc", ripemd160(sha256(publicKey))), so
// every address starts with "pqc1" and is checksummed against transcription
// errors.
//
// A generated Wallet satisfies keystore.Wallet and can be handed straight to
// keystore.Export. Wallets hold the private key in memory; call
// [Wallet.Zeroize] once the key has been exported or is no longer needed.
package walletgen
