// Package keystore protects Dytallix post-quantum wallet private keys at
// rest. Given a password and a wallet's raw key material it produces a
// self-describing, versioned JSON container that can later be decrypted only
// with the same password; a wrong password or a tampered container fails
// loudly instead of returning corrupted key material.
//
// The container wraps the private key with AES-256-GCM under a key derived
// from the password with scrypt. The scheme that produced the key (ML-DSA or
// SLH-DSA) is carried as an opaque tag; this package never inspects or
// re-derives key material.
//
// Basic usage:
//
//	ks, err := keystore.Export(ctx, wallet, "secure-password-456")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	data, err := ks.Serialize()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Later, with the same password:
//	res, err := keystore.Import(ctx, data, "secure-password-456")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer res.Zeroize()
//
//	fmt.Println("Recovered", res.Algorithm, "key for", res.AddressCheck)
//
// # Security Model
//
// Key derivation is deliberately expensive (scrypt, ~256MB and up to a few
// seconds at the default cost) so offline brute force against a stolen
// container is costly. Treat Export and Import as blocking calls and run
// them off any latency-sensitive goroutine.
//
// Decryption failure is a single opaque error: errors.Is(err,
// ErrDecryptionFailed) holds whether the password was wrong or the container
// was tampered with. This is deliberate; distinguishing the two would hand
// an attacker an oracle.
//
// Ephemeral secrets (the derived key, and on the export path the raw private
// key) are zeroized before each call returns, on success and failure paths
// alike. The plaintext key returned by Import belongs to the caller, who is
// responsible for zeroizing it when done.
//
// Calls are self-contained and reentrant: concurrent exports and imports
// need no locking.
package keystore
