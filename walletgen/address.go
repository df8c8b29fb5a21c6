package walletgen

import (
	"crypto/sha256"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"golang.org/x/crypto/ripemd160"
)

// AddressHRP is the human-readable prefix of Dytallix addresses.
const AddressHRP = "pqc"

// DeriveAddress computes the canonical address of a public key:
// bech32("pqc", ripemd160(sha256(publicKey))). Deterministic; the same
// public key always yields the same address.
func DeriveAddress(publicKey []byte) (string, error) {
	sum := sha256.Sum256(publicKey)

	ripemd := ripemd160.New()
	ripemd.Write(sum[:])
	digest := ripemd.Sum(nil)

	converted, err := bech32.ConvertBits(digest, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("convert address bits: %w", err)
	}
	address, err := bech32.Encode(AddressHRP, converted)
	if err != nil {
		return "", fmt.Errorf("encode address: %w", err)
	}
	return address, nil
}
