package keystore

import (
	"context"
	"crypto/rand"
	"strings"
	"testing"
	"time"
)

// fastKDF keeps test runs quick; cost is exercised separately in the
// integration suite.
var fastKDF = KDFParams{N: 16, R: 1, P: 1, DKLen: 32}

// memWallet is an in-memory Wallet that records which accessors were called.
type memWallet struct {
	address    string
	algorithm  Algorithm
	publicKey  []byte
	privateKey []byte

	accessed bool
}

func (w *memWallet) Address(ctx context.Context) (string, error) {
	w.accessed = true
	return w.address, nil
}

func (w *memWallet) Algorithm(ctx context.Context) (Algorithm, error) {
	w.accessed = true
	return w.algorithm, nil
}

func (w *memWallet) PublicKey(ctx context.Context) ([]byte, error) {
	w.accessed = true
	return append([]byte(nil), w.publicKey...), nil
}

func (w *memWallet) PrivateKey(ctx context.Context) ([]byte, error) {
	w.accessed = true
	return append([]byte(nil), w.privateKey...), nil
}

// newTestWallet builds a wallet with random key material of the given sizes.
func newTestWallet(t *testing.T, algorithm Algorithm, pkLen, skLen int) *memWallet {
	t.Helper()

	publicKey := make([]byte, pkLen)
	privateKey := make([]byte, skLen)
	if _, err := rand.Read(publicKey); err != nil {
		t.Fatal(err)
	}
	if _, err := rand.Read(privateKey); err != nil {
		t.Fatal(err)
	}

	return &memWallet{
		address:    "pqc1mlqqtestaddress0000000000000000000000",
		algorithm:  algorithm,
		publicKey:  publicKey,
		privateKey: privateKey,
	}
}

// exportTestContainer is the shared fixture: a valid serialized container
// plus the wallet it was exported from.
func exportTestContainer(t *testing.T, password string) (*memWallet, []byte) {
	t.Helper()

	wallet := newTestWallet(t, AlgorithmMLDSA, 1952, 4032)
	ks, err := Export(context.Background(), wallet, password, WithKDFParams(fastKDF))
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}
	data, err := ks.Serialize()
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	return wallet, data
}

func TestAlgorithmConstants(t *testing.T) {
	if AlgorithmMLDSA != "ML-DSA" {
		t.Errorf("AlgorithmMLDSA = %s, want ML-DSA", AlgorithmMLDSA)
	}
	if AlgorithmSLHDSA != "SLH-DSA" {
		t.Errorf("AlgorithmSLHDSA = %s, want SLH-DSA", AlgorithmSLHDSA)
	}
	if CipherAES256GCM != "aes-256-gcm" {
		t.Errorf("CipherAES256GCM = %s, want aes-256-gcm", CipherAES256GCM)
	}
	if KDFScrypt != "scrypt" {
		t.Errorf("KDFScrypt = %s, want scrypt", KDFScrypt)
	}
}

func TestDefaultKDFParams(t *testing.T) {
	p := DefaultKDFParams()
	if p.N != 262144 || p.R != 8 || p.P != 1 || p.DKLen != 32 {
		t.Errorf("DefaultKDFParams() = %+v, want n=262144 r=8 p=1 dklen=32", p)
	}
	if err := p.Validate(); err != nil {
		t.Errorf("default params invalid: %v", err)
	}
}

func TestSerialize_WireFieldNames(t *testing.T) {
	_, data := exportTestContainer(t, "secure-password-456")

	for _, field := range []string{
		`"version"`, `"algorithm"`, `"address"`, `"publicKey"`,
		`"cipher"`, `"ciphertext"`, `"iv"`, `"authTag"`, `"salt"`,
		`"kdf"`, `"kdfparams"`, `"n"`, `"r"`, `"p"`, `"dklen"`,
		`"createdAt"`, `"checksum"`,
	} {
		if !strings.Contains(string(data), field) {
			t.Errorf("serialized container missing wire field %s", field)
		}
	}
}

func TestSerialize_ParseRoundTrip(t *testing.T) {
	wallet := newTestWallet(t, AlgorithmSLHDSA, 64, 128)
	created := time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

	ks, err := Export(context.Background(), wallet, "secure-password-456",
		WithKDFParams(fastKDF),
		WithClock(func() time.Time { return created }),
		WithNote("cold backup"),
	)
	if err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	data, err := ks.Serialize()
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	parsed, err := ParseKeystore(data)
	if err != nil {
		t.Fatalf("ParseKeystore() error = %v", err)
	}

	if *parsed != *ks {
		t.Errorf("round trip mutated container:\n got %+v\nwant %+v", parsed, ks)
	}
	if parsed.CreatedAt != "2026-08-31T12:00:00Z" {
		t.Errorf("createdAt = %s", parsed.CreatedAt)
	}
	if parsed.Meta.Note != "cold backup" {
		t.Errorf("meta.note = %s", parsed.Meta.Note)
	}
}
