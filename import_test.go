package keystore

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"testing"
)

func TestImport_RoundTrip(t *testing.T) {
	tests := []struct {
		name      string
		algorithm Algorithm
		pkLen     int
		skLen     int
	}{
		{"ML-DSA sized key", AlgorithmMLDSA, 1952, 4032},
		{"SLH-DSA sized key", AlgorithmSLHDSA, 64, 128},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wallet := newTestWallet(t, tt.algorithm, tt.pkLen, tt.skLen)

			ks, err := Export(context.Background(), wallet, "secure-password-456", WithKDFParams(fastKDF))
			if err != nil {
				t.Fatalf("Export() error = %v", err)
			}
			data, err := ks.Serialize()
			if err != nil {
				t.Fatal(err)
			}

			res, err := Import(context.Background(), data, "secure-password-456")
			if err != nil {
				t.Fatalf("Import() error = %v", err)
			}
			defer res.Zeroize()

			if res.Algorithm != tt.algorithm {
				t.Errorf("algorithm = %s, want %s", res.Algorithm, tt.algorithm)
			}
			if res.AddressCheck != wallet.address {
				t.Errorf("addressCheck = %q, want %q", res.AddressCheck, wallet.address)
			}
			if !bytes.Equal(res.PrivateKey, wallet.privateKey) {
				t.Error("recovered key differs from original")
			}
		})
	}
}

func TestImport_WrongPasswordFailsClosed(t *testing.T) {
	_, data := exportTestContainer(t, "secure-password-456")

	for _, password := range []string{"secure-password-457", "Secure-password-456", "totally different"} {
		res, err := Import(context.Background(), data, password)
		if !errors.Is(err, ErrDecryptionFailed) {
			t.Errorf("Import(%q) error = %v, want ErrDecryptionFailed", password, err)
		}
		if res != nil {
			t.Fatalf("Import(%q) returned a result alongside the error", password)
		}
	}
}

func TestImport_TamperDetection(t *testing.T) {
	_, data := exportTestContainer(t, "secure-password-456")

	// Flip one byte of a base64-encoded field and re-encode.
	flipByte := func(field string, idx int) func(doc map[string]any) {
		return func(doc map[string]any) {
			raw, err := base64.StdEncoding.DecodeString(cryptoBlock(doc)[field].(string))
			if err != nil {
				t.Fatal(err)
			}
			raw[idx] ^= 0x01
			cryptoBlock(doc)[field] = base64.StdEncoding.EncodeToString(raw)
		}
	}

	tests := []struct {
		name   string
		mutate func(doc map[string]any)
	}{
		{"first ciphertext byte", flipByte("ciphertext", 0)},
		{"last ciphertext byte", flipByte("ciphertext", 4031)},
		{"authTag byte", flipByte("authTag", 7)},
		{"iv byte", flipByte("iv", 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tampered := mutateContainer(t, data, tt.mutate)
			_, err := Import(context.Background(), tampered, "secure-password-456")
			if !errors.Is(err, ErrDecryptionFailed) {
				t.Errorf("Import() error = %v, want ErrDecryptionFailed", err)
			}
		})
	}
}

func TestImport_ErrorIsOpaque(t *testing.T) {
	_, data := exportTestContainer(t, "secure-password-456")

	_, wrongPw := Import(context.Background(), data, "not-the-password")

	tampered := mutateContainer(t, data, func(doc map[string]any) {
		raw, _ := base64.StdEncoding.DecodeString(cryptoBlock(doc)["ciphertext"].(string))
		raw[0] ^= 0xff
		cryptoBlock(doc)["ciphertext"] = base64.StdEncoding.EncodeToString(raw)
	})
	_, corrupted := Import(context.Background(), tampered, "secure-password-456")

	// Wrong password and corrupted container must be indistinguishable.
	if wrongPw == nil || corrupted == nil {
		t.Fatal("expected both imports to fail")
	}
	if wrongPw.Error() != corrupted.Error() {
		t.Errorf("failure modes are distinguishable: %q vs %q", wrongPw, corrupted)
	}
}

func TestImport_ValidationShortCircuits(t *testing.T) {
	// A malformed container never reaches the KDF, so even an absurd cost
	// parameter cannot make the call slow.
	_, data := exportTestContainer(t, "secure-password-456")

	bad := mutateContainer(t, data, func(doc map[string]any) {
		kdfparams(doc)["n"] = 1 << 40
		delete(cryptoBlock(doc), "iv")
	})

	_, err := Import(context.Background(), bad, "secure-password-456")
	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Field != "crypto.iv" {
		t.Errorf("Import() error = %v, want ValidationError on crypto.iv", err)
	}
}

func TestImport_UsesContainerKDFParams(t *testing.T) {
	wallet := newTestWallet(t, AlgorithmMLDSA, 1952, 4032)

	// Export with non-default parameters; import must honor what the
	// container says rather than the package defaults.
	ks, err := Export(context.Background(), wallet, "secure-password-456",
		WithKDFParams(KDFParams{N: 32, R: 2, P: 2, DKLen: 32}))
	if err != nil {
		t.Fatal(err)
	}
	data, err := ks.Serialize()
	if err != nil {
		t.Fatal(err)
	}

	res, err := Import(context.Background(), data, "secure-password-456")
	if err != nil {
		t.Fatalf("Import() error = %v", err)
	}
	defer res.Zeroize()

	if !bytes.Equal(res.PrivateKey, wallet.privateKey) {
		t.Error("recovered key differs from original")
	}
}

func TestImport_CancelledContext(t *testing.T) {
	_, data := exportTestContainer(t, "secure-password-456")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Import(ctx, data, "secure-password-456")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Import() error = %v, want context.Canceled", err)
	}
}

func TestImport_Concurrent(t *testing.T) {
	// Calls are self-contained; concurrent imports of distinct containers
	// must not interfere.
	wallets := make([]*memWallet, 4)
	payloads := make([][]byte, 4)
	for i := range wallets {
		wallet, data := exportTestContainer(t, "secure-password-456")
		wallets[i] = wallet
		payloads[i] = data
	}

	done := make(chan error, len(payloads))
	for i := range payloads {
		go func(i int) {
			res, err := Import(context.Background(), payloads[i], "secure-password-456")
			if err != nil {
				done <- err
				return
			}
			defer res.Zeroize()
			if !bytes.Equal(res.PrivateKey, wallets[i].privateKey) {
				done <- errors.New("recovered key differs from original")
				return
			}
			done <- nil
		}(i)
	}

	for range payloads {
		if err := <-done; err != nil {
			t.Error(err)
		}
	}
}
