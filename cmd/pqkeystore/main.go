// Command pqkeystore manages password-encrypted post-quantum wallet
// keystore files.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	keystore "github.com/dytallix/keystore-go"
	"github.com/dytallix/keystore-go/walletgen"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "create":
		runCreate(ctx, os.Args[2:])
	case "inspect":
		runInspect(ctx, os.Args[2:])
	case "recover":
		runRecover(ctx, os.Args[2:])
	case "rewrap":
		runRewrap(ctx, os.Args[2:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func runCreate(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	algorithm := fs.String("algorithm", string(keystore.AlgorithmMLDSA), "Signature scheme: ML-DSA or SLH-DSA")
	out := fs.String("out", "keystore.json", "Output file path")
	note := fs.String("note", "", "Free-form note stored in the container metadata")
	if err := fs.Parse(args); err != nil {
		fatal(err)
	}

	wallet, err := walletgen.Generate(keystore.Algorithm(*algorithm))
	if err != nil {
		fatal(err)
	}
	defer wallet.Zeroize()

	password, err := getNewPassword()
	if err != nil {
		fatal(err)
	}

	opts := []keystore.ExportOption{}
	if *note != "" {
		opts = append(opts, keystore.WithNote(*note))
	}

	ks, err := keystore.Export(ctx, wallet, password, opts...)
	if err != nil {
		fatal(err)
	}
	data, err := ks.SerializeIndent()
	if err != nil {
		fatal(err)
	}
	if err := os.WriteFile(*out, data, 0o600); err != nil {
		fatal(err)
	}

	address, _ := wallet.Address(ctx)
	fmt.Printf("Created %s wallet\n", *algorithm)
	fmt.Printf("Address:  %s\n", address)
	fmt.Printf("Keystore: %s\n", *out)
}

func runInspect(_ context.Context, args []string) {
	fs := flag.NewFlagSet("inspect", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		fatal(err)
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: pqkeystore inspect <file>")
		os.Exit(1)
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fatal(err)
	}
	ks, err := keystore.ParseKeystore(data)
	if err != nil {
		fatal(err)
	}

	fmt.Printf("Version:   %d\n", ks.Version)
	fmt.Printf("Algorithm: %s\n", ks.Algorithm)
	fmt.Printf("Address:   %s\n", ks.Address)
	fmt.Printf("Created:   %s\n", ks.CreatedAt)
	fmt.Printf("Cipher:    %s\n", ks.Crypto.Cipher)
	fmt.Printf("KDF:       %s (N=%d r=%d p=%d dklen=%d)\n",
		ks.Crypto.KDF, ks.Crypto.KDFParams.N, ks.Crypto.KDFParams.R,
		ks.Crypto.KDFParams.P, ks.Crypto.KDFParams.DKLen)
	if ks.Meta.Note != "" {
		fmt.Printf("Note:      %s\n", ks.Meta.Note)
	}
}

func runRecover(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("recover", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		fatal(err)
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: pqkeystore recover <file>")
		os.Exit(1)
	}

	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		fatal(err)
	}
	password, err := getPassword("Enter password: ")
	if err != nil {
		fatal(err)
	}

	res, err := keystore.Import(ctx, data, password)
	if err != nil {
		fatal(err)
	}
	defer res.Zeroize()

	// The private key stays in memory only; printing it would defeat the
	// point of the encrypted container.
	fmt.Printf("Password OK\n")
	fmt.Printf("Algorithm:   %s\n", res.Algorithm)
	fmt.Printf("Address:     %s\n", res.AddressCheck)
	fmt.Printf("Private key: %d bytes recovered\n", len(res.PrivateKey))
}

func runRewrap(ctx context.Context, args []string) {
	fs := flag.NewFlagSet("rewrap", flag.ExitOnError)
	out := fs.String("out", "", "Output file path (default: overwrite input)")
	if err := fs.Parse(args); err != nil {
		fatal(err)
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: pqkeystore rewrap [-out file] <file>")
		os.Exit(1)
	}
	path := fs.Arg(0)
	if *out == "" {
		*out = path
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fatal(err)
	}
	ks, err := keystore.ParseKeystore(data)
	if err != nil {
		fatal(err)
	}

	oldPassword, err := getPassword("Enter current password: ")
	if err != nil {
		fatal(err)
	}
	res, err := keystore.ImportKeystore(ctx, ks, oldPassword)
	if err != nil {
		fatal(err)
	}
	defer res.Zeroize()

	fmt.Fprintln(os.Stderr, "Password OK, choose a new password.")
	newPassword, err := readPasswordConfirm()
	if err != nil {
		fatal(err)
	}

	wallet, err := rewrapWallet(ks, res.PrivateKey)
	if err != nil {
		fatal(err)
	}
	fresh, err := keystore.Export(ctx, wallet, newPassword, keystore.WithNote(ks.Meta.Note))
	if err != nil {
		fatal(err)
	}
	fresh.CreatedAt = ks.CreatedAt

	encoded, err := fresh.SerializeIndent()
	if err != nil {
		fatal(err)
	}
	if err := os.WriteFile(*out, encoded, 0o600); err != nil {
		fatal(err)
	}
	fmt.Printf("Rewrapped %s\n", *out)
}

// rewrapWallet wraps an imported container so it can be exported again
// under a new password. The original address and public key are carried
// over verbatim rather than re-derived.
func rewrapWallet(ks *keystore.Keystore, privateKey []byte) (keystore.Wallet, error) {
	publicKey, err := ks.DecodedPublicKey()
	if err != nil {
		return nil, err
	}
	return &staticWallet{
		algorithm:  ks.Algorithm,
		address:    ks.Address,
		publicKey:  publicKey,
		privateKey: privateKey,
	}, nil
}

type staticWallet struct {
	algorithm  keystore.Algorithm
	address    string
	publicKey  []byte
	privateKey []byte
}

func (w *staticWallet) Address(ctx context.Context) (string, error) {
	return w.address, nil
}

func (w *staticWallet) Algorithm(ctx context.Context) (keystore.Algorithm, error) {
	return w.algorithm, nil
}

func (w *staticWallet) PublicKey(ctx context.Context) ([]byte, error) {
	return w.publicKey, nil
}

func (w *staticWallet) PrivateKey(ctx context.Context) ([]byte, error) {
	return append([]byte(nil), w.privateKey...), nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	os.Exit(1)
}

func printUsage() {
	fmt.Println("pqkeystore - encrypted post-quantum wallet keystores")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  pqkeystore <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  create   Generate a wallet and write an encrypted keystore file")
	fmt.Println("  inspect  Show a keystore's public fields (no password needed)")
	fmt.Println("  recover  Verify the password and report on the recovered key")
	fmt.Println("  rewrap   Re-encrypt a keystore under a new password")
	fmt.Println()
	fmt.Printf("Set %s to supply the password non-interactively.\n", passwordEnvVar)
}
