package main

import (
	"crypto/subtle"
	"fmt"
	"os"
	"syscall"

	"golang.org/x/term"
)

// passwordEnvVar lets scripted callers supply the password without a
// terminal. Prefer the interactive prompt when possible: environment
// variables leak through /proc and shell history.
const passwordEnvVar = "PQKEYSTORE_PASSWORD"

func passwordFromEnv() string {
	return os.Getenv(passwordEnvVar)
}

// readPassword prompts on stderr and reads without echo.
func readPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(raw), nil
}

// readPasswordConfirm reads a new password twice and ensures both
// entries match.
func readPasswordConfirm() (string, error) {
	first, err := readPassword("Enter password: ")
	if err != nil {
		return "", err
	}
	second, err := readPassword("Confirm password: ")
	if err != nil {
		return "", err
	}
	if subtle.ConstantTimeCompare([]byte(first), []byte(second)) != 1 {
		return "", fmt.Errorf("passwords do not match")
	}
	return first, nil
}

// getPassword returns the environment password if set, otherwise
// prompts the user.
func getPassword(prompt string) (string, error) {
	if pw := passwordFromEnv(); pw != "" {
		return pw, nil
	}
	return readPassword(prompt)
}

// getNewPassword is like getPassword but confirms interactive entry.
func getNewPassword() (string, error) {
	if pw := passwordFromEnv(); pw != "" {
		return pw, nil
	}
	return readPasswordConfirm()
}
