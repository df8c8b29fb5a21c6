package keystore

import "time"

// exportConfig holds configuration for an export call.
type exportConfig struct {
	kdf  *KDFParams
	now  func() time.Time
	note string
}

// ExportOption configures an Export call.
type ExportOption func(*exportConfig)

// WithKDFParams overrides the default scrypt cost parameters. Zero-valued
// fields keep their defaults; the merged parameters are validated before any
// wallet accessor is called.
func WithKDFParams(params KDFParams) ExportOption {
	return func(c *exportConfig) {
		c.kdf = &params
	}
}

// WithClock sets the time source used for the createdAt stamp. Intended for
// tests and deterministic output; defaults to time.Now in UTC.
func WithClock(now func() time.Time) ExportOption {
	return func(c *exportConfig) {
		c.now = now
	}
}

// WithNote attaches a free-text note to the container's meta block.
func WithNote(note string) ExportOption {
	return func(c *exportConfig) {
		c.note = note
	}
}
