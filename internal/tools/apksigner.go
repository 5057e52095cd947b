package tools

import (
	"context"

	"reforge/internal/domain"
)

// Apksigner signs APKs and verifies signatures.
type Apksigner struct {
	Bin    string
	Runner domain.Runner
}

func NewApksigner(r domain.Runner) *Apksigner {
	return &Apksigner{Bin: "apksigner", Runner: r}
}

// Sign writes a signed copy of in to out using the given keystore and
// credentials. Passwords travel on the command line in pass: form, the
// same way apksigner's own documentation shows for debug keystores.
func (s *Apksigner) Sign(ctx context.Context, in, out, keystore string, profile domain.SigningProfile) error {
	return s.Runner.Run(ctx, s.Bin, SignArgs(in, out, keystore, profile)...)
}

// SignArgs returns the argv (minus the binary) Sign would run.
func SignArgs(in, out, keystore string, profile domain.SigningProfile) []string {
	return []string{
		"sign",
		"--ks", keystore,
		"--ks-pass", "pass:" + profile.StorePass,
		"--ks-key-alias", profile.Alias,
		"--key-pass", "pass:" + profile.KeyPass,
		"--out", out,
		in,
	}
}

// Verify checks the signatures on apk.
func (s *Apksigner) Verify(ctx context.Context, apk string) error {
	return s.Runner.Run(ctx, s.Bin, "verify", apk)
}

var _ domain.Signer = (*Apksigner)(nil)
