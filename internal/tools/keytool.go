package tools

import (
	"context"

	"reforge/internal/domain"
)

// debugDName is the distinguished name baked into generated debug
// keystores, matching the one the Android SDK itself uses.
const debugDName = "CN=Android Debug,O=Android,C=US"

// Keytool generates signing keystores.
type Keytool struct {
	Bin    string
	Runner domain.Runner
}

func NewKeytool(r domain.Runner) *Keytool {
	return &Keytool{Bin: "keytool", Runner: r}
}

// Generate creates a new RSA-2048 keystore at path valid for 10000 days.
func (k *Keytool) Generate(ctx context.Context, path string, profile domain.SigningProfile) error {
	return k.Runner.Run(ctx, k.Bin, GenerateArgs(path, profile)...)
}

// GenerateArgs returns the argv (minus the binary) Generate would run.
func GenerateArgs(path string, profile domain.SigningProfile) []string {
	return []string{
		"-genkey", "-v",
		"-keystore", path,
		"-alias", profile.Alias,
		"-keyalg", "RSA",
		"-keysize", "2048",
		"-validity", "10000",
		"-storepass", profile.StorePass,
		"-keypass", profile.KeyPass,
		"-dname", debugDName,
	}
}
