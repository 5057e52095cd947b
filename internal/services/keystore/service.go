package keystore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"reforge/internal/domain"
)

// generatedName keys the generated keystore on the signing alias, so
// profiles with different aliases never reuse each other's keystore.
func generatedName(alias string) string {
	return fmt.Sprintf("reforge-%s.keystore", alias)
}

// Generator creates a keystore on disk. *tools.Keytool implements it.
type Generator interface {
	Generate(ctx context.Context, path string, profile domain.SigningProfile) error
}

// Service resolves or provisions the signing keystore.
type Service struct {
	gen     Generator
	profile domain.SigningProfile
	out     domain.Reporter

	// HomeDir and TempDir default to the user home and OS temp dir.
	HomeDir string
	TempDir string
}

func New(gen Generator, profile domain.SigningProfile, out domain.Reporter) *Service {
	home, _ := os.UserHomeDir()
	return &Service{
		gen:     gen,
		profile: profile,
		out:     out,
		HomeDir: home,
		TempDir: os.TempDir(),
	}
}

// Ensure returns a usable keystore path. An explicit path must already
// exist; otherwise the SDK debug keystore is preferred, and a debug
// keystore is generated once when neither is present.
func (s *Service) Ensure(ctx context.Context, explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", fmt.Errorf("keystore not found: %s", explicit)
		}
		return explicit, nil
	}

	debug := filepath.Join(s.HomeDir, ".android", "debug.keystore")
	if _, err := os.Stat(debug); err == nil {
		return debug, nil
	}

	generated := filepath.Join(s.TempDir, generatedName(s.profile.Alias))
	if _, err := os.Stat(generated); err == nil {
		return generated, nil
	}

	s.out.Warnf("No debug keystore found, generating one...")
	if err := s.gen.Generate(ctx, generated, s.profile); err != nil {
		return "", fmt.Errorf("generate keystore: %w", err)
	}
	return generated, nil
}

var _ domain.KeystoreProvider = (*Service)(nil)
