package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"reforge/internal/domain"
)

// Profile is the on-disk signing profile.
type Profile struct {
	Keystore  string            `yaml:"keystore"`
	Alias     string            `yaml:"alias"`
	StorePass string            `yaml:"store_pass"`
	KeyPass   string            `yaml:"key_pass"`
	Tools     map[string]string `yaml:"tools"` // tool name -> binary path override
}

// Load reads a profile from path. Fields left empty in the file keep the
// debug defaults.
func Load(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, err
	}
	p := defaults()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("parse profile %s: %w", path, err)
	}
	return p, nil
}

// Default returns the profile used when no file is given: the standard
// Android debug identity with no fixed keystore path.
func Default() Profile { return defaults() }

func defaults() Profile {
	d := domain.DebugProfile()
	return Profile{
		Alias:     d.Alias,
		StorePass: d.StorePass,
		KeyPass:   d.KeyPass,
	}
}

// Bin returns the configured path for the named tool, or the name itself
// when the profile sets no override.
func (p Profile) Bin(name string) string {
	if path := p.Tools[name]; path != "" {
		return path
	}
	return name
}

// Signing converts the profile to the credential set the tools consume.
func (p Profile) Signing() domain.SigningProfile {
	return domain.SigningProfile{
		Alias:     p.Alias,
		StorePass: p.StorePass,
		KeyPass:   p.KeyPass,
	}
}
