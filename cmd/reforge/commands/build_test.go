package commands

import (
	"testing"

	"reforge/internal/config"
)

func TestResolveKeystore_FlagWinsOverProfile(t *testing.T) {
	profile := config.Profile{Keystore: "/keys/release.jks"}
	if got := resolveKeystore("/tmp/flag.jks", profile); got != "/tmp/flag.jks" {
		t.Fatalf("flag must win, got %s", got)
	}
}

func TestResolveKeystore_ProfileFallback(t *testing.T) {
	profile := config.Profile{Keystore: "/keys/release.jks"}
	if got := resolveKeystore("", profile); got != "/keys/release.jks" {
		t.Fatalf("profile keystore must apply without a flag, got %q", got)
	}
}

func TestResolveKeystore_EmptyMeansAutoResolution(t *testing.T) {
	if got := resolveKeystore("", config.Profile{}); got != "" {
		t.Fatalf("want empty for auto-resolution, got %q", got)
	}
}
