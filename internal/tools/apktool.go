package tools

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"reforge/internal/domain"
)

// Apktool rebuilds a decompiled project directory into an unsigned APK.
type Apktool struct {
	Bin    string
	Runner domain.Runner
}

func NewApktool(r domain.Runner) *Apktool {
	return &Apktool{Bin: "apktool", Runner: r}
}

// Rebuild runs `apktool b`. The project directory must contain an
// AndroidManifest.xml; apktool's own error for that case is cryptic, so it
// is checked here first.
func (a *Apktool) Rebuild(ctx context.Context, dir, out string, useAAPT2 bool) error {
	manifest := filepath.Join(dir, "AndroidManifest.xml")
	if _, err := os.Stat(manifest); err != nil {
		return fmt.Errorf("project directory has no AndroidManifest.xml: %s", dir)
	}
	return a.Runner.Run(ctx, a.Bin, RebuildArgs(dir, out, useAAPT2)...)
}

// RebuildArgs returns the argv (minus the binary) Rebuild would run.
func RebuildArgs(dir, out string, useAAPT2 bool) []string {
	args := []string{"b", "-o", out}
	if useAAPT2 {
		args = append(args, "--use-aapt2")
	}
	return append(args, dir)
}

var _ domain.Rebuilder = (*Apktool)(nil)
