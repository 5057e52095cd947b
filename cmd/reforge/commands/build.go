package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"reforge/internal/config"
	"reforge/internal/services/pipeline"
	"reforge/internal/tools"
)

func buildCmd() *cobra.Command {
	var (
		inputDir  string
		outputAPK string
		install   bool
		keystore  string
	)

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Rebuild, align, sign, verify and optionally install an APK",
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := os.Stat(inputDir)
			if err != nil || !info.IsDir() {
				return fmt.Errorf("directory not found: %s", inputDir)
			}
			if dir := filepath.Dir(outputAPK); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return err
				}
			}

			appCtx.Out.Banner(version, inputDir, outputAPK)

			// The full toolchain is probed before any phase runs,
			// --install or not.
			results, err := tools.CheckRequired(appCtx.ToolBins)
			reportProbe(results)
			if err != nil {
				return err
			}

			return appCtx.Pipeline.Run(cmd.Context(), pipeline.Options{
				InputDir:  inputDir,
				OutputAPK: outputAPK,
				Keystore:  resolveKeystore(keystore, appCtx.Profile),
				Install:   install,
			})
		},
	}

	cmd.Flags().StringVarP(&inputDir, "input", "i", "", "directory with decompiled APK (required)")
	cmd.Flags().StringVarP(&outputAPK, "output", "o", "", "final APK path (required)")
	cmd.Flags().BoolVar(&install, "install", false, "install on connected devices after building")
	cmd.Flags().StringVar(&keystore, "keystore", "", "custom keystore (default: debug keystore)")
	_ = cmd.MarkFlagRequired("input")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

// resolveKeystore picks the keystore handed to the pipeline: the flag
// wins, then the profile's keystore; empty means auto-resolution (SDK
// debug keystore or a generated one).
func resolveKeystore(flagValue string, profile config.Profile) string {
	if flagValue != "" {
		return flagValue
	}
	return profile.Keystore
}

// reportProbe logs tool resolution; paths only show up in verbose mode,
// missing tools always do.
func reportProbe(results []tools.ProbeResult) {
	for _, r := range results {
		if !r.Found {
			appCtx.Out.Failf("Missing tool: %s", r.Tool)
			continue
		}
		appCtx.Out.Debugf("%s found at %s", r.Tool, r.Path)
		if filepath.Dir(r.Path) != "/usr/bin" {
			appCtx.Out.Debugf("%s is not in /usr/bin: %s", r.Tool, r.Path)
		}
	}
}
