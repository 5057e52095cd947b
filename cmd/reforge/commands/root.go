package commands

import (
	"github.com/spf13/cobra"

	"reforge/internal/app"
)

const version = "0.1.0"

var (
	verbose     bool
	profilePath string
	appCtx      *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:          "reforge",
		Short:        "Rebuild, align, sign and install decompiled APKs",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			appCtx, err = app.NewWire(app.Config{
				Verbose:     verbose,
				ProfilePath: profilePath,
			})
			return err
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "echo tool commands and their output")
	root.PersistentFlags().StringVar(&profilePath, "profile", "", "signing profile YAML (default: debug identity)")

	root.AddCommand(buildCmd(), doctorCmd(), devicesCmd(), keystoreCmd())
	return root.Execute()
}
