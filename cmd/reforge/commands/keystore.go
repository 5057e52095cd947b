package commands

import (
	"github.com/spf13/cobra"
)

func keystoreCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "keystore",
		Short: "Resolve or generate the signing keystore",
		RunE: func(cmd *cobra.Command, args []string) error {
			ks, err := appCtx.Keystore.Ensure(cmd.Context(), resolveKeystore(path, appCtx.Profile))
			if err != nil {
				return err
			}
			appCtx.Out.Successf("Keystore: %s", ks)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "keystore", "", "custom keystore path")
	return cmd
}
