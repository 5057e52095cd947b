package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func devicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "devices",
		Short: "List connected adb devices",
		RunE: func(cmd *cobra.Command, args []string) error {
			devices, err := appCtx.ADB.Devices(cmd.Context())
			if err != nil {
				return err
			}
			if len(devices) == 0 {
				return fmt.Errorf("no devices found")
			}
			for _, d := range devices {
				if d.Online() {
					appCtx.Out.Successf("%-24s %s", d.Serial, d.State)
				} else {
					appCtx.Out.Warnf("%-24s %s", d.Serial, d.State)
				}
			}
			return nil
		},
	}
}
