package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"reforge/internal/tools"
)

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that the required Android tools are on PATH",
		RunE: func(cmd *cobra.Command, args []string) error {
			results := tools.Probe(appCtx.ToolBins)
			for _, r := range results {
				if r.Found {
					appCtx.Out.Successf("%-10s %s", r.Tool, r.Path)
				} else {
					appCtx.Out.Failf("%-10s not found", r.Tool)
				}
			}
			if missing := tools.Missing(results); len(missing) > 0 {
				return fmt.Errorf("%d tool(s) missing", len(missing))
			}
			appCtx.Out.Successf("All tools available")
			return nil
		},
	}
}
