package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/voltlab/zonebalance/internal/adapters/render/dashboard"
)

func newDashboardCmd(app *app) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Write the analysis as an HTML dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			analysis, err := app.service.Analyze(cmd.Context())
			if err != nil {
				return err
			}

			if err := dashboard.WriteFile(outPath, analysis); err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outPath)
			return err
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "dashboard.html", "Output HTML file path")

	return cmd
}
