package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	reportadapter "github.com/voltlab/zonebalance/internal/adapters/render/report"
	"github.com/voltlab/zonebalance/internal/domain"
)

func newReportCmd(app *app) *cobra.Command {
	var asJSON bool
	var plain bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Render the load balancing analysis report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			analysis, err := app.service.Analyze(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(analysis)
			}

			if plain {
				rendered, err := domain.GenerateReport(analysis.Zones)
				if err != nil {
					return err
				}

				_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
				return err
			}

			rendered, err := app.reportRenderer(analysis, reportadapter.RenderOptions{Now: app.now()})
			if err != nil {
				return fmt.Errorf("render report: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")
	cmd.Flags().BoolVar(&plain, "plain", false, "Render the unstyled plain-text report")

	return cmd
}
