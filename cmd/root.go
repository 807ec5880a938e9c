package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "zb",
		Short:         "zonebalance (zb): analyze electrical load across circuit zones",
		Long:          "zb records per-zone electrical loads, detects overloaded zones, and recommends redistribution toward an even per-zone load, as a terminal report or an HTML dashboard.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newZoneCmd(app),
		newReportCmd(app),
		newDashboardCmd(app),
	)

	return rootCmd
}
