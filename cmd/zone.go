package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/voltlab/zonebalance/internal/domain"
)

func newZoneCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zone",
		Short: "Manage circuit zones",
	}

	cmd.AddCommand(
		newZoneAddCmd(app),
		newZoneSetCmd(app),
		newZoneRemoveCmd(app),
		newZoneListCmd(app),
	)

	return cmd
}

func newZoneAddCmd(app *app) *cobra.Command {
	var name string
	var load float64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a zone and its load",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			zone, err := app.service.AddZone(cmd.Context(), name, load)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "recorded %s\n", zone)
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Zone name")
	cmd.Flags().Float64Var(&load, "load", 0, "Zone load in kW")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("load")

	return cmd
}

func newZoneSetCmd(app *app) *cobra.Command {
	var name string
	var load float64

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update the load of an existing zone",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			zone, err := app.service.SetZoneLoad(cmd.Context(), name, load)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "updated %s\n", zone)
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Zone name")
	cmd.Flags().Float64Var(&load, "load", 0, "Zone load in kW")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("load")

	return cmd
}

func newZoneRemoveCmd(app *app) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a zone",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.service.RemoveZone(cmd.Context(), name); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", name)
			return err
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Zone name")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newZoneListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List recorded zones",
		RunE: func(cmd *cobra.Command, _ []string) error {
			zones, err := app.service.ListZones(cmd.Context())
			if err != nil {
				return err
			}

			for _, zone := range zones {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s kW\n", zone.Name, domain.FormatKW(zone.Load))
			}

			return nil
		},
	}
}
