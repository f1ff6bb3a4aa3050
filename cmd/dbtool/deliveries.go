package main

import (
	"context"
	"corvo-delivery/internal/bootstrap"
	"corvo-delivery/internal/domain"
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var statusFilter string

var deliveriesCmd = &cobra.Command{
	Use:   "deliveries",
	Short: "List deliveries or change their status",
}

var deliveriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List dispatch-board deliveries",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var filter domain.DeliveryStatus
		if statusFilter != "" {
			s, err := domain.ParseDeliveryStatus(statusFilter)
			if err != nil {
				return err
			}
			filter = s
		}

		return withStore(cmd, func(ctx context.Context, store *bootstrap.Store) error {
			deliveries, err := store.SQL.ListDeliveries(ctx)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tCUSTOMER\tSTATUS")
			for _, d := range domain.FilterByStatus(deliveries, filter) {
				fmt.Fprintf(tw, "%d\t%s\t%s\n", d.ID, d.Customer, d.Status.Label())
			}
			return tw.Flush()
		})
	},
}

var deliveriesSetStatusCmd = &cobra.Command{
	Use:   "set-status <id> <status>",
	Short: "Change a delivery's status (pending, completed, paused)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil || id <= 0 {
			return fmt.Errorf("invalid delivery id %q", args[0])
		}
		status, err := domain.ParseDeliveryStatus(args[1])
		if err != nil {
			return err
		}

		return withStore(cmd, func(ctx context.Context, store *bootstrap.Store) error {
			if err := store.SQL.UpdateDeliveryStatus(ctx, id, status); err != nil {
				return err
			}
			logger.Info("delivery status updated", zap.Int("id", id), zap.String("status", string(status)))
			fmt.Fprintf(cmd.OutOrStdout(), "Delivery %d is now %s.\n", id, status.Label())
			return nil
		})
	},
}

func init() {
	deliveriesListCmd.Flags().StringVar(&statusFilter, "status", "", "Only show deliveries with this status")

	deliveriesCmd.AddCommand(deliveriesListCmd)
	deliveriesCmd.AddCommand(deliveriesSetStatusCmd)
}
