package main

import (
	"context"
	"corvo-delivery/internal/bootstrap"
	"corvo-delivery/internal/domain"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var couriersCmd = &cobra.Command{
	Use:   "couriers",
	Short: "List, add or remove couriers",
}

var couriersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List couriers in registration order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withStore(cmd, func(ctx context.Context, store *bootstrap.Store) error {
			couriers, err := store.SQL.ListCouriers(ctx)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tCONTACT")
			for _, c := range couriers {
				fmt.Fprintf(tw, "%s\t%s\n", c.Name, c.Contact)
			}
			return tw.Flush()
		})
	},
}

var couriersAddCmd = &cobra.Command{
	Use:   "add <name> <contact>",
	Short: "Register a courier",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := domain.Courier{Name: args[0], Contact: args[1]}
		return withStore(cmd, func(ctx context.Context, store *bootstrap.Store) error {
			if err := store.SQL.AddCourier(ctx, c); err != nil {
				return err
			}
			logger.Info("courier added", zap.String("name", c.Name))
			fmt.Fprintf(cmd.OutOrStdout(), "Courier %s added.\n", c.Name)
			return nil
		})
	},
}

var couriersRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a courier by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		return withStore(cmd, func(ctx context.Context, store *bootstrap.Store) error {
			if err := store.SQL.RemoveCourier(ctx, name); err != nil {
				return err
			}
			logger.Info("courier removed", zap.String("name", name))
			fmt.Fprintf(cmd.OutOrStdout(), "Courier %s removed.\n", name)
			return nil
		})
	},
}

func init() {
	couriersCmd.AddCommand(couriersListCmd)
	couriersCmd.AddCommand(couriersAddCmd)
	couriersCmd.AddCommand(couriersRemoveCmd)
}
