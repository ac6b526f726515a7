package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/internal/engine"
)

func newCartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Show the cart contents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cart := current.engine.Cart()
			purchased := current.engine.PurchasedItems()

			if flags.jsonMode {
				return printJSON(cmd, purchased)
			}
			if len(cart) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Cart is empty")
				return nil
			}

			sort.Slice(purchased, func(i, j int) bool {
				return purchased[i].ID < purchased[j].ID
			})
			for _, p := range purchased {
				fmt.Fprintf(cmd.OutOrStdout(), "%-6s %-44s x%-3d %10s\n",
					p.ID, truncate(p.Title, 44), p.Quantity, p.TotalPrice)
			}
			return nil
		},
	}

	cmd.AddCommand(newCartClearCmd())
	return cmd
}

func newCartClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Empty the cart, restoring reserved units to stock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			current.engine.ClearCart()
			if msg := current.engine.Errors().Storage; msg != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning:", msg)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cart cleared")
			return nil
		},
	}
}

func newReturnCmd() *cobra.Command {
	var quantity int64

	cmd := &cobra.Command{
		Use:   "return <product-id>",
		Short: "Return units of a product from the cart to stock",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			current.engine.RemoveFromCart(engine.RemoveRequest{
				ProductID: args[0],
				Quantity:  quantity,
			})
			if msg := current.engine.Errors().Purchase; msg != "" {
				return reportEngineError(msg)
			}
			if msg := current.engine.Errors().Storage; msg != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning:", msg)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Returned %d of %s (in cart: %d)\n",
				quantity, args[0], current.engine.Cart()[args[0]])
			return nil
		},
	}

	cmd.Flags().Int64Var(&quantity, "quantity", 1, "units to return")
	return cmd
}
