package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBuyCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "buy <product-id>",
		Short: "Purchase units of a product, reserving them in the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			productID := args[0]
			for i := 0; i < count; i++ {
				current.engine.DecrementStock(productID)
				if msg := current.engine.Errors().Purchase; msg != "" {
					return reportEngineError(msg)
				}
			}
			if msg := current.engine.Errors().Storage; msg != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning:", msg)
			}

			item := current.engine.Items()[productID]
			fmt.Fprintf(cmd.OutOrStdout(), "Bought %d x %s (stock now %d, in cart %d)\n",
				count, item.Product.Title, item.Stock, current.engine.Cart()[productID])
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", 1, "units to buy")
	return cmd
}
