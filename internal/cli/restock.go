package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/internal/engine"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

func newRestockCmd() *cobra.Command {
	var quantity int64

	cmd := &cobra.Command{
		Use:   "restock <product-id>",
		Short: "Set a product's stock to an absolute level",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := engine.RestockRequest{ProductID: args[0]}
			if cmd.Flags().Changed("quantity") {
				req.Quantity = &quantity
			}

			current.engine.Restock(req)
			if msg := current.engine.Errors().Inventory; msg != "" {
				return reportEngineError(msg)
			}
			if msg := current.engine.Errors().Storage; msg != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning:", msg)
			}

			item := current.engine.Items()[args[0]]
			fmt.Fprintf(cmd.OutOrStdout(), "Stock of %s set to %d\n",
				item.Product.Title, item.Stock)
			return nil
		},
	}

	cmd.Flags().Int64Var(&quantity, "quantity", types.DefaultStock, "stock level to set")
	return cmd
}
