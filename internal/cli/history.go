package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the purchase history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			history := current.engine.PurchaseHistory()

			if flags.jsonMode {
				return printJSON(cmd, history)
			}
			if len(history) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No purchases recorded")
				return nil
			}
			for _, r := range history {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s (stock %d -> %d, in cart %d)\n",
					r.PurchaseTime.Format("2006-01-02 15:04:05"),
					r.Message, r.StockBefore, r.StockAfter, r.CartQuantity)
			}
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete the purchase history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			current.engine.ClearPurchaseHistory()
			fmt.Fprintln(cmd.OutOrStdout(), "Purchase history cleared")
			return nil
		},
	})

	return cmd
}
