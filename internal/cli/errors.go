package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/pkg/types"
)

func newErrorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "errors",
		Short: "Show the engine's error slots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			errs := current.engine.Errors()

			if flags.jsonMode {
				return printJSON(cmd, errs)
			}
			if !errs.Any() {
				fmt.Fprintln(cmd.OutOrStdout(), "No errors")
				return nil
			}
			for _, category := range []string{
				types.ErrorStorage, types.ErrorInventory, types.ErrorPurchase,
			} {
				if msg := errs.Get(category); msg != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", category, msg)
				}
			}
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "clear [category]",
		Short: "Clear one error category, or all of them",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			category := ""
			if len(args) == 1 {
				category = args[0]
			}
			current.engine.ClearErrors(category)
			return nil
		},
	})

	return cmd
}
