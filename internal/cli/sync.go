package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/internal/catalog"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

func newSyncCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "sync [category]",
		Short: "Fetch catalog products and register them in inventory",
		Long: "Sync fetches products from the configured catalog source (all of\n" +
			"them, or one category) and registers any new ones with default stock.\n" +
			"Already-known products keep their first-seen snapshot.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if current.cfg.CatalogURL == "" {
				return fmt.Errorf("no catalog URL configured")
			}
			client := catalog.New(current.cfg.CatalogURL, timeout, current.log)

			var (
				products []types.Product
				err      error
			)
			if len(args) == 1 {
				products, err = client.ProductsByCategory(cmd.Context(), args[0])
			} else {
				products, err = client.Products(cmd.Context())
			}
			if err != nil {
				return fmt.Errorf("fetch catalog: %w", err)
			}

			current.engine.RegisterProducts(products)
			if msg := current.engine.Errors().Inventory; msg != "" {
				return reportEngineError(msg)
			}
			if msg := current.engine.Errors().Storage; msg != "" {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning:", msg)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Registered %d catalog products (%d in inventory)\n",
				len(products), len(current.engine.Items()))
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 15*time.Second, "catalog request timeout")
	return cmd
}

func newCategoriesCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List catalog categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if current.cfg.CatalogURL == "" {
				return fmt.Errorf("no catalog URL configured")
			}
			client := catalog.New(current.cfg.CatalogURL, timeout, current.log)

			categories, err := client.Categories(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetch categories: %w", err)
			}
			if flags.jsonMode {
				return printJSON(cmd, categories)
			}
			for _, c := range categories {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 15*time.Second, "catalog request timeout")
	return cmd
}
