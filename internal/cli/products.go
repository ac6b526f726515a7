package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/stockroom/internal/view"
	"github.com/mesh-intelligence/stockroom/pkg/types"
)

func newProductsCmd() *cobra.Command {
	var (
		page      int
		perPage   int
		dashboard bool
	)

	cmd := &cobra.Command{
		Use:   "products",
		Short: "List registered products with derived stock and cart state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			items := current.engine.Items()
			cart := current.engine.Cart()

			// The stored snapshots stand in for a catalog fetch, so the
			// listing works offline.
			catalogProducts := make([]types.Product, 0, len(items))
			for _, item := range items {
				catalogProducts = append(catalogProducts, item.Product)
			}
			sort.Slice(catalogProducts, func(i, j int) bool {
				return catalogProducts[i].ID < catalogProducts[j].ID
			})

			var list []view.Product
			if dashboard {
				list = view.DashboardProducts(catalogProducts, items, cart)
			} else {
				list = view.Products(catalogProducts, items, cart, nil, current.log)
			}
			list = view.Paginate(list, page, perPage)

			if flags.jsonMode {
				return printJSON(cmd, list)
			}
			for _, p := range list {
				fmt.Fprintf(cmd.OutOrStdout(), "%-6s %-44s %10s  stock=%-3d cart=%-3d %s\n",
					p.ID, truncate(p.Title, 44), p.Price, p.EffectiveStock,
					p.ItemCount, p.StockStatus)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().IntVar(&perPage, "per-page", 20, "products per page")
	cmd.Flags().BoolVar(&dashboard, "dashboard", false, "show raw stock without cart subtraction")
	return cmd
}

// truncate shortens s to at most n runes.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-3]) + "..."
}
