package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/lunchtray/internal/menu"
	"github.com/jask/lunchtray/internal/order"
	"github.com/jask/lunchtray/internal/widgets"
)

func newMenuCmd(a *app) *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Print the menu grouped by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cats := menu.Categories()
			if category != "" {
				c, err := menu.ParseCategory(category)
				if err != nil {
					return err
				}
				cats = []menu.Category{c}
			}

			ctx := cmd.Context()
			catalog, closeCatalog, err := openCatalog(ctx, a.cfg, a.log)
			if err != nil {
				return err
			}
			defer closeCatalog()

			out := cmd.OutOrStdout()
			for i, c := range cats {
				items, err := catalog.Items(ctx, c)
				if err != nil {
					return fmt.Errorf("load %s menu: %w", c.Label(), err)
				}
				rows := make([][]string, 0, len(items))
				for _, it := range items {
					rows = append(rows, []string{it.Name, order.Money(a.cfg.UI.CurrencySymbol, it.Price), it.Description})
				}
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintln(out, c.Label())
				fmt.Fprintln(out, widgets.Table{Rows: rows, RightAlign: []int{1}}.Render(200, max(1, len(rows))))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "only print one category (entree, side dish, accompaniment)")
	return cmd
}
