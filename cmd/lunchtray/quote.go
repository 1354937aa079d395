package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/lunchtray/internal/menu"
	"github.com/jask/lunchtray/internal/order"
	"github.com/jask/lunchtray/internal/tui"
)

var errNothingToQuote = errors.New("name at least one of --entree, --side or --accompaniment")

func newQuoteCmd(a *app) *cobra.Command {
	names := make(map[menu.Category]*string, 3)
	cmd := &cobra.Command{
		Use:     "quote",
		Short:   "Price an order without starting the interactive flow",
		Example: `  lunchtray quote --entree "Mushroom Pasta" --side "Coconut Rice" --accompaniment "Lunch Roll"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rate, err := a.cfg.TaxRate()
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			catalog, closeCatalog, err := openCatalog(ctx, a.cfg, a.log)
			if err != nil {
				return err
			}
			defer closeCatalog()

			picked := make(map[menu.Category]menu.Item, len(names))
			for _, c := range menu.Categories() {
				name := *names[c]
				if name == "" {
					continue
				}
				items, err := catalog.Items(ctx, c)
				if err != nil {
					return fmt.Errorf("load %s menu: %w", c.Label(), err)
				}
				it, err := menu.Find(items, name)
				if err != nil {
					return fmt.Errorf("%s: %w", c.Label(), err)
				}
				picked[c] = it
			}
			if len(picked) == 0 {
				return errNothingToQuote
			}

			o := order.Compute(picked[menu.CategoryEntree], picked[menu.CategorySideDish], picked[menu.CategoryAccompaniment], rate)
			a.log.Debug("quote", "items", len(picked), "total", o.Total.StringFixed(2))
			fmt.Fprintln(cmd.OutOrStdout(), tui.Summary(o, a.cfg.UI.CurrencySymbol))
			return nil
		},
	}
	names[menu.CategoryEntree] = cmd.Flags().String("entree", "", "entree name")
	names[menu.CategorySideDish] = cmd.Flags().String("side", "", "side dish name")
	names[menu.CategoryAccompaniment] = cmd.Flags().String("accompaniment", "", "accompaniment name")
	return cmd
}
