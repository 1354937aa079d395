// Package order holds the in-progress lunch order and its totals.
package order

import (
	"github.com/shopspring/decimal"

	"github.com/jask/lunchtray/internal/menu"
)

// DefaultTaxRate is applied when no rate is configured.
var DefaultTaxRate = decimal.RequireFromString("0.08")

// Order is an immutable snapshot of the current selections and totals.
// A zero menu.Item in a slot means nothing is selected for that category.
type Order struct {
	Entree        menu.Item
	SideDish      menu.Item
	Accompaniment menu.Item
	ItemTotal     decimal.Decimal
	Tax           decimal.Decimal
	Total         decimal.Decimal
}

// Compute prices a set of selections. Unselected slots count as zero.
func Compute(entree, sideDish, accompaniment menu.Item, rate decimal.Decimal) Order {
	o := Order{Entree: entree, SideDish: sideDish, Accompaniment: accompaniment}
	o.ItemTotal = decimal.Zero
	for _, it := range o.Items() {
		o.ItemTotal = o.ItemTotal.Add(it.Price)
	}
	o.Tax = o.ItemTotal.Mul(rate)
	o.Total = o.ItemTotal.Add(o.Tax)
	return o
}

// Items returns the selected items in menu order.
func (o Order) Items() []menu.Item {
	out := make([]menu.Item, 0, 3)
	for _, it := range []menu.Item{o.Entree, o.SideDish, o.Accompaniment} {
		if !it.IsZero() {
			out = append(out, it)
		}
	}
	return out
}

// Selected returns the item in the slot for category.
func (o Order) Selected(category menu.Category) menu.Item {
	switch category {
	case menu.CategoryEntree:
		return o.Entree
	case menu.CategorySideDish:
		return o.SideDish
	case menu.CategoryAccompaniment:
		return o.Accompaniment
	}
	return menu.Item{}
}

// IsEmpty reports whether no category has a selection.
func (o Order) IsEmpty() bool {
	return len(o.Items()) == 0
}

// Money formats an amount rounded to cents with the currency symbol prefixed.
func Money(symbol string, amount decimal.Decimal) string {
	if amount.IsNegative() {
		return "-" + symbol + amount.Neg().StringFixed(2)
	}
	return symbol + amount.StringFixed(2)
}
