// Package menu holds the static lunch menu: items, categories and lookup.
package menu

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category groups items shown on the same menu stage.
type Category string

const (
	CategoryEntree        Category = "entree"
	CategorySideDish      Category = "side_dish"
	CategoryAccompaniment Category = "accompaniment"
)

// Categories returns every category in menu order.
func Categories() []Category {
	return []Category{CategoryEntree, CategorySideDish, CategoryAccompaniment}
}

// Label returns a human readable category name.
func (c Category) Label() string {
	switch c {
	case CategoryEntree:
		return "Entree"
	case CategorySideDish:
		return "Side Dish"
	case CategoryAccompaniment:
		return "Accompaniment"
	default:
		return string(c)
	}
}

// ParseCategory accepts the identifier or label of a category, ignoring case.
func ParseCategory(s string) (Category, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "_", "-", "_").Replace(norm)
	switch norm {
	case "entree", "entrees":
		return CategoryEntree, nil
	case "side_dish", "side", "sides", "side_dishes":
		return CategorySideDish, nil
	case "accompaniment", "accompaniments":
		return CategoryAccompaniment, nil
	}
	return "", fmt.Errorf("unknown category %q", s)
}

// Item is a selectable food item. The zero Item means "nothing selected".
type Item struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal
	Category    Category
}

// IsZero reports whether the item is the "no item" sentinel.
func (i Item) IsZero() bool {
	return i.Name == "" && i.Price.IsZero()
}

// Validate checks the invariants of a catalog item.
func (i Item) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return fmt.Errorf("menu item: empty name")
	}
	if i.Price.IsNegative() {
		return fmt.Errorf("menu item %q: negative price %s", i.Name, i.Price)
	}
	return nil
}

// ItemID derives a stable identifier from the category and name.
func ItemID(category Category, name string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("menu:"+string(category)+":"+strings.ToLower(name))).String()
}

// Catalog is read-only access to the menu, one ordered collection per category.
type Catalog interface {
	Items(ctx context.Context, category Category) ([]Item, error)
}
