package menu

import (
	"context"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

func item(category Category, name, description, price string) Item {
	return Item{
		ID:          ItemID(category, name),
		Name:        name,
		Description: description,
		Price:       decimal.RequireFromString(price),
		Category:    category,
	}
}

// DefaultItems returns the built-in menu in display order.
func DefaultItems() []Item {
	return []Item{
		item(CategoryEntree, "Cauliflower", "Whole cauliflower, brined, roasted, and deep fried", "7.00"),
		item(CategoryEntree, "Three Bean Chili", "Black beans, red beans, kidney beans, slow cooked, topped with onion", "4.00"),
		item(CategoryEntree, "Mushroom Pasta", "Penne pasta, mushrooms, basil, with plum tomatoes cooked in garlic and olive oil", "5.50"),
		item(CategoryEntree, "Spicy Black Bean Skillet", "Seasonal vegetables, black beans, house spice blend, served with avocado and quick pickled onions", "5.50"),

		item(CategorySideDish, "Summer Salad", "Heirloom tomatoes, butter lettuce, peaches, avocado, balsamic dressing", "2.50"),
		item(CategorySideDish, "Butternut Squash Soup", "Roasted butternut squash, roasted peppers, chili oil", "3.00"),
		item(CategorySideDish, "Spicy Potatoes", "Marble potatoes, roasted, and fried in house spice blend", "2.00"),
		item(CategorySideDish, "Coconut Rice", "Rice, coconut milk, lime, and sugar", "1.50"),

		item(CategoryAccompaniment, "Lunch Roll", "Fresh baked roll made in house", "0.50"),
		item(CategoryAccompaniment, "Mixed Berries", "Strawberries, blueberries, raspberries, and huckleberries", "1.00"),
		item(CategoryAccompaniment, "Pickled Veggies", "Pickled cucumbers and carrots, made in house", "0.50"),
	}
}

// Static is an in-memory Catalog built once at startup.
type Static struct {
	byCategory map[Category][]Item
}

// NewStatic builds a catalog from items, keeping their relative order.
func NewStatic(items []Item) (*Static, error) {
	s := &Static{byCategory: make(map[Category][]Item, 3)}
	for _, it := range items {
		if err := it.Validate(); err != nil {
			return nil, err
		}
		if !slices.Contains(Categories(), it.Category) {
			return nil, fmt.Errorf("menu item %q: unknown category %q", it.Name, it.Category)
		}
		if it.ID == "" {
			it.ID = ItemID(it.Category, it.Name)
		}
		s.byCategory[it.Category] = append(s.byCategory[it.Category], it)
	}
	return s, nil
}

// DefaultCatalog returns the built-in menu as a Static catalog.
func DefaultCatalog() *Static {
	s, err := NewStatic(DefaultItems())
	if err != nil {
		panic(err)
	}
	return s
}

// Items returns a copy of the items in category.
func (s *Static) Items(_ context.Context, category Category) ([]Item, error) {
	return slices.Clone(s.byCategory[category]), nil
}
