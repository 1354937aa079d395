package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jask/lunchtray/internal/menu"
)

// Execer is satisfied by *sql.DB and *sql.Tx.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// MenuItemRepo serves the menu catalog from sqlite.
type MenuItemRepo struct {
	db *sql.DB
}

func NewMenuItemRepo(db *sql.DB) *MenuItemRepo {
	return &MenuItemRepo{db: db}
}

var _ menu.Catalog = (*MenuItemRepo)(nil)

// UpsertMenuItem writes it at position sortOrder within its category.
func UpsertMenuItem(ctx context.Context, ex Execer, it menu.Item, sortOrder int) error {
	if err := it.Validate(); err != nil {
		return err
	}
	id := it.ID
	if id == "" {
		id = menu.ItemID(it.Category, it.Name)
	}
	_, err := ex.ExecContext(ctx, `
	INSERT INTO menu_items(id, category, name, description, price, sort_order)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 category=excluded.category,
	 name=excluded.name,
	 description=excluded.description,
	 price=excluded.price,
	 sort_order=excluded.sort_order;
	`, id, string(it.Category), it.Name, it.Description, it.Price.String(), sortOrder)
	if err != nil {
		return fmt.Errorf("upsert menu item %q: %w", it.Name, err)
	}
	return nil
}

func (r *MenuItemRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM menu_items`).Scan(&n)
	return n, err
}

// Items lists the items of one category in display order.
func (r *MenuItemRepo) Items(ctx context.Context, category menu.Category) ([]menu.Item, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, category, name, description, price
	FROM menu_items
	WHERE category = ?
	ORDER BY sort_order, name`, string(category))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []menu.Item
	for rows.Next() {
		var (
			it    menu.Item
			cat   string
			price string
		)
		if err := rows.Scan(&it.ID, &cat, &it.Name, &it.Description, &price); err != nil {
			return nil, err
		}
		it.Category = menu.Category(cat)
		it.Price, err = decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("menu item %q: bad price %q: %w", it.Name, price, err)
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
