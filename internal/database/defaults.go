package database

import (
	"context"
	"database/sql"

	"github.com/jask/lunchtray/internal/database/repository"
	"github.com/jask/lunchtray/internal/menu"
)

// SeedDefaults loads the built-in menu into an empty catalog.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	repo := repository.NewMenuItemRepo(db)
	n, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return WithTx(db, func(tx *sql.Tx) error {
		for idx, it := range menu.DefaultItems() {
			if err := repository.UpsertMenuItem(ctx, tx, it, idx); err != nil {
				return err
			}
		}
		return nil
	})
}
