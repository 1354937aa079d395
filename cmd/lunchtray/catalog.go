package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jask/lunchtray/internal/config"
	"github.com/jask/lunchtray/internal/database"
	"github.com/jask/lunchtray/internal/database/repository"
	"github.com/jask/lunchtray/internal/logging"
	"github.com/jask/lunchtray/internal/menu"
)

// openCatalog returns the configured menu source and a func releasing it.
func openCatalog(ctx context.Context, cfg config.Config, log *logging.Logger) (menu.Catalog, func() error, error) {
	if cfg.Catalog.Source == config.SourceStatic {
		log.Debug("catalog ready", "source", cfg.Catalog.Source)
		return menu.DefaultCatalog(), func() error { return nil }, nil
	}

	path := cfg.Catalog.Path
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("mkdir catalog dir: %w", err)
	}
	if err := database.RunMigrations(path); err != nil {
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open catalog: %w", err)
	}
	if err := database.SeedDefaults(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("seed defaults: %w", err)
	}
	log.Debug("catalog ready", "source", cfg.Catalog.Source, "path", path)
	return repository.NewMenuItemRepo(db), db.Close, nil
}
