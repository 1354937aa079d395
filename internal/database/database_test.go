package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/lunchtray/internal/database/repository"
	"github.com/jask/lunchtray/internal/menu"
)

func TestMigrateAndSeedMatchesStaticCatalog(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "catalog.db")
	require.NoError(t, RunMigrations(dbPath))
	// A second run must be a no-op.
	require.NoError(t, RunMigrations(dbPath))

	db, err := Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, SeedDefaults(ctx, db))
	require.NoError(t, SeedDefaults(ctx, db))

	repo := repository.NewMenuItemRepo(db)
	n, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, len(menu.DefaultItems()), n)

	static := menu.DefaultCatalog()
	for _, c := range menu.Categories() {
		want, err := static.Items(ctx, c)
		require.NoError(t, err)
		got, err := repo.Items(ctx, c)
		require.NoError(t, err)
		require.Len(t, got, len(want))
		for i := range want {
			require.Equal(t, want[i].ID, got[i].ID)
			require.Equal(t, want[i].Name, got[i].Name)
			require.Equal(t, want[i].Description, got[i].Description)
			require.True(t, want[i].Price.Equal(got[i].Price), "%s price", want[i].Name)
		}
	}
}
