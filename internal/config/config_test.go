package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CACHE_HOME", filepath.Join(home, ".cache"))
	t.Setenv("LUNCHTRAY_CONFIG", "")
	return home
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	rate, err := cfg.TaxRate()
	require.NoError(t, err)
	require.True(t, decimal.RequireFromString("0.08").Equal(rate))
	require.Equal(t, SourceSQLite, cfg.Catalog.Source)
	require.Equal(t, "catalog.db", filepath.Base(cfg.Catalog.Path))
	require.Equal(t, "$", cfg.UI.CurrencySymbol)
	require.Equal(t, "INFO", cfg.Log.Level)
}

func TestEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv("LUNCHTRAY_ORDER_TAX_RATE", "0.1")
	t.Setenv("LUNCHTRAY_UI_CURRENCY_SYMBOL", "€")
	t.Setenv("LUNCHTRAY_CATALOG_SOURCE", "STATIC")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "0.1", cfg.Order.TaxRate)
	require.Equal(t, "€", cfg.UI.CurrencySymbol)
	require.Equal(t, SourceStatic, cfg.Catalog.Source)
}

func TestPathPrecedence(t *testing.T) {
	home := isolate(t)
	require.Equal(t, filepath.Join(home, ".config", "lunchtray", "config.toml"), Path(""))
	t.Setenv("LUNCHTRAY_CONFIG", "/tmp/env.toml")
	require.Equal(t, "/tmp/env.toml", Path(""))
	require.Equal(t, "/tmp/flag.toml", Path("/tmp/flag.toml"))
}

func TestSaveThenLoad(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "custom", "config.toml")

	want := Config{
		Order:   OrderConfig{TaxRate: "0.0725"},
		Catalog: CatalogConfig{Source: SourceStatic, Path: filepath.Join(home, "c.db")},
		UI:      UIConfig{CurrencySymbol: "£"},
		Log:     LogConfig{Level: "DEBUG", Dir: ""},
	}
	require.NoError(t, Save(want, path))
	_, err := os.Stat(path)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, want.Order, got.Order)
	require.Equal(t, want.Catalog, got.Catalog)
	require.Equal(t, want.UI, got.UI)
	require.Equal(t, "DEBUG", got.Log.Level)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	home := isolate(t)
	_, err := Load(filepath.Join(home, "nope.toml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	ok := Config{
		Order:   OrderConfig{TaxRate: "0.08"},
		Catalog: CatalogConfig{Source: SourceSQLite, Path: "/tmp/catalog.db"},
		UI:      UIConfig{CurrencySymbol: "$"},
		Log:     LogConfig{Level: "info"},
	}
	require.NoError(t, ok.Validate())

	cases := map[string]func(c *Config){
		"negative rate":  func(c *Config) { c.Order.TaxRate = "-0.01" },
		"garbage rate":   func(c *Config) { c.Order.TaxRate = "eight percent" },
		"unknown source": func(c *Config) { c.Catalog.Source = "postgres" },
		"missing path":   func(c *Config) { c.Catalog.Path = " " },
		"no currency":    func(c *Config) { c.UI.CurrencySymbol = "" },
		"bad level":      func(c *Config) { c.Log.Level = "TRACE" },
	}
	for name, mutate := range cases {
		c := ok
		mutate(&c)
		require.ErrorIs(t, c.Validate(), ErrInvalid, name)
	}

	static := ok
	static.Catalog = CatalogConfig{Source: SourceStatic}
	require.NoError(t, static.Validate())
}
