package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/jask/lunchtray/internal/logging"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

const (
	SourceSQLite = "sqlite"
	SourceStatic = "static"
)

// Config holds application configuration.
type Config struct {
	Order   OrderConfig
	Catalog CatalogConfig
	UI      UIConfig
	Log     LogConfig
}

// OrderConfig holds pricing settings.
type OrderConfig struct {
	TaxRate string `mapstructure:"tax_rate"`
}

// CatalogConfig selects where menu items come from.
type CatalogConfig struct {
	Source string
	Path   string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	CurrencySymbol string `mapstructure:"currency_symbol"`
}

// LogConfig holds debug log settings. An empty Dir disables the log file.
type LogConfig struct {
	Level string
	Dir   string
}

// TaxRate parses the configured rate.
func (c Config) TaxRate() (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(strings.TrimSpace(c.Order.TaxRate))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: order.tax_rate %q: %v", ErrInvalid, c.Order.TaxRate, err)
	}
	return rate, nil
}

// Validate checks the values Load cannot default away.
func (c Config) Validate() error {
	rate, err := c.TaxRate()
	if err != nil {
		return err
	}
	if rate.IsNegative() {
		return fmt.Errorf("%w: order.tax_rate must not be negative", ErrInvalid)
	}
	switch c.Catalog.Source {
	case SourceSQLite:
		if strings.TrimSpace(c.Catalog.Path) == "" {
			return fmt.Errorf("%w: catalog.path is required for the sqlite source", ErrInvalid)
		}
	case SourceStatic:
	default:
		return fmt.Errorf("%w: catalog.source %q (want %s or %s)", ErrInvalid, c.Catalog.Source, SourceSQLite, SourceStatic)
	}
	if strings.TrimSpace(c.UI.CurrencySymbol) == "" {
		return fmt.Errorf("%w: ui.currency_symbol is empty", ErrInvalid)
	}
	if !logging.ValidLevel(c.Log.Level) {
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	return nil
}

func dataDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "lunchtray")
	}
	return filepath.Join(os.Getenv("HOME"), ".cache", "lunchtray")
}

// DefaultPath is where Save writes when LUNCHTRAY_CONFIG is unset.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "lunchtray", "config.toml")
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("order.tax_rate", "0.08")
	v.SetDefault("catalog.source", SourceSQLite)
	v.SetDefault("catalog.path", filepath.Join(dataDir(), "catalog.db"))
	v.SetDefault("ui.currency_symbol", "$")
	v.SetDefault("log.level", logging.LevelInfo)
	v.SetDefault("log.dir", filepath.Join(dataDir(), "logs"))
}

// New returns a viper instance with defaults, config file lookup and env
// overrides configured. cfgFile overrides LUNCHTRAY_CONFIG when set.
func New(cfgFile string) *viper.Viper {
	// .env values become process env so AutomaticEnv sees them.
	_ = godotenv.Load()

	v := viper.New()
	SetDefaults(v)
	v.SetConfigType("toml")

	if cfgFile == "" {
		cfgFile = os.Getenv("LUNCHTRAY_CONFIG")
	}
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "lunchtray"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("LUNCHTRAY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

// Load reads configuration from file and env. Env var overrides use prefix LUNCHTRAY_.
func Load(cfgFile string) (Config, error) {
	v := New(cfgFile)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}
	return FromViper(v)
}

// FromViper decodes and validates the settings held by v.
func FromViper(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Catalog.Source = strings.ToLower(strings.TrimSpace(c.Catalog.Source))
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Path resolves the config file location: explicit, then LUNCHTRAY_CONFIG, then DefaultPath.
func Path(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv("LUNCHTRAY_CONFIG"); env != "" {
		return env
	}
	return DefaultPath()
}

// Save writes cfg as TOML, creating the config directory if needed.
func Save(cfg Config, path string) error {
	path = Path(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("order.tax_rate", cfg.Order.TaxRate)
	v.Set("catalog.source", cfg.Catalog.Source)
	v.Set("catalog.path", cfg.Catalog.Path)
	v.Set("ui.currency_symbol", cfg.UI.CurrencySymbol)
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.dir", cfg.Log.Dir)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
