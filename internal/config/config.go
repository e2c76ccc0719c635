// Package config loads and saves the ripple TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/Jeppcode/KPIVisualization/internal/kpi"
	"github.com/Jeppcode/KPIVisualization/internal/model"
)

// Config holds all ripple configuration.
type Config struct {
	Base       BaseConfig       `toml:"base"`
	Display    DisplayConfig    `toml:"display"`
	Appearance AppearanceConfig `toml:"appearance"`
	Server     ServerConfig     `toml:"server"`
}

// BaseConfig holds the base KPI values the dashboard starts from.
// Percentages are stored as 0-100 to match what users type.
type BaseConfig struct {
	Visitors            int64   `toml:"visitors"`
	HitratePct          float64 `toml:"hitrate_pct"`
	AvgPurchase         float64 `toml:"avg_purchase"`
	ProductsPerCustomer float64 `toml:"products_per_customer"`
	ProfitMarginPct     float64 `toml:"profit_margin_pct"`
}

// DisplayConfig holds presentation preferences.
type DisplayConfig struct {
	Currency string `toml:"currency"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// ServerConfig holds settings for `ripple serve`.
type ServerConfig struct {
	Addr     string `toml:"addr"`
	LogLevel string `toml:"log_level"`
}

// Environment overrides, applied on top of the file.
const (
	EnvTheme    = "RIPPLE_THEME"
	EnvCurrency = "RIPPLE_CURRENCY"
	EnvAddr     = "RIPPLE_ADDR"
	EnvLogLevel = "RIPPLE_LOG_LEVEL"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	cfg := Config{
		Display: DisplayConfig{
			Currency: "SEK",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Server: ServerConfig{
			Addr:     "127.0.0.1:8787",
			LogLevel: "info",
		},
	}
	cfg.SetBase(kpi.DefaultBounds().Defaults())
	return cfg
}

// BaseKPIs converts the stored base values into fractions.
func (c Config) BaseKPIs() model.BaseKPIs {
	return model.BaseKPIs{
		Visitors:            c.Base.Visitors,
		Hitrate:             model.PP(c.Base.HitratePct),
		AvgPurchase:         c.Base.AvgPurchase,
		ProductsPerCustomer: c.Base.ProductsPerCustomer,
		ProfitMargin:        model.PP(c.Base.ProfitMarginPct),
	}
}

// SetBase stores k as the configured base values.
func (c *Config) SetBase(k model.BaseKPIs) {
	c.Base = BaseConfig{
		Visitors:            k.Visitors,
		HitratePct:          model.ToPP(k.Hitrate),
		AvgPurchase:         k.AvgPurchase,
		ProductsPerCustomer: k.ProductsPerCustomer,
		ProfitMarginPct:     model.ToPP(k.ProfitMargin),
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "ripple")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "ripple")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// LoadDotEnv loads a .env file from the working directory if one exists.
func LoadDotEnv() error {
	if _, err := os.Stat(".env"); err != nil {
		return nil
	}
	if err := godotenv.Load(); err != nil {
		return fmt.Errorf("loading .env: %w", err)
	}
	return nil
}

// Load returns the runtime configuration: LoadFile with the environment
// overrides applied. The result must not be passed to Save.
func Load() (Config, error) {
	cfg, err := LoadFile()
	if err != nil {
		return cfg, err
	}
	applyEnv(&cfg)
	return cfg, nil
}

// LoadFile reads the config file over the defaults, returning defaults if
// it doesn't exist. It is the starting point for anything that calls Save.
func LoadFile() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
	} else if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvTheme)); v != "" {
		cfg.Appearance.Theme = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvCurrency)); v != "" {
		cfg.Display.Currency = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvAddr)); v != "" {
		cfg.Server.Addr = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Server.LogLevel = v
	}
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
