package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/echern/punch/internal/billing"
)

// Config holds the few knobs punch has. Values come from
// ~/.punch/config.yaml when present, overridable with PUNCH_* env vars.
type Config struct {
	RatePerHour    float64 `mapstructure:"rate_per_hour"`
	CurrencySymbol string  `mapstructure:"currency_symbol"`
	DatabasePath   string  `mapstructure:"database_path"`
}

// Dir returns the punch home directory (~/.punch).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".punch"), nil
}

// Load reads the configuration, falling back to defaults when no config
// file exists.
func Load() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, fmt.Errorf("failed to locate punch directory: %w", err)
	}

	v := viper.New()
	v.SetDefault("rate_per_hour", billing.DefaultRatePerHour)
	v.SetDefault("currency_symbol", "$")
	v.SetDefault("database_path", filepath.Join(dir, "punch.db"))

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)

	v.SetEnvPrefix("PUNCH")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing config file just means defaults.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.RatePerHour <= 0 {
		return nil, fmt.Errorf("rate_per_hour must be positive, got %v", cfg.RatePerHour)
	}

	return &cfg, nil
}
