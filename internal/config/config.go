// Package config loads node configuration in the teacher's layering:
// defaults, then a TOML file, then DEXNODE_-prefixed environment
// variables, via spf13/viper. Grounded on the teacher's
// internal/config/loader.go, trimmed down to the handful of settings
// this node actually has (no ports, no validators file, no RPC surface
// — those are out of scope here).
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the node's runtime configuration.
type Config struct {
	StoreDriver string `mapstructure:"store_driver"` // "pebble" or "memory"
	StorePath   string `mapstructure:"store_path"`
	GenesisPath string `mapstructure:"genesis_path"`

	IndexerDriver string `mapstructure:"indexer_driver"` // "postgres", "sqlite", or "" (disabled)
	IndexerDSN    string `mapstructure:"indexer_dsn"`

	LogLevel string `mapstructure:"log_level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("store_driver", "pebble")
	v.SetDefault("store_path", "./data/dexnode")
	v.SetDefault("genesis_path", "./genesis.json")
	v.SetDefault("indexer_driver", "")
	v.SetDefault("indexer_dsn", "")
	v.SetDefault("log_level", "info")
}

// Load reads configuration from defaults, then configFile (if non-empty
// and present), then DEXNODE_-prefixed environment variables.
func Load(configFile string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", configFile, err)
		}
	}

	v.SetEnvPrefix("DEXNODE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the node can't start with.
func (c *Config) Validate() error {
	switch c.StoreDriver {
	case "pebble", "memory":
	default:
		return fmt.Errorf("config: unknown store_driver %q", c.StoreDriver)
	}
	switch c.IndexerDriver {
	case "", "postgres", "sqlite":
	default:
		return fmt.Errorf("config: unknown indexer_driver %q", c.IndexerDriver)
	}
	return nil
}
