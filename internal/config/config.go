package config

import (
	"path/filepath"

	"github.com/kelseyhightower/envconfig"
)

// Config holds application settings read from POS_* environment
// variables. Precedence: explicit env var > .env file (if loaded by
// main) > default.
type Config struct {
	DataDir   string `envconfig:"DATA_DIR" default:"."`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
}

// Load populates the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	err := envconfig.Process("pos", &cfg)
	return cfg, err
}

func (c Config) ProductsFile() string { return filepath.Join(c.DataDir, "Products.json") }

func (c Config) UnitsFile() string { return filepath.Join(c.DataDir, "Units.json") }

func (c Config) SalesFile() string { return filepath.Join(c.DataDir, "Sales.json") }
