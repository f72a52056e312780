// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"fmt"
	"strings"

	"github.com/iwvelando/finance-calculators/pkg/calculators/tax"
	"github.com/iwvelando/finance-calculators/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for finance-calculators.
type Configuration struct {
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Server  ServerConfig  `yaml:"server,omitempty"`
	History HistoryConfig `yaml:"history,omitempty"`
	Tax     TaxConfig     `yaml:"tax,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv, json
}

// HistoryConfig selects and configures the calculation history backend.
type HistoryConfig struct {
	Backend  string         `yaml:"backend,omitempty"` // memory, redis, sqlite, postgres
	Capacity int            `yaml:"capacity,omitempty"`
	Redis    RedisConfig    `yaml:"redis,omitempty"`
	SQLite   SQLiteConfig   `yaml:"sqlite,omitempty"`
	Postgres PostgresConfig `yaml:"postgres,omitempty"`
}

// RedisConfig holds connection settings for the redis history backend.
type RedisConfig struct {
	Address  string `yaml:"address,omitempty"`
	Password string `yaml:"password,omitempty"`
	DB       int    `yaml:"db,omitempty"`
}

// SQLiteConfig holds settings for the sqlite history backend.
type SQLiteConfig struct {
	Path string `yaml:"path,omitempty"`
}

// PostgresConfig holds settings for the postgres history backend.
type PostgresConfig struct {
	URL string `yaml:"url,omitempty"`
}

// TaxConfig carries income tax regime overrides. When no regimes are
// configured the built-in FY 2025-26 tables apply.
type TaxConfig struct {
	Regimes       []tax.Regime `yaml:"regimes,omitempty"`
	DefaultRegime string       `yaml:"defaultRegime,omitempty"`
}

// History backend names accepted in configuration.
const (
	BackendMemory   = "memory"
	BackendRedis    = "redis"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. An empty path yields the built-in defaults without
// touching the filesystem.
func LoadConfiguration(configPath string) (*Configuration, error) {
	var configuration Configuration

	if configPath == "" {
		if err := configuration.normalize(); err != nil {
			return nil, err
		}
		return &configuration, nil
	}

	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	if err := configuration.normalize(); err != nil {
		return nil, err
	}

	return &configuration, nil
}

func (c *Configuration) normalize() error {
	if err := c.Server.normalize(); err != nil {
		return err
	}
	c.History.normalize()

	if c.Output.Format == "" {
		c.Output.Format = constants.OutputFormatPretty
	}
	if c.Tax.DefaultRegime == "" {
		c.Tax.DefaultRegime = "new"
	}

	return nil
}

func (h *HistoryConfig) normalize() {
	h.Backend = strings.ToLower(strings.TrimSpace(h.Backend))
	if h.Backend == "" {
		h.Backend = BackendMemory
	}
	if h.Capacity <= 0 {
		h.Capacity = constants.DefaultHistoryCapacity
	}
	if h.Redis.Address == "" {
		h.Redis.Address = "localhost:6379"
	}
	if h.SQLite.Path == "" {
		h.SQLite.Path = "./data/history.db"
	}
}

// TaxRegimes returns the configured income tax regimes, falling back to the
// built-in tables when none are configured.
func (c *Configuration) TaxRegimes() []tax.Regime {
	if len(c.Tax.Regimes) > 0 {
		return c.Tax.Regimes
	}
	return tax.DefaultRegimes()
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		warnings = append(warnings, fmt.Sprintf("unrecognized logging level '%s'; info will be used", c.Logging.Level))
	}

	switch strings.ToLower(c.Logging.Format) {
	case "", "json", "console":
	default:
		warnings = append(warnings, fmt.Sprintf("unrecognized logging format '%s'; json will be used", c.Logging.Format))
	}

	switch c.Output.Format {
	case "", constants.OutputFormatPretty, constants.OutputFormatCSV, constants.OutputFormatJSON:
	default:
		warnings = append(warnings, fmt.Sprintf("unrecognized output format '%s'; %s will be used", c.Output.Format, constants.OutputFormatPretty))
	}

	switch c.History.Backend {
	case "", BackendMemory, BackendRedis, BackendSQLite, BackendPostgres:
	default:
		warnings = append(warnings, fmt.Sprintf("unrecognized history backend '%s'; history will be disabled", c.History.Backend))
	}
	if c.History.Backend == BackendPostgres && c.History.Postgres.URL == "" {
		warnings = append(warnings, "history backend postgres requires a connection URL; history will be disabled")
	}

	seen := make(map[string]struct{})
	for _, regime := range c.Tax.Regimes {
		if _, duplicate := seen[regime.Name]; duplicate {
			warnings = append(warnings, fmt.Sprintf("tax regime '%s' is defined more than once; the first definition wins", regime.Name))
		}
		seen[regime.Name] = struct{}{}

		if err := regime.Slabs.Validate(); err != nil {
			warnings = append(warnings, fmt.Sprintf("tax regime '%s' has invalid slabs: %v", regime.Name, err))
		}
	}
	if c.Tax.DefaultRegime != "" {
		if _, ok := tax.RegimeByName(c.TaxRegimes(), c.Tax.DefaultRegime); !ok {
			warnings = append(warnings, fmt.Sprintf("default tax regime '%s' is not defined", c.Tax.DefaultRegime))
		}
	}

	return warnings
}
