package application

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/reviewkit/peerscore/internal/domain"
)

// Environment variable names recognized by LoadConfig.
const (
	// envPrefix prefixes every configuration environment variable.
	envPrefix = "PEERSCORE_"

	// configPathEnv optionally points at a YAML configuration file.
	configPathEnv = "PEERSCORE_CONFIG"

	// foundersKey is the flat configuration key for the founders roster.
	foundersKey = "founders"
)

// Config holds everything a run needs beyond the input files.
// The founders roster is required; it defines who counts as a person even
// without owning a goal, and shapes the required-raters baseline.
type Config struct {
	// Founders lists the founder names. Supplied as a comma-separated
	// string via PEERSCORE_FOUNDERS or as a YAML list in the config file.
	Founders []string `koanf:"founders" validate:"required,min=1,dive,required"`

	// LogLevel sets the stderr log verbosity: debug, info, warn, or error.
	LogLevel string `koanf:"log_level"`

	// MainWeight is the vote weight applied to main goals.
	MainWeight float64 `koanf:"main_weight" validate:"min=1"`
}

// DefaultConfig returns the built-in defaults: info logging and the
// standard 3x main-goal weight. There is no default founders roster.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:   "info",
		MainWeight: 3,
	}
}

// LoadConfig builds a Config by layering, lowest precedence first:
//  1. defaults (DefaultConfig)
//  2. YAML file, if PEERSCORE_CONFIG is set
//  3. environment variables with the PEERSCORE_ prefix
//
// A missing or empty founders roster is fatal: it returns an error
// wrapping domain.ErrNoFounders before any input file is read.
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	if path := os.Getenv(configPathEnv); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	// PEERSCORE_FOUNDERS -> founders, PEERSCORE_LOG_LEVEL -> log_level.
	// The founders value is split on commas so the env form and the YAML
	// list form unmarshal into the same field.
	envProvider := env.ProviderWithValue(envPrefix, ".", func(key, value string) (string, any) {
		key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
		if key == foundersKey {
			return key, splitNames(value)
		}
		return key, value
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := DefaultConfig()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if len(cfg.Founders) == 0 {
		return nil, fmt.Errorf("%w: set %sFOUNDERS to a comma-separated list of names", domain.ErrNoFounders, envPrefix)
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// splitNames splits a comma-separated roster, trimming whitespace and
// dropping empty entries.
func splitNames(value string) []string {
	parts := strings.Split(value, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			names = append(names, p)
		}
	}
	return names
}
