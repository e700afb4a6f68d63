// Package config loads runtime settings from the environment
package config

import (
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/poketrainers/internal/errors"
)

// Data sources for the reference tables
const (
	SourceEmbedded = "embedded"
	SourceFile     = "file"
	SourceRedis    = "redis"
)

// Log levels accepted by LogLevel
const (
	LogLevelDebug = "debug"
	LogLevelInfo  = "info"
	LogLevelWarn  = "warn"
	LogLevelError = "error"
)

// Config holds the settings shared by every command
type Config struct {
	DataSource   string `env:"POKETRAINERS_DATA_SOURCE"    envDefault:"embedded"`
	PokemonData  string `env:"POKETRAINERS_POKEMON_DATA"`
	LevelData    string `env:"POKETRAINERS_LEVEL_DATA"`
	RedisAddr    string `env:"POKETRAINERS_REDIS_ADDR"     envDefault:"localhost:6379"`
	LogLevel     string `env:"POKETRAINERS_LOG_LEVEL"      envDefault:"warn"`
	ImageBaseURL string `env:"POKETRAINERS_IMAGE_BASE_URL"`
}

// Load parses the environment into a Config. The result is not validated so
// flags can still override it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	return cfg, nil
}

// Validate checks the source selection and its required settings
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("DataSource", c.DataSource, []string{SourceEmbedded, SourceFile, SourceRedis}, vb)
	errors.ValidateEnum("LogLevel", strings.ToLower(c.LogLevel),
		[]string{LogLevelDebug, LogLevelInfo, LogLevelWarn, LogLevelError}, vb)

	switch c.DataSource {
	case SourceFile:
		errors.ValidateRequired("PokemonData", c.PokemonData, vb)
		errors.ValidateRequired("LevelData", c.LevelData, vb)
	case SourceRedis:
		errors.ValidateRequired("RedisAddr", c.RedisAddr, vb)
	}

	return vb.Build()
}

// SlogLevel maps LogLevel onto slog, defaulting to warn
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
