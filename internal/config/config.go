// Package config loads application configuration from the environment.
//
// Variables are read with the TOODOO_ prefix, optionally from a `.env` file,
// mapped into structured Go types, and validated so the app fails fast on
// missing or malformed values.
package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	// Loads a `.env` file into the process environment before anything
	// reads env vars.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags map env keys onto fields: TOODOO_SERVER__PORT
// becomes "server.port" which lands in Config.Server.Port. Double
// underscores in env names delimit nesting, single underscores stay part
// of the key.
//
// Logging is a pointer because it is optional; defaults are injected when
// it is absent.
type Config struct {
	Primary  Primary        `koanf:"primary" validate:"required"`
	Server   ServerConfig   `koanf:"server" validate:"required"`
	Database DatabaseConfig `koanf:"database" validate:"required"`
	Logging  *LoggingConfig `koanf:"logging"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required,oneof=local development production"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// DatabaseConfig contains PostgreSQL connection parameters, pool tuning,
// and the per-query result cap applied to list operations.
type DatabaseConfig struct {
	Host            string `koanf:"host" validate:"required"`
	Port            int    `koanf:"port" validate:"required"`
	User            string `koanf:"user" validate:"required"`
	Password        string `koanf:"password" validate:"required"`
	Name            string `koanf:"name" validate:"required"`
	SSLMode         string `koanf:"ssl_mode" validate:"required"`
	MaxConns        int    `koanf:"max_conns" validate:"required"`
	MinConns        int    `koanf:"min_conns"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime int    `koanf:"conn_max_idle_time" validate:"required"`
	ResultsPerQuery int    `koanf:"results_per_query"`
}

// LoggingConfig controls structured logger behavior.
type LoggingConfig struct {
	// Level is the verbosity threshold (debug/info/warn/error).
	Level string `koanf:"level" validate:"required,oneof=debug info warn error"`

	// Format selects the output format: "json" or "console".
	Format string `koanf:"format" validate:"required,oneof=json console"`
}

// DefaultLoggingConfig returns the logging defaults for an environment:
// human-friendly console output at debug level locally, JSON at info level
// everywhere else.
func DefaultLoggingConfig(environment string) *LoggingConfig {
	if environment == "local" {
		return &LoggingConfig{Level: "debug", Format: "console"}
	}
	return &LoggingConfig{Level: "info", Format: "json"}
}

const (
	envPrefix = "TOODOO_"

	// defaultResultsPerQuery caps list queries when the env leaves the
	// limit unset.
	defaultResultsPerQuery = 100
)

// Load reads env vars with the TOODOO_ prefix, unmarshals them into a
// Config, validates it, and applies defaults for the optional blocks.
func Load() (*Config, error) {
	k := koanf.New(".")

	// TOODOO_DATABASE__MAX_CONNS -> "database.max_conns".
	// List values are space-separated in a single variable.
	err := k.Load(env.ProviderWithValue(envPrefix, ".", func(key, value string) (string, interface{}) {
		key = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(key, envPrefix)), "__", ".")
		if key == "server.cors_allowed_origins" {
			return key, strings.Fields(value)
		}
		return key, value
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, "loading env variables")
	}

	cfg := &Config{}
	err = k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			TagName: "koanf",
			Result:  cfg,
			// Env values are strings; let ints and bools decode from them.
			WeaklyTypedInput: true,
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "unmarshalling config")
	}

	if cfg.Logging == nil {
		cfg.Logging = DefaultLoggingConfig(cfg.Primary.Env)
	}
	if cfg.Database.ResultsPerQuery <= 0 {
		cfg.Database.ResultsPerQuery = defaultResultsPerQuery
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "validating config")
	}

	return cfg, nil
}

// IsLocal reports whether the application runs in local development mode.
func (c *Config) IsLocal() bool {
	return c.Primary.Env == "local"
}
