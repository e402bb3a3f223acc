// Package config loads runtime configuration from the environment.
//
// Variables use the FOODTRACKER_ prefix and a double underscore separates
// nested sections, e.g. FOODTRACKER_DATABASE__MAX_OPEN_CONNS maps to
// Config.Database.MaxOpenConns. A .env file in the working directory is
// loaded first when present.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "FOODTRACKER_"

// Config holds all configuration for the application
type Config struct {
	Env       Environment     `koanf:"env" validate:"required,oneof=development test ci production"`
	Server    ServerConfig    `koanf:"server" validate:"required"`
	Database  DatabaseConfig  `koanf:"database" validate:"required"`
	Auth      AuthConfig      `koanf:"auth"`
	Redis     RedisConfig     `koanf:"redis"`
	RateLimit RateLimitConfig `koanf:"ratelimit"`
	Accounts  AccountsConfig  `koanf:"accounts"`
	Log       LogConfig       `koanf:"log"`
}

type ServerConfig struct {
	Host         string `koanf:"host"`
	Port         string `koanf:"port" validate:"required"`
	ReadTimeout  int    `koanf:"read_timeout" validate:"gte=0"`
	WriteTimeout int    `koanf:"write_timeout" validate:"gte=0"`
	IdleTimeout  int    `koanf:"idle_timeout" validate:"gte=0"`
	// Comma separated list; "*" allows any origin.
	CORSAllowedOrigins string `koanf:"cors_allowed_origins"`
}

// DatabaseConfig selects the store. SQLite is the default single-file store;
// postgres is accepted for shared deployments.
type DatabaseConfig struct {
	Driver          string `koanf:"driver" validate:"required,oneof=sqlite postgres"`
	Path            string `koanf:"path" validate:"required_if=Driver sqlite"`
	DSN             string `koanf:"dsn" validate:"required_if=Driver postgres"`
	BusyTimeoutMS   int    `koanf:"busy_timeout_ms" validate:"gte=0"`
	MaxOpenConns    int    `koanf:"max_open_conns" validate:"gte=0"`
	MaxIdleConns    int    `koanf:"max_idle_conns" validate:"gte=0"`
	ConnMaxLifetime int    `koanf:"conn_max_lifetime" validate:"gte=0"`
}

type AuthConfig struct {
	JWTSecret     string `koanf:"jwt_secret"`
	TokenTTLHours int    `koanf:"token_ttl_hours" validate:"gte=1"`
}

// RedisConfig is optional. When URL is empty rate limiting stays in process.
type RedisConfig struct {
	URL string `koanf:"url"`
}

type RateLimitConfig struct {
	PostsPerHour int `koanf:"posts_per_hour" validate:"gte=1"`
}

type AccountsConfig struct {
	// DeletePolicy decides what happens to food items, recipes and posts
	// that reference a deleted account.
	DeletePolicy string `koanf:"delete_policy" validate:"oneof=restrict cascade orphan"`
}

type LogConfig struct {
	Level string `koanf:"level" validate:"oneof=debug info warn error"`
}

// Default returns the configuration used when no variable overrides a value.
func Default() *Config {
	return &Config{
		Env: Development,
		Server: ServerConfig{
			Host:               "0.0.0.0",
			Port:               "8080",
			ReadTimeout:        15,
			WriteTimeout:       15,
			IdleTimeout:        60,
			CORSAllowedOrigins: "*",
		},
		Database: DatabaseConfig{
			Driver:        "sqlite",
			Path:          filepath.Join("data", "foodtracker.db"),
			BusyTimeoutMS: 5000,
		},
		Auth: AuthConfig{
			TokenTTLHours: 24,
		},
		RateLimit: RateLimitConfig{
			PostsPerHour: 30,
		},
		Accounts: AccountsConfig{
			DeletePolicy: "restrict",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load creates a new Config instance from defaults overridden by environment variables
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, envPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment: %w", err)
	}

	cfg := Default()
	cfg.Env = GetEnvironment()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if cfg.Auth.JWTSecret == "" {
		cfg.Auth.JWTSecret = readSecret("jwt_secret")
	}
	if cfg.Auth.JWTSecret == "" && cfg.Env != Production {
		cfg.Auth.JWTSecret = "development-secret"
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// AllowedOrigins splits the configured CORS origin list.
func (c ServerConfig) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	secretPath := filepath.Join(secretsDir, name)
	if data, err := os.ReadFile(secretPath); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

var validate = validator.New()
