package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Data      DataConfig
	Cache     CacheConfig
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// DataConfig locates the catalog and review source files
type DataConfig struct {
	Dir         string `mapstructure:"dir"`
	CatalogFile string `mapstructure:"catalog_file"`
	ReviewsFile string `mapstructure:"reviews_file"`
}

// CatalogPath returns the absolute-or-relative path of the catalog source.
func (d DataConfig) CatalogPath() string {
	return filepath.Join(d.Dir, d.CatalogFile)
}

// ReviewsPath returns the path of the reviews source.
func (d DataConfig) ReviewsPath() string {
	return filepath.Join(d.Dir, d.ReviewsFile)
}

// CacheConfig holds response cache configuration
type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Size    int           `mapstructure:"size"`
	TTL     time.Duration `mapstructure:"ttl"`
}

// RateLimitConfig holds per-client rate limiting configuration
type RateLimitConfig struct {
	PerClientRPS float64 `mapstructure:"per_client_rps"`
	Burst        int     `mapstructure:"burst"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/shoplens/")

	// Environment variable settings
	v.SetEnvPrefix("SHOPLENS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:3000"})

	// Data source defaults
	v.SetDefault("data.dir", "./data")
	v.SetDefault("data.catalog_file", "catalog.sample.json")
	v.SetDefault("data.reviews_file", "reviews.sample.json")

	// Response cache defaults
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.size", 512)
	v.SetDefault("cache.ttl", "5m")

	// Rate limit defaults
	v.SetDefault("ratelimit.per_client_rps", 10)
	v.SetDefault("ratelimit.burst", 20)
}

// validate validates the configuration
func validate(config *Config) error {
	switch config.Server.Environment {
	case "development", "test", "production":
	default:
		return fmt.Errorf("environment must be development, test, or production, got: %s", config.Server.Environment)
	}

	if config.Cache.Enabled && config.Cache.Size <= 0 {
		return fmt.Errorf("cache size must be positive when cache is enabled, got: %d", config.Cache.Size)
	}

	if config.RateLimit.PerClientRPS <= 0 || config.RateLimit.Burst <= 0 {
		return fmt.Errorf("rate limit values must be positive, got: rps=%v burst=%d",
			config.RateLimit.PerClientRPS, config.RateLimit.Burst)
	}

	return nil
}
