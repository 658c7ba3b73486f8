// Package config defines all configuration structures for the repurpose
// service.  No I/O or parsing logic lives here, only plain data types and
// validation.
package config

import (
	"fmt"
	"time"
)

// ─────────────────────────────────────────────────────────────────────────────
// Sub-configuration structs
// ─────────────────────────────────────────────────────────────────────────────

// ServerConfig holds HTTP server tunables.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // "debug" | "release" | "test"
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"db_name"`
	SSLMode         string        `mapstructure:"ssl_mode"`
	MaxConns        int           `mapstructure:"max_conns"`
	MinConns        int           `mapstructure:"min_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	MigrationPath   string        `mapstructure:"migration_path"`
}

// RedisConfig holds Redis connection parameters for the HTTP response cache.
type RedisConfig struct {
	Addr         string        `mapstructure:"addr"`
	Password     string        `mapstructure:"password"`
	DB           int           `mapstructure:"db"`
	PoolSize     int           `mapstructure:"pool_size"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	DefaultTTL   time.Duration `mapstructure:"default_ttl"`
	KeyPrefix    string        `mapstructure:"key_prefix"`
	Enabled      bool          `mapstructure:"enabled"`
}

// ProviderConfig holds the settings for a single external data provider.
type ProviderConfig struct {
	BaseURL           string        `mapstructure:"base_url"`
	MaxAttempts       int           `mapstructure:"max_attempts"`
	BaseRetryDelay    time.Duration `mapstructure:"base_retry_delay"`
	PerAttemptTimeout time.Duration `mapstructure:"per_attempt_timeout"`
	MinCallInterval   time.Duration `mapstructure:"min_call_interval"`
	APIKey            string        `mapstructure:"api_key"`
	Enabled           bool          `mapstructure:"enabled"`
}

// SourcesConfig groups all external provider settings.
type SourcesConfig struct {
	PubChem  ProviderConfig `mapstructure:"pubchem"`
	ChEMBL   ProviderConfig `mapstructure:"chembl"`
	RxNorm   ProviderConfig `mapstructure:"rxnorm"`
	DrugBank ProviderConfig `mapstructure:"drugbank"`
	DisGeNET ProviderConfig `mapstructure:"disgenet"`
}

// SeederConfig holds batch-seeding execution parameters.
type SeederConfig struct {
	Limit           int      `mapstructure:"limit"`
	CommitBatchSize int      `mapstructure:"commit_batch_size"`
	Concurrency     int      `mapstructure:"concurrency"`
	PageSize        int      `mapstructure:"page_size"`
	Sources         []string `mapstructure:"sources"`
}

// LogConfig holds structured-logging parameters.
type LogConfig struct {
	Level        string `mapstructure:"level"`  // "debug" | "info" | "warn" | "error"
	Format       string `mapstructure:"format"` // "json" | "text"
	Output       string `mapstructure:"output"`
	EnableCaller bool   `mapstructure:"enable_caller"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Root Config
// ─────────────────────────────────────────────────────────────────────────────

// Config is the root configuration structure for the service.  Every
// infrastructure component and application service reads its settings from
// the relevant sub-struct.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Sources  SourcesConfig  `mapstructure:"sources"`
	Seeder   SeederConfig   `mapstructure:"seeder"`
	Log      LogConfig      `mapstructure:"log"`
}

// ─────────────────────────────────────────────────────────────────────────────
// Validation
// ─────────────────────────────────────────────────────────────────────────────

// Validate performs semantic validation of the fully-populated Config.
// It returns the first error encountered; callers should treat any error as
// fatal and refuse to start the application.
func (c *Config) Validate() error {
	// Server
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("config: server.port %d is out of range [1, 65535]", c.Server.Port)
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("config: server.mode %q is invalid; expected debug|release|test", c.Server.Mode)
	}

	// Database
	if c.Database.Host == "" {
		return fmt.Errorf("config: database.host is required")
	}
	if c.Database.Port < 1 || c.Database.Port > 65535 {
		return fmt.Errorf("config: database.port %d is out of range [1, 65535]", c.Database.Port)
	}
	if c.Database.User == "" {
		return fmt.Errorf("config: database.user is required")
	}
	if c.Database.DBName == "" {
		return fmt.Errorf("config: database.db_name is required")
	}
	if c.Database.MaxConns < 1 {
		return fmt.Errorf("config: database.max_conns must be >= 1, got %d", c.Database.MaxConns)
	}

	// Redis
	if c.Redis.Enabled {
		if c.Redis.Addr == "" {
			return fmt.Errorf("config: redis.addr is required when redis is enabled")
		}
		if c.Redis.DB < 0 {
			return fmt.Errorf("config: redis.db must be >= 0, got %d", c.Redis.DB)
		}
	}

	// Sources
	providers := map[string]*ProviderConfig{
		"pubchem":  &c.Sources.PubChem,
		"chembl":   &c.Sources.ChEMBL,
		"rxnorm":   &c.Sources.RxNorm,
		"drugbank": &c.Sources.DrugBank,
		"disgenet": &c.Sources.DisGeNET,
	}
	for name, p := range providers {
		if !p.Enabled {
			continue
		}
		if p.BaseURL == "" {
			return fmt.Errorf("config: sources.%s.base_url is required", name)
		}
		if p.MaxAttempts < 1 {
			return fmt.Errorf("config: sources.%s.max_attempts must be >= 1, got %d", name, p.MaxAttempts)
		}
		if p.PerAttemptTimeout <= 0 {
			return fmt.Errorf("config: sources.%s.per_attempt_timeout must be positive", name)
		}
	}

	// Seeder
	if c.Seeder.CommitBatchSize < 1 {
		return fmt.Errorf("config: seeder.commit_batch_size must be >= 1, got %d", c.Seeder.CommitBatchSize)
	}
	if c.Seeder.Concurrency < 1 {
		return fmt.Errorf("config: seeder.concurrency must be >= 1, got %d", c.Seeder.Concurrency)
	}
	if c.Seeder.PageSize < 1 {
		return fmt.Errorf("config: seeder.page_size must be >= 1, got %d", c.Seeder.PageSize)
	}

	// Log
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q is invalid; expected debug|info|warn|error", c.Log.Level)
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("config: log.format %q is invalid; expected json|text", c.Log.Format)
	}

	return nil
}
