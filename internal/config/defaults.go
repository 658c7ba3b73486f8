// Package config provides configuration loading, defaults, and validation for
// the repurpose service.
package config

import "time"

// ─────────────────────────────────────────────────────────────────────────────
// Default value constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	DefaultServerPort = 8080
	DefaultServerMode = "debug"

	DefaultDBHost     = "localhost"
	DefaultDBPort     = 5432
	DefaultDBName     = "repurpose"
	DefaultDBMaxConns = 25

	DefaultRedisAddr      = "localhost:6379"
	DefaultRedisTTL       = 15 * time.Minute
	DefaultRedisKeyPrefix = "repurpose:"

	DefaultPubChemBaseURL  = "https://pubchem.ncbi.nlm.nih.gov/rest/pug"
	DefaultChEMBLBaseURL   = "https://www.ebi.ac.uk/chembl/api/data"
	DefaultRxNormBaseURL   = "https://rxnav.nlm.nih.gov/REST"
	DefaultDrugBankBaseURL = "https://go.drugbank.com/api/v1"
	DefaultDisGeNETBaseURL = "https://www.disgenet.org/api"

	// Retry defaults for interactive name lookups.
	DefaultMaxAttempts       = 5
	DefaultBaseRetryDelay    = 1 * time.Second
	DefaultPerAttemptTimeout = 5 * time.Second
	DefaultMinCallInterval   = 200 * time.Millisecond

	DefaultSeederLimit      = 1000
	DefaultCommitBatchSize  = 100
	DefaultSeederConcurrent = 4
	DefaultSeederPageSize   = 100

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// ApplyDefaults fills every zero-value field in cfg with the service default.
// Fields that have already been set by the caller (non-zero values) are left
// unchanged so that explicit configuration always wins.  It must be called
// after unmarshalling raw config data and before Validate() so that
// optional-but-defaulted fields are never seen as missing.
func ApplyDefaults(cfg *Config) {
	if cfg == nil {
		return
	}

	// ── Server ────────────────────────────────────────────────────────────────
	if cfg.Server.Port == 0 {
		cfg.Server.Port = DefaultServerPort
	}
	if cfg.Server.Mode == "" {
		cfg.Server.Mode = DefaultServerMode
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 15 * time.Second
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 30 * time.Second
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10 * time.Second
	}

	// ── Database ──────────────────────────────────────────────────────────────
	if cfg.Database.Host == "" {
		cfg.Database.Host = DefaultDBHost
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = DefaultDBPort
	}
	if cfg.Database.DBName == "" {
		cfg.Database.DBName = DefaultDBName
	}
	if cfg.Database.MaxConns == 0 {
		cfg.Database.MaxConns = DefaultDBMaxConns
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.MigrationPath == "" {
		cfg.Database.MigrationPath = "migrations"
	}

	// ── Redis ─────────────────────────────────────────────────────────────────
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = DefaultRedisAddr
	}
	if cfg.Redis.DefaultTTL == 0 {
		cfg.Redis.DefaultTTL = DefaultRedisTTL
	}
	if cfg.Redis.KeyPrefix == "" {
		cfg.Redis.KeyPrefix = DefaultRedisKeyPrefix
	}

	// ── Sources ───────────────────────────────────────────────────────────────
	applyProviderDefaults(&cfg.Sources.PubChem, DefaultPubChemBaseURL, true)
	applyProviderDefaults(&cfg.Sources.ChEMBL, DefaultChEMBLBaseURL, true)
	applyProviderDefaults(&cfg.Sources.RxNorm, DefaultRxNormBaseURL, true)
	// DrugBank stays disabled unless an API key is configured.
	applyProviderDefaults(&cfg.Sources.DrugBank, DefaultDrugBankBaseURL, cfg.Sources.DrugBank.APIKey != "")
	applyProviderDefaults(&cfg.Sources.DisGeNET, DefaultDisGeNETBaseURL, true)

	// ── Seeder ────────────────────────────────────────────────────────────────
	if cfg.Seeder.Limit == 0 {
		cfg.Seeder.Limit = DefaultSeederLimit
	}
	if cfg.Seeder.CommitBatchSize == 0 {
		cfg.Seeder.CommitBatchSize = DefaultCommitBatchSize
	}
	if cfg.Seeder.Concurrency == 0 {
		cfg.Seeder.Concurrency = DefaultSeederConcurrent
	}
	if cfg.Seeder.PageSize == 0 {
		cfg.Seeder.PageSize = DefaultSeederPageSize
	}
	if len(cfg.Seeder.Sources) == 0 {
		cfg.Seeder.Sources = []string{"chembl", "disgenet"}
	}

	// ── Log ───────────────────────────────────────────────────────────────────
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if cfg.Log.Output == "" {
		cfg.Log.Output = "stdout"
	}
}

func applyProviderDefaults(p *ProviderConfig, baseURL string, enabledDefault bool) {
	if p.BaseURL == "" {
		p.BaseURL = baseURL
		// Only flip the enabled default for providers that were not configured
		// explicitly; a populated BaseURL means the operator touched this block.
		if !p.Enabled {
			p.Enabled = enabledDefault
		}
	}
	if p.MaxAttempts == 0 {
		p.MaxAttempts = DefaultMaxAttempts
	}
	if p.BaseRetryDelay == 0 {
		p.BaseRetryDelay = DefaultBaseRetryDelay
	}
	if p.PerAttemptTimeout == 0 {
		p.PerAttemptTimeout = DefaultPerAttemptTimeout
	}
	if p.MinCallInterval == 0 {
		p.MinCallInterval = DefaultMinCallInterval
	}
}
