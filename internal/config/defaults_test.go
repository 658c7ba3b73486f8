package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApplyDefaults_FillsZeroValues(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	ApplyDefaults(cfg)

	assert.Equal(t, DefaultServerPort, cfg.Server.Port)
	assert.Equal(t, DefaultServerMode, cfg.Server.Mode)
	assert.Equal(t, DefaultDBHost, cfg.Database.Host)
	assert.Equal(t, DefaultDBName, cfg.Database.DBName)
	assert.Equal(t, DefaultRedisAddr, cfg.Redis.Addr)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Equal(t, DefaultLogFormat, cfg.Log.Format)
	assert.Equal(t, DefaultCommitBatchSize, cfg.Seeder.CommitBatchSize)
	assert.Equal(t, []string{"chembl", "disgenet"}, cfg.Seeder.Sources)
}

func TestApplyDefaults_ProviderRetryDefaults(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	ApplyDefaults(cfg)

	for name, p := range map[string]ProviderConfig{
		"pubchem": cfg.Sources.PubChem,
		"chembl":  cfg.Sources.ChEMBL,
		"rxnorm":  cfg.Sources.RxNorm,
	} {
		assert.Equal(t, DefaultMaxAttempts, p.MaxAttempts, name)
		assert.Equal(t, 1*time.Second, p.BaseRetryDelay, name)
		assert.Equal(t, 5*time.Second, p.PerAttemptTimeout, name)
		assert.Equal(t, 200*time.Millisecond, p.MinCallInterval, name)
		assert.True(t, p.Enabled, name)
	}
}

func TestApplyDefaults_DrugBankDisabledWithoutKey(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	ApplyDefaults(cfg)
	assert.False(t, cfg.Sources.DrugBank.Enabled,
		"drugbank must stay disabled when no API key is configured")

	withKey := &Config{}
	withKey.Sources.DrugBank.APIKey = "secret"
	ApplyDefaults(withKey)
	assert.True(t, withKey.Sources.DrugBank.Enabled)
}

func TestApplyDefaults_DoesNotOverrideExplicitValues(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	cfg.Server.Port = 9090
	cfg.Database.Host = "db.internal"
	cfg.Sources.PubChem.MaxAttempts = 2
	ApplyDefaults(cfg)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 2, cfg.Sources.PubChem.MaxAttempts)
}

func TestApplyDefaults_NilConfigIsNoop(t *testing.T) {
	t.Parallel()

	assert.NotPanics(t, func() { ApplyDefaults(nil) })
}
