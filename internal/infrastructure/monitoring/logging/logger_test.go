package logging

import (
	"errors"
	"testing"
	"time"

	"github.com/pharmindex/repurpose/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func observedLogger(t *testing.T) (Logger, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zap.DebugLevel)
	return NewLoggerFromCore(core), logs
}

func TestFieldConstructors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Field{Key: "k", Value: "v"}, String("k", "v"))
	assert.Equal(t, Field{Key: "n", Value: 3}, Int("n", 3))
	assert.Equal(t, Field{Key: "d", Value: time.Second}, Duration("d", time.Second))
	assert.Equal(t, Field{Key: "error", Value: "<nil>"}, Err(nil))
	assert.Equal(t, Field{Key: "error", Value: "boom"}, Err(errors.New("boom")))
}

func TestZapLogger_EmitsFieldsAtAllLevels(t *testing.T) {
	t.Parallel()

	log, logs := observedLogger(t)

	log.Debug("dbg", String("a", "1"))
	log.Info("inf", Int("b", 2))
	log.Warn("wrn")
	log.Error("err", Err(errors.New("x")))

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, "dbg", entries[0].Message)
	assert.Equal(t, "1", entries[0].ContextMap()["a"])
	assert.Equal(t, int64(2), entries[1].ContextMap()["b"])
	assert.Equal(t, "x", entries[3].ContextMap()["error"])
}

func TestWith_ChildCarriesFieldsParentUnchanged(t *testing.T) {
	t.Parallel()

	log, logs := observedLogger(t)

	child := log.With(String("source", "pubchem"))
	child.Info("call")
	log.Info("plain")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "pubchem", entries[0].ContextMap()["source"])
	assert.NotContains(t, entries[1].ContextMap(), "source")
}

func TestNamed_AppendsLoggerName(t *testing.T) {
	t.Parallel()

	log, logs := observedLogger(t)
	log.Named("seeder").Info("start")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "seeder", entries[0].LoggerName)
}

func TestFromAppConfig_BuildsForBothFormats(t *testing.T) {
	t.Parallel()

	for _, format := range []string{"json", "text"} {
		log, err := FromAppConfig(config.LogConfig{Level: "debug", Format: format, Output: "stdout"})
		require.NoError(t, err, format)
		require.NotNil(t, log, format)
	}
}

func TestNopLogger_DoesNothing(t *testing.T) {
	t.Parallel()

	log := NewNopLogger()
	assert.NotPanics(t, func() {
		log.Debug("a")
		log.Info("b", String("k", "v"))
		log.With(Int("n", 1)).Named("x").Error("c")
	})
}

func TestSetDefault_IgnoresNilAndReplaces(t *testing.T) {
	orig := Default()
	defer SetDefault(orig)

	SetDefault(nil)
	assert.Equal(t, orig, Default())

	replacement := NewNopLogger()
	SetDefault(replacement)
	assert.Equal(t, replacement, Default())
}
