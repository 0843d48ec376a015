package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pokkit-datagen/internal/audit"
	"pokkit-datagen/internal/pipeline"
	"pokkit-datagen/internal/validator"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	opts := cfg.Options()
	assert.Equal(t, validator.Strict, opts.Mode)
	assert.EqualValues(t, pipeline.DefaultEvalSeedOffset, opts.EvalSeedOffset)
	assert.Equal(t, pipeline.DefaultAttemptFactor, opts.AttemptFactor)
	assert.Equal(t, audit.DefaultMaxWords, cfg.Audit.Rules().MaxWords)
}

func TestLoadFromFile_OverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
generation:
  count: 200
  seed: 7
  eval_count: 20
  strict: false
llm:
  model: test-model
  retry:
    max_retries: 5
    initial_delay: 0.5
audit:
  banned_phrases: ["ribbit"]
log:
  level: debug
`)
	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 200, cfg.Generation.Count)
	assert.EqualValues(t, 7, cfg.Generation.Seed)
	assert.Equal(t, 20, cfg.Generation.EvalCount)
	assert.Equal(t, validator.Permissive, cfg.Options().Mode)
	assert.Equal(t, pipeline.DefaultWarnCap, cfg.Generation.WarnCap)

	assert.Equal(t, "test-model", cfg.LLM.Model)
	assert.Equal(t, 4, cfg.LLM.Concurrency)
	rc := cfg.LLM.Retry.Retry()
	assert.True(t, rc.Enabled)
	assert.Equal(t, 5, rc.MaxRetries)
	assert.Equal(t, 500*time.Millisecond, rc.InitialDelay)
	assert.Equal(t, time.Minute, rc.MaxDelay)

	assert.Equal(t, []string{"ribbit"}, cfg.Audit.BannedPhrases)
	assert.Equal(t, audit.DefaultMaxWords, cfg.Audit.MaxWords)

	lvl, err := ParseLevel(cfg.Log.Level)
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestLoadFromFile_Invalid(t *testing.T) {
	_, err := LoadFromFile(writeConfig(t, "generation:\n  attempt_factor: 0\n"))
	assert.ErrorContains(t, err, "attempt_factor")

	_, err = LoadFromFile(writeConfig(t, "log:\n  level: loud\n"))
	assert.ErrorContains(t, err, "log.level")

	_, err = LoadFromFile(writeConfig(t, "generation: [1, 2"))
	assert.Error(t, err)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, 5000, cfg.Generation.Count)
}

func TestAPIKey(t *testing.T) {
	t.Setenv(APIKeyEnv, "sk-env")
	cfg := DefaultConfig()
	assert.Equal(t, "sk-env", cfg.APIKey())

	cfg.LLM.APIKey = "sk-file"
	assert.Equal(t, "sk-file", cfg.APIKey())
}

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)

	lvl, err = ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)
}
