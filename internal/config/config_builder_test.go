package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, data, 0o600))
	return p
}

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that non-zero fields of a later config
// override earlier ones while zero fields keep earlier values.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "localhost:1", RequestTimeout: time.Second}},
		&StructuredConfig{Adapter: Adapter{HTTPAddress: "localhost:2"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "localhost:2", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
}

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	setEnvVars(t, map[string]string{"APP_SECRET_KEY": "env-secret"})

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-secret", b.configs[0].App.SecretKey)
}

func TestWithFlags_SetsErrorOnBadFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-unknown"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON_NoOpWhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()
	require.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_UsesLastPath(t *testing.T) {
	first := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"secret_key": "first"}})
	second := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"secret_key": "second"}})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: first}, &StructuredConfig{JSONFilePath: second})

	b.withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "second", b.configs[2].App.SecretKey)
}

func TestWithJSON_SetsErrorWhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "nope.json")})

	b.withJSON()
	assert.Error(t, b.err)
}

func TestNewClientConfig_AppliesDefaults(t *testing.T) {
	cfg, err := newClientConfig(&StructuredConfig{
		App:     App{SecretKey: "k"},
		Storage: Storage{DB: DB{DSN: "vocab.db"}},
		Adapter: Adapter{HTTPAddress: "localhost:8000"},
	})
	require.NoError(t, err)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultQuizAdvanceDelay, cfg.App.QuizAdvanceDelay)
}

func TestNewClientConfig_Validation(t *testing.T) {
	valid := StructuredConfig{
		App:     App{SecretKey: "k"},
		Storage: Storage{DB: DB{DSN: "vocab.db"}},
		Adapter: Adapter{HTTPAddress: "localhost:8000"},
	}

	tests := []struct {
		name    string
		mutate  func(c *StructuredConfig)
		wantErr error
	}{
		{name: "empty dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, wantErr: ErrInvalidStorageConfigs},
		{name: "memory dsn", mutate: func(c *StructuredConfig) { c.Storage.DB.DSN = ":memory:" }, wantErr: ErrInvalidStorageConfigs},
		{name: "no address", mutate: func(c *StructuredConfig) { c.Adapter.HTTPAddress = "" }, wantErr: ErrInvalidAdapterConfigs},
		{name: "negative timeout", mutate: func(c *StructuredConfig) { c.Adapter.RequestTimeout = -time.Second }, wantErr: ErrInvalidAdapterConfigs},
		{name: "no secret", mutate: func(c *StructuredConfig) { c.App.SecretKey = "" }, wantErr: ErrInvalidAppConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			_, err := newClientConfig(&cfg)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewServerConfig(t *testing.T) {
	cfg, err := newServerConfig(&StructuredConfig{Server: Server{Username: "u", Password: "p"}})
	require.NoError(t, err)
	assert.Equal(t, DefaultServerAddress, cfg.HTTPAddress)

	_, err = newServerConfig(&StructuredConfig{})
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
}
