package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-vocab-trainer/internal/config"
	"github.com/MKhiriev/go-vocab-trainer/internal/crypto"
	"github.com/MKhiriev/go-vocab-trainer/internal/logger"
)

func TestNewClientStorages_SurvivesRestart(t *testing.T) {
	ctx := context.Background()
	cfg := config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "nested", "client.db")}}

	first, err := NewClientStorages(ctx, cfg, "secret", logger.Nop())
	require.NoError(t, err)
	require.NoError(t, first.Credentials.Set(ctx, "api-token", "9944b091"))
	require.NoError(t, first.Credentials.Set(ctx, "user-id", "1"))
	require.NoError(t, first.Credentials.Set(ctx, "user-id", "7"))
	require.NoError(t, first.Close())

	second, err := NewClientStorages(ctx, cfg, "secret", logger.Nop())
	require.NoError(t, err)
	defer second.Close()

	token, err := second.Credentials.Get(ctx, "api-token")
	require.NoError(t, err)
	assert.Equal(t, "9944b091", token)

	id, err := second.Credentials.Get(ctx, "user-id")
	require.NoError(t, err)
	assert.Equal(t, "7", id)

	require.NoError(t, second.Credentials.Delete(ctx, "api-token"))
	_, err = second.Credentials.Get(ctx, "api-token")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestNewClientStorages_ValuesAreSealedOnDisk(t *testing.T) {
	ctx := context.Background()
	cfg := config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "client.db")}}

	s, err := NewClientStorages(ctx, cfg, "secret", logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Credentials.Set(ctx, "api-token", "plain-token"))

	var raw string
	require.NoError(t, s.db.QueryRowContext(ctx, "SELECT value FROM secure_store WHERE name = ?", "api-token").Scan(&raw))
	assert.NotContains(t, raw, "plain-token")
}

func TestNewClientStorages_WrongSecret(t *testing.T) {
	ctx := context.Background()
	cfg := config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "client.db")}}

	s, err := NewClientStorages(ctx, cfg, "secret", logger.Nop())
	require.NoError(t, err)
	require.NoError(t, s.Credentials.Set(ctx, "api-token", "t"))
	require.NoError(t, s.Close())

	other, err := NewClientStorages(ctx, cfg, "another", logger.Nop())
	require.NoError(t, err)
	defer other.Close()

	_, err = other.Credentials.Get(ctx, "api-token")
	assert.ErrorIs(t, err, ErrSealing)
	assert.ErrorIs(t, err, crypto.ErrOpenFailed)
}

func TestNewClientStorages_EmptySecret(t *testing.T) {
	cfg := config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "client.db")}}

	_, err := NewClientStorages(context.Background(), cfg, "", logger.Nop())
	assert.ErrorIs(t, err, crypto.ErrEmptySecret)
}
