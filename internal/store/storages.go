package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vocab-trainer/internal/config"
	"github.com/MKhiriev/go-vocab-trainer/internal/crypto"
	"github.com/MKhiriev/go-vocab-trainer/internal/logger"
)

// ClientStorages groups the client-side storages handed to the service layer.
type ClientStorages struct {
	// Credentials keeps the session token and user id between launches.
	Credentials CredentialStore

	db *DB
}

// NewClientStorages opens the SQLite file from cfg, runs migrations and wires
// a sealed [CredentialStore] keyed by secretKey.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, secretKey string, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	sealer, err := crypto.NewSealer(secretKey)
	if err != nil {
		return nil, fmt.Errorf("credential sealer: %w", err)
	}

	db, err := NewConnectSQLite(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		Credentials: NewSQLiteCredentialStore(db, sealer, logger),
		db:          db,
	}, nil
}

// Close releases the underlying database handle.
func (s *ClientStorages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
