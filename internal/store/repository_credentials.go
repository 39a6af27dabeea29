package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-vocab-trainer/internal/crypto"
	"github.com/MKhiriev/go-vocab-trainer/internal/logger"
)

type sqliteCredentialStore struct {
	db     *DB
	sealer crypto.Sealer
	logger *logger.Logger
	now    func() time.Time
}

// NewSQLiteCredentialStore returns a [CredentialStore] that keeps every value
// sealed in the secure_store table.
func NewSQLiteCredentialStore(db *DB, sealer crypto.Sealer, logger *logger.Logger) CredentialStore {
	return &sqliteCredentialStore{
		db:     db,
		sealer: sealer,
		logger: logger,
		now:    time.Now,
	}
}

func (s *sqliteCredentialStore) Get(ctx context.Context, key string) (string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetValueQuery(key)
	if err != nil {
		return "", err
	}

	var sealed string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&sealed)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "sqliteCredentialStore.Get").
			Str("key", key).
			Msg("failed to read credential")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	value, err := s.sealer.Open(sealed)
	if err != nil {
		log.Err(err).
			Str("func", "sqliteCredentialStore.Get").
			Str("key", key).
			Msg("failed to open sealed credential")
		return "", fmt.Errorf("%w: %w", ErrSealing, err)
	}

	return value, nil
}

func (s *sqliteCredentialStore) Set(ctx context.Context, key, value string) error {
	log := logger.FromContext(ctx)

	sealed, err := s.sealer.Seal(value)
	if err != nil {
		log.Err(err).
			Str("func", "sqliteCredentialStore.Set").
			Str("key", key).
			Msg("failed to seal credential")
		return fmt.Errorf("%w: %w", ErrSealing, err)
	}

	query, args, err := buildUpsertValueQuery(key, sealed, s.now())
	if err != nil {
		return err
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sqliteCredentialStore.Set").
			Str("key", key).
			Msg("failed to upsert credential")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (s *sqliteCredentialStore) Delete(ctx context.Context, key string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteValueQuery(key)
	if err != nil {
		return err
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "sqliteCredentialStore.Delete").
			Str("key", key).
			Msg("failed to delete credential")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
