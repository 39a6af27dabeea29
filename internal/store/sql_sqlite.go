package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-vocab-trainer/internal/config"
	"github.com/MKhiriev/go-vocab-trainer/internal/logger"
)

// NewConnectSQLite opens the SQLite file named by cfg.DSN, creating the file
// and its directory when missing, and pings it.
func NewConnectSQLite(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
	// db will be in file
	if err := createLocalDBFileIfNotExists(cfg.DSN); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error creating database file")
		return nil, fmt.Errorf("error creating database file: %w", err)
	}

	conn, err := sql.Open("sqlite3", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}
	// sqlite serialises writers anyway
	conn.SetMaxOpenConns(1)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Str("dsn", cfg.DSN).Msg("connected to database successfully")

	return &DB{DB: conn, logger: log}, nil
}

func createLocalDBFileIfNotExists(dbFile string) error {
	_, err := os.Stat(dbFile)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error checking DB file: %w", err)
	}

	if dir := filepath.Dir(dbFile); dir != "." {
		if err = os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("error creating DB directory: %w", err)
		}
	}

	f, err := os.OpenFile(dbFile, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return fmt.Errorf("error creating DB file: %w", err)
	}
	return f.Close()
}
