// Package migrations embeds the schema of the device-local credential store.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

var errNilDB = errors.New("db is nil")

// Migrate applies all pending migrations to the SQLite database.
func Migrate(db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
