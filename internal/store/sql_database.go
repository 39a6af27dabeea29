package store

import (
	"database/sql"

	"github.com/MKhiriev/go-vocab-trainer/internal/logger"
	"github.com/MKhiriev/go-vocab-trainer/migrations"
)

// DB is an open SQLite handle with the logger it was opened with.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate brings the schema up to date.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
