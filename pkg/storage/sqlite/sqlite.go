// Package sqlite implements storage.Storage on a single sqlite database
// file. Queries go through go-jet statements against the generated schema
// model; schema changes ship as embedded golang-migrate migrations.
package sqlite

import (
	"context"
	"database/sql"

	"github.com/dvrz/dvrz/pkg/storage"

	_ "github.com/mattn/go-sqlite3"
)

type SQLite struct {
	db *sql.DB
}

// New opens (or creates) the sqlite database at filePath. Call Init before
// first use to apply pending migrations.
func New(filePath string) (storage.Storage, error) {
	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, err
	}

	return &SQLite{
		db: db,
	}, nil
}

// Init applies pending schema migrations.
func (s *SQLite) Init(ctx context.Context) error {
	return runMigrations(s.db)
}
