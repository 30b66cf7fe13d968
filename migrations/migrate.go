// Package migrations embeds the database schema and applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

// goose dialect names of the supported databases.
const (
	DialectSQLite   = "sqlite3"
	DialectPostgres = "postgres"
)

//go:embed *.sql
var embedMigrations embed.FS

// Migrate applies every pending migration to db using the goose dialect.
func Migrate(db *sql.DB, dialect string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
