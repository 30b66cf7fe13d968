package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-bank/internal/config"
	"github.com/MKhiriev/go-bank/internal/logger"
	"github.com/MKhiriev/go-bank/migrations"
)

// DB is an open SQL connection pool together with the dialect settings the
// repositories need to build queries for it.
type DB struct {
	*sql.DB
	driver  string
	builder sq.StatementBuilderType
	logger  *logger.Logger
}

func newDB(conn *sql.DB, driver string, logger *logger.Logger) *DB {
	return &DB{
		DB:      conn,
		driver:  driver,
		builder: newStatementBuilder(driver),
		logger:  logger,
	}
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	dialect := migrations.DialectSQLite
	if db.driver == config.DriverPostgres {
		dialect = migrations.DialectPostgres
	}

	return migrations.Migrate(db.DB, dialect)
}
