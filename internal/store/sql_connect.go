package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-bank/internal/config"
	"github.com/MKhiriev/go-bank/internal/logger"
)

// NewConnectSQLite opens the SQLite database at cfg.DSN, creating its
// directory when needed. config.MemoryPath opens a private in-memory database.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if cfg.DSN != config.MemoryPath {
		if err := os.MkdirAll(filepath.Dir(cfg.DSN), 0o750); err != nil {
			log.Err(err).Str("func", "NewConnectSQLite").Str("dsn", cfg.DSN).Msg("error creating database directory")
			return nil, fmt.Errorf("error creating database directory: %w", err)
		}
	}

	// one connection serializes writers and keeps a :memory: database shared
	return connect(ctx, "sqlite3", config.DriverSQLite, cfg.DSN, log, func(conn *sql.DB) {
		conn.SetMaxOpenConns(1)
	})
}

func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	return connect(ctx, "pgx", config.DriverPostgres, cfg.DSN, log, func(conn *sql.DB) {
		conn.SetMaxOpenConns(10)
		conn.SetMaxIdleConns(4)
	})
}

// connect opens a pool with the database/sql driverName, applies tune and
// pings the database before handing the pool out.
func connect(ctx context.Context, driverName, driver, dsn string, log *logger.Logger, tune func(*sql.DB)) (*DB, error) {
	l := log.With().Str("func", "store.connect").Str("driver", driver).Logger()

	conn, err := sql.Open(driverName, dsn)
	if err != nil {
		l.Err(err).Msg("error opening database")
		return nil, fmt.Errorf("error opening %s database: %w", driver, err)
	}

	tune(conn)

	if err = conn.PingContext(ctx); err != nil {
		l.Err(err).Msg("error connecting database (ping)")
		conn.Close()
		return nil, fmt.Errorf("error connecting %s database: %w", driver, err)
	}
	l.Debug().Msg("connected to database successfully")

	return newDB(conn, driver, log), nil
}
