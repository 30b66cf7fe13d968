package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bank/internal/config"
	"github.com/MKhiriev/go-bank/internal/logger"
)

// Storages groups the two repositories the bank works with, built for the
// configured driver.
type Storages struct {
	Accounts AccountRepository
	Clients  ClientRepository

	db *DB
}

// NewStorages initialises the storage layer for cfg.Driver:
//   - file: two JSON documents at cfg.Files.Accounts and cfg.Files.Clients;
//   - sqlite, postgres: opens cfg.DB.DSN and applies the migrations.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("driver", cfg.Driver).Msg("creating new storages...")

	switch cfg.Driver {
	case config.DriverFile:
		return newFileStorages(cfg.Files, logger)
	case config.DriverSQLite:
		db, err := NewConnectSQLite(ctx, cfg.DB, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		return newSQLStorages(db, logger)
	case config.DriverPostgres:
		db, err := NewConnectPostgres(ctx, cfg.DB, logger)
		if err != nil {
			return nil, fmt.Errorf("postgres connection error: %w", err)
		}
		return newSQLStorages(db, logger)
	default:
		return nil, fmt.Errorf("%w: unknown driver %q", config.ErrInvalidStorageConfigs, cfg.Driver)
	}
}

func newFileStorages(cfg config.Files, logger *logger.Logger) (*Storages, error) {
	accounts, err := NewFileAccountRepository(cfg.Accounts, logger)
	if err != nil {
		return nil, fmt.Errorf("error opening accounts file: %w", err)
	}

	clients, err := NewFileClientRepository(cfg.Clients, logger)
	if err != nil {
		return nil, fmt.Errorf("error opening clients file: %w", err)
	}

	return &Storages{
		Accounts: accounts,
		Clients:  clients,
	}, nil
}

func newSQLStorages(db *DB, logger *logger.Logger) (*Storages, error) {
	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		Accounts: NewAccountRepository(db, logger),
		Clients:  NewClientRepository(db, logger),
		db:       db,
	}, nil
}

// Close releases the database connection of the SQL drivers.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
