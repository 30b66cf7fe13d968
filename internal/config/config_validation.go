// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"path/filepath"

	"github.com/rs/zerolog"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.InterestRate < 0 {
		return fmt.Errorf("%w: negative interest rate %v", ErrInvalidAppConfigs, cfg.App.InterestRate)
	}

	if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	return cfg.Storage.validate()
}

func (s Storage) validate() error {
	switch s.Driver {
	case DriverFile:
		if s.Files.Accounts == "" || s.Files.Clients == "" {
			return fmt.Errorf("%w: file driver needs accounts and clients paths", ErrInvalidStorageConfigs)
		}
		// both tables rewrite their whole document, so they cannot share one
		if s.Files.Accounts != MemoryPath && filepath.Clean(s.Files.Accounts) == filepath.Clean(s.Files.Clients) {
			return fmt.Errorf("%w: accounts and clients share the file %s", ErrInvalidStorageConfigs, s.Files.Accounts)
		}
	case DriverSQLite, DriverPostgres:
		if s.DB.DSN == "" {
			return fmt.Errorf("%w: %s driver needs a DSN", ErrInvalidStorageConfigs, s.Driver)
		}
	default:
		return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, s.Driver)
	}

	return nil
}
