package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-bank/internal/config"
	"github.com/MKhiriev/go-bank/internal/logger"
	"github.com/MKhiriev/go-bank/internal/store"
)

var (
	defaultMu      sync.Mutex
	defaultBank    Bank
	defaultStorage = config.DefaultStorage()
)

// Default returns the process-wide Bank, building it on first use over the
// default file repositories. Construction failures wrap
// [ErrSystemInitialization] and leave no instance behind.
func Default() (Bank, error) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if defaultBank != nil {
		return defaultBank, nil
	}

	storages, err := store.NewStorages(context.Background(), defaultStorage, logger.Nop())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSystemInitialization, err)
	}

	defaultBank = NewBank(storages, config.Default().App, logger.Nop())
	return defaultBank, nil
}

// ResetDefault drops the process-wide Bank so the next [Default] builds a
// fresh one. Meant for tests.
func ResetDefault() {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	defaultBank = nil
}
