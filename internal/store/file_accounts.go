package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bank/internal/logger"
	"github.com/MKhiriev/go-bank/models"
)

// fileAccountRepository keeps [models.AccountState] records in a JSON document.
type fileAccountRepository struct {
	table  *jsonTable[models.AccountState]
	logger *logger.Logger
}

// NewFileAccountRepository opens (or starts) the accounts document at path.
// Use [config.MemoryPath] for a repository that never touches the disk.
func NewFileAccountRepository(path string, logger *logger.Logger) (AccountRepository, error) {
	logger.Debug().Str("path", path).Msg("creating file account repository")

	table, err := newJSONTable[models.AccountState](path)
	if err != nil {
		return nil, err
	}

	return &fileAccountRepository{
		table:  table,
		logger: logger,
	}, nil
}

func (r *fileAccountRepository) Insert(ctx context.Context, account models.Account) error {
	log := logger.FromContext(ctx)

	state := models.StateOf(account)
	if err := r.table.insert(state.Number, state); err != nil {
		log.Err(err).Str("func", "*fileAccountRepository.Insert").Str("number", state.Number).Msg("error inserting account")
		return err
	}

	return nil
}

func (r *fileAccountRepository) Find(ctx context.Context, number string) (models.Account, error) {
	state, ok := r.table.get(number)
	if !ok {
		return nil, nil
	}

	account, err := models.RestoreAccount(state)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*fileAccountRepository.Find").Str("number", number).Msg("error restoring account")
		return nil, fmt.Errorf("%w: %w", ErrCorruptedRecord, err)
	}

	return account, nil
}

func (r *fileAccountRepository) Exists(ctx context.Context, number string) (bool, error) {
	return r.table.has(number), nil
}

func (r *fileAccountRepository) Update(ctx context.Context, account models.Account) (bool, error) {
	state := models.StateOf(account)

	updated, err := r.table.update(state.Number, state)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*fileAccountRepository.Update").Str("number", state.Number).Msg("error updating account")
		return false, err
	}

	return updated, nil
}

func (r *fileAccountRepository) Remove(ctx context.Context, number string) (bool, error) {
	removed, err := r.table.delete(number)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*fileAccountRepository.Remove").Str("number", number).Msg("error removing account")
		return false, err
	}

	return removed, nil
}
