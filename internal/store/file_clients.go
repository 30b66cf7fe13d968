package store

import (
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-bank/internal/logger"
	"github.com/MKhiriev/go-bank/models"
)

// fileClientRepository keeps [models.ClientState] records in a JSON document.
type fileClientRepository struct {
	table  *jsonTable[models.ClientState]
	logger *logger.Logger
}

// NewFileClientRepository opens (or starts) the clients document at path.
// Use [config.MemoryPath] for a repository that never touches the disk.
func NewFileClientRepository(path string, logger *logger.Logger) (ClientRepository, error) {
	logger.Debug().Str("path", path).Msg("creating file client repository")

	table, err := newJSONTable[models.ClientState](path)
	if err != nil {
		return nil, err
	}

	return &fileClientRepository{
		table:  table,
		logger: logger,
	}, nil
}

func (r *fileClientRepository) Insert(ctx context.Context, client *models.Client) error {
	state := client.State()
	if owner := r.findOwnerCPF(state.CPF, state.Accounts...); owner != "" {
		return fmt.Errorf("%w: account already linked to client %s", ErrAlreadyExists, owner)
	}

	if err := r.table.insert(state.CPF, state); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*fileClientRepository.Insert").Str("cpf", state.CPF).Msg("error inserting client")
		return err
	}

	return nil
}

func (r *fileClientRepository) Find(ctx context.Context, cpf string) (*models.Client, error) {
	state, ok := r.table.get(cpf)
	if !ok {
		return nil, nil
	}

	return models.RestoreClient(state), nil
}

func (r *fileClientRepository) FindOwner(ctx context.Context, accountNumber string) (*models.Client, error) {
	cpf := r.findOwnerCPF("", accountNumber)
	if cpf == "" {
		return nil, nil
	}

	return r.Find(ctx, cpf)
}

func (r *fileClientRepository) Update(ctx context.Context, client *models.Client) (bool, error) {
	state := client.State()
	if owner := r.findOwnerCPF(state.CPF, state.Accounts...); owner != "" {
		return false, fmt.Errorf("%w: account already linked to client %s", ErrAlreadyExists, owner)
	}

	updated, err := r.table.update(state.CPF, state)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*fileClientRepository.Update").Str("cpf", state.CPF).Msg("error updating client")
		return false, err
	}

	return updated, nil
}

func (r *fileClientRepository) Remove(ctx context.Context, cpf string) (bool, error) {
	removed, err := r.table.delete(cpf)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*fileClientRepository.Remove").Str("cpf", cpf).Msg("error removing client")
		return false, err
	}

	return removed, nil
}

// findOwnerCPF returns the CPF of the first client (in CPF order) other than
// except holding any of numbers, or "".
func (r *fileClientRepository) findOwnerCPF(except string, numbers ...string) string {
	for _, cpf := range r.table.keys() {
		if cpf == except {
			continue
		}
		state, ok := r.table.get(cpf)
		if !ok {
			continue
		}
		for _, number := range numbers {
			if slices.Contains(state.Accounts, number) {
				return cpf
			}
		}
	}

	return ""
}
