package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bank/internal/logger"
	"github.com/MKhiriev/go-bank/models"
)

// clientRepository is the SQL-backed implementation of [ClientRepository].
// A client is a row in "clients" plus its ordered rows in "client_accounts";
// writes touching both tables run in one transaction.
type clientRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewClientRepository constructs a [ClientRepository] backed by the
// provided database connection and logger.
func NewClientRepository(db *DB, logger *logger.Logger) ClientRepository {
	logger.Debug().Msg("creating client repository")
	return &clientRepository{
		db:     db,
		logger: logger,
	}
}

// Insert stores the client and its account links.
//
// Error handling:
//   - unique violation (CPF taken, or an account linked to another client) → [ErrAlreadyExists].
//   - any other driver-level error → [ErrExecutingStatement].
func (r *clientRepository) Insert(ctx context.Context, client *models.Client) error {
	log := logger.FromContext(ctx)
	state := client.State()

	query, args, err := buildInsertClientQuery(r.db.builder, state)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*clientRepository.Insert").Msg("error beginning transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*clientRepository.Insert").Str("cpf", state.CPF).Msg("error inserting client")
		return statementError(err)
	}

	if err = r.linkAccounts(ctx, tx, state); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*clientRepository.Insert").Str("cpf", state.CPF).Msg("error committing transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// Find loads the client and its account numbers ordered by position.
// A missing client is not an error: nil, nil is returned.
func (r *clientRepository) Find(ctx context.Context, cpf string) (*models.Client, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectClientQuery(r.db.builder, cpf)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var state models.ClientState
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&state.CPF, &state.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*clientRepository.Find").Str("cpf", cpf).Msg("error scanning client row")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	state.Accounts, err = r.accountNumbers(ctx, cpf)
	if err != nil {
		return nil, err
	}

	return models.RestoreClient(state), nil
}

// FindOwner returns the client linked to accountNumber, or nil, nil.
func (r *clientRepository) FindOwner(ctx context.Context, accountNumber string) (*models.Client, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAccountOwnerQuery(r.db.builder, accountNumber)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var cpf string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&cpf)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*clientRepository.FindOwner").Str("number", accountNumber).Msg("error scanning owner row")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return r.Find(ctx, cpf)
}

// Update overwrites the client name and replaces its account links.
// Reports false (and changes nothing) when the CPF is unknown.
func (r *clientRepository) Update(ctx context.Context, client *models.Client) (bool, error) {
	log := logger.FromContext(ctx)
	state := client.State()

	query, args, err := buildUpdateClientQuery(r.db.builder, state)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*clientRepository.Update").Msg("error beginning transaction")
		return false, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*clientRepository.Update").Str("cpf", state.CPF).Msg("error updating client")
		return false, statementError(err)
	}

	updated, err := affected(res)
	if err != nil || !updated {
		return false, err
	}

	if err = r.unlinkAccounts(ctx, tx, state.CPF); err != nil {
		return false, err
	}
	if err = r.linkAccounts(ctx, tx, state); err != nil {
		return false, err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*clientRepository.Update").Str("cpf", state.CPF).Msg("error committing transaction")
		return false, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return true, nil
}

// Remove deletes the client and its account links.
// Reports false (and changes nothing) when the CPF is unknown.
func (r *clientRepository) Remove(ctx context.Context, cpf string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteClientQuery(r.db.builder, cpf)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*clientRepository.Remove").Msg("error beginning transaction")
		return false, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = r.unlinkAccounts(ctx, tx, cpf); err != nil {
		return false, err
	}

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*clientRepository.Remove").Str("cpf", cpf).Msg("error removing client")
		return false, statementError(err)
	}

	removed, err := affected(res)
	if err != nil || !removed {
		return false, err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*clientRepository.Remove").Str("cpf", cpf).Msg("error committing transaction")
		return false, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return true, nil
}

func (r *clientRepository) accountNumbers(ctx context.Context, cpf string) ([]string, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectClientAccountsQuery(r.db.builder, cpf)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*clientRepository.accountNumbers").Str("cpf", cpf).Msg("error querying client accounts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var numbers []string
	for rows.Next() {
		var number string
		if err = rows.Scan(&number); err != nil {
			log.Err(err).Str("func", "*clientRepository.accountNumbers").Str("cpf", cpf).Msg("error scanning client account row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		numbers = append(numbers, number)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*clientRepository.accountNumbers").Str("cpf", cpf).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return numbers, nil
}

func (r *clientRepository) linkAccounts(ctx context.Context, tx *sql.Tx, state models.ClientState) error {
	if len(state.Accounts) == 0 {
		return nil
	}

	query, args, err := buildInsertClientAccountsQuery(r.db.builder, state.CPF, state.Accounts)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*clientRepository.linkAccounts").Str("cpf", state.CPF).Msg("error linking accounts")
		return statementError(err)
	}

	return nil
}

func (r *clientRepository) unlinkAccounts(ctx context.Context, tx *sql.Tx, cpf string) error {
	query, args, err := buildDeleteClientAccountsQuery(r.db.builder, cpf)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*clientRepository.unlinkAccounts").Str("cpf", cpf).Msg("error unlinking accounts")
		return statementError(err)
	}

	return nil
}
