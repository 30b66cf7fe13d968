package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bank/internal/logger"
	"github.com/MKhiriev/go-bank/models"
)

// accountRepository is the SQL-backed implementation of [AccountRepository].
// It handles the "accounts" table for both the sqlite and postgres drivers.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, operation-level tracing of database interactions.
type accountRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAccountRepository constructs an [AccountRepository] backed by the
// provided database connection and logger.
func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// Insert stores a new account row.
//
// Error handling:
//   - unique violation on the primary key → [ErrAlreadyExists].
//   - any other driver-level error → [ErrExecutingStatement].
func (r *accountRepository) Insert(ctx context.Context, account models.Account) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAccountQuery(r.db.builder, models.StateOf(account))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*accountRepository.Insert").Str("number", account.Number()).Msg("error inserting account")
		return statementError(err)
	}

	return nil
}

// Find loads the account with the given number. A missing row is not an
// error: nil, nil is returned.
func (r *accountRepository) Find(ctx context.Context, number string) (models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAccountQuery(r.db.builder, number)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		state models.AccountState
		kind  string
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&state.Number, &kind, &state.Balance, &state.Bonus)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.Find").Str("number", number).Msg("error scanning account row")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	state.Kind = models.AccountKind(kind)
	account, err := models.RestoreAccount(state)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.Find").Str("number", number).Msg("error restoring account")
		return nil, fmt.Errorf("%w: %w", ErrCorruptedRecord, err)
	}

	return account, nil
}

func (r *accountRepository) Exists(ctx context.Context, number string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildAccountExistsQuery(r.db.builder, number)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		log.Err(err).Str("func", "*accountRepository.Exists").Str("number", number).Msg("error counting accounts")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count > 0, nil
}

// Update overwrites kind, balance and bonus. Reports false when no row matched.
func (r *accountRepository) Update(ctx context.Context, account models.Account) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateAccountQuery(r.db.builder, models.StateOf(account))
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.Update").Str("number", account.Number()).Msg("error updating account")
		return false, statementError(err)
	}

	return affected(res)
}

func (r *accountRepository) Remove(ctx context.Context, number string) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAccountQuery(r.db.builder, number)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.Remove").Str("number", number).Msg("error removing account")
		return false, statementError(err)
	}

	return affected(res)
}

// affected reports whether res touched at least one row.
func affected(res sql.Result) (bool, error) {
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return n > 0, nil
}
