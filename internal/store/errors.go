package store

import (
	"errors"
	"fmt"
)

// ErrRepository is the root of every error returned by the repositories for
// storage faults. Callers should use [errors.Is] to match against it.
var ErrRepository = errors.New("repository error")

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. All of them match [ErrRepository] as well.
var (
	// ErrAlreadyExists is returned by Insert when the key (account number or
	// CPF) is already stored, or when an account number is already linked to
	// another client.
	ErrAlreadyExists = fmt.Errorf("%w: record already exists", ErrRepository)

	// ErrCorruptedRecord is returned when a stored record cannot be turned
	// back into an entity (for example an unknown account kind).
	ErrCorruptedRecord = fmt.Errorf("%w: corrupted record", ErrRepository)
)

// Low-level storage operation errors. These are returned (wrapped) by
// repository methods when an operation fails before any domain logic can be
// applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = fmt.Errorf("%w: error building sql query", ErrRepository)

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = fmt.Errorf("%w: error executing sql query", ErrRepository)

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = fmt.Errorf("%w: failed to execute statement", ErrRepository)

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = fmt.Errorf("%w: failed to begin transaction", ErrRepository)

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = fmt.Errorf("%w: failed to commit transaction", ErrRepository)

	// ErrScanningRow is returned when scanning column values from a result row fails.
	ErrScanningRow = fmt.Errorf("%w: failed to scan row", ErrRepository)

	// ErrPersistingFile is returned when a file repository cannot write its document.
	ErrPersistingFile = fmt.Errorf("%w: failed to persist file", ErrRepository)

	// ErrLoadingFile is returned when a file repository cannot read or decode its document.
	ErrLoadingFile = fmt.Errorf("%w: failed to load file", ErrRepository)
)
