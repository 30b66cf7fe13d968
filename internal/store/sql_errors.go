// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// isUniqueViolation reports whether err is a primary key or unique
// constraint violation raised by PostgreSQL (23505) or SQLite.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return false
}

// statementError maps a failed DML statement to a repository error.
func statementError(err error) error {
	if isUniqueViolation(err) {
		return fmt.Errorf("%w: %w", ErrAlreadyExists, err)
	}

	return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
}
