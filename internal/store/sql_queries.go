// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-bank/internal/config"
	"github.com/MKhiriev/go-bank/models"
)

const (
	accountsTable       = "accounts"
	clientsTable        = "clients"
	clientAccountsTable = "client_accounts"
)

var accountColumns = []string{"number", "kind", "balance", "bonus"}

// newStatementBuilder returns a squirrel builder with the placeholder format
// of the driver: $1 for postgres, ? for sqlite.
func newStatementBuilder(driver string) sq.StatementBuilderType {
	if driver == config.DriverPostgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// ── accounts ──────────────────────────────────────────────────────────────────

func buildInsertAccountQuery(b sq.StatementBuilderType, state models.AccountState) (string, []any, error) {
	return b.Insert(accountsTable).
		Columns(accountColumns...).
		Values(state.Number, string(state.Kind), state.Balance, state.Bonus).
		ToSql()
}

func buildSelectAccountQuery(b sq.StatementBuilderType, number string) (string, []any, error) {
	return b.Select(accountColumns...).
		From(accountsTable).
		Where(sq.Eq{"number": number}).
		ToSql()
}

func buildAccountExistsQuery(b sq.StatementBuilderType, number string) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(accountsTable).
		Where(sq.Eq{"number": number}).
		ToSql()
}

func buildUpdateAccountQuery(b sq.StatementBuilderType, state models.AccountState) (string, []any, error) {
	return b.Update(accountsTable).
		Set("kind", string(state.Kind)).
		Set("balance", state.Balance).
		Set("bonus", state.Bonus).
		Where(sq.Eq{"number": state.Number}).
		ToSql()
}

func buildDeleteAccountQuery(b sq.StatementBuilderType, number string) (string, []any, error) {
	return b.Delete(accountsTable).
		Where(sq.Eq{"number": number}).
		ToSql()
}

// ── clients ───────────────────────────────────────────────────────────────────

func buildInsertClientQuery(b sq.StatementBuilderType, state models.ClientState) (string, []any, error) {
	return b.Insert(clientsTable).
		Columns("cpf", "name").
		Values(state.CPF, state.Name).
		ToSql()
}

func buildSelectClientQuery(b sq.StatementBuilderType, cpf string) (string, []any, error) {
	return b.Select("cpf", "name").
		From(clientsTable).
		Where(sq.Eq{"cpf": cpf}).
		ToSql()
}

func buildUpdateClientQuery(b sq.StatementBuilderType, state models.ClientState) (string, []any, error) {
	return b.Update(clientsTable).
		Set("name", state.Name).
		Where(sq.Eq{"cpf": state.CPF}).
		ToSql()
}

func buildDeleteClientQuery(b sq.StatementBuilderType, cpf string) (string, []any, error) {
	return b.Delete(clientsTable).
		Where(sq.Eq{"cpf": cpf}).
		ToSql()
}

// ── client accounts ───────────────────────────────────────────────────────────

// buildInsertClientAccountsQuery links numbers to cpf, keeping their order
// in the position column. numbers must not be empty.
func buildInsertClientAccountsQuery(b sq.StatementBuilderType, cpf string, numbers []string) (string, []any, error) {
	insert := b.Insert(clientAccountsTable).
		Columns("cpf", "account_number", "position")
	for i, number := range numbers {
		insert = insert.Values(cpf, number, i)
	}

	return insert.ToSql()
}

func buildSelectClientAccountsQuery(b sq.StatementBuilderType, cpf string) (string, []any, error) {
	return b.Select("account_number").
		From(clientAccountsTable).
		Where(sq.Eq{"cpf": cpf}).
		OrderBy("position").
		ToSql()
}

func buildSelectAccountOwnerQuery(b sq.StatementBuilderType, number string) (string, []any, error) {
	return b.Select("cpf").
		From(clientAccountsTable).
		Where(sq.Eq{"account_number": number}).
		ToSql()
}

func buildDeleteClientAccountsQuery(b sq.StatementBuilderType, cpf string) (string, []any, error) {
	return b.Delete(clientAccountsTable).
		Where(sq.Eq{"cpf": cpf}).
		ToSql()
}
