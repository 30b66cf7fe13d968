package service

import (
	"context"

	"github.com/MKhiriev/go-bank/models"
)

// Bank is the single entry point for every account and client operation.
// Preconditions of each method are checked in the documented order and the
// first failing one is returned; a failed precondition leaves entities and
// repositories untouched.
type Bank interface {
	AccountService
	ClientService
}

type AccountService interface {
	// Register stores a new account. Fails with [ErrAccountAlreadyRegistered]
	// if the number is taken.
	Register(ctx context.Context, account models.Account) error
	// FindAccount returns the account or nil when it does not exist.
	FindAccount(ctx context.Context, number string) (models.Account, error)

	Credit(ctx context.Context, account models.Account, amount float64) error
	Debit(ctx context.Context, account models.Account, amount float64) error
	// Transfer debits src and credits dst, persisting src first. The dst write
	// is never attempted when persisting src fails.
	Transfer(ctx context.Context, src, dst models.Account, amount float64) error

	// AccrueInterest applies the configured interest rate to a savings account.
	AccrueInterest(ctx context.Context, account models.Account) error
	// AccrueBonus pays out the pending bonus of a special account.
	AccrueBonus(ctx context.Context, account models.Account) error
}

type ClientService interface {
	RegisterClient(ctx context.Context, client *models.Client) error
	// FindClient returns the client or nil when the CPF is not registered.
	FindClient(ctx context.Context, cpf string) (*models.Client, error)
	// AssociateAccount links number to the client. A client holds at most one
	// account; a stored account may belong to one client only. The number
	// does not have to be registered yet.
	AssociateAccount(ctx context.Context, cpf, number string) error
	// RemoveClient removes every associated account (best effort) and then
	// the client itself.
	RemoveClient(ctx context.Context, cpf string) error
	UpdateClient(ctx context.Context, client *models.Client) error
}
