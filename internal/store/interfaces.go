package store

import (
	"context"

	"github.com/MKhiriev/go-bank/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// AccountRepository persists accounts keyed by account number.
//
// Find and the other readers return fresh entities: mutating a returned
// account has no effect until it is passed to Update.
type AccountRepository interface {
	// Insert stores a new account. Returns [ErrAlreadyExists] if the number is taken.
	Insert(ctx context.Context, account models.Account) error
	// Find returns the account with the given number, or nil, nil when absent.
	Find(ctx context.Context, number string) (models.Account, error)
	Exists(ctx context.Context, number string) (bool, error)
	// Update overwrites a stored account. Reports false if the number is unknown.
	Update(ctx context.Context, account models.Account) (bool, error)
	// Remove deletes an account. Reports false if the number is unknown.
	Remove(ctx context.Context, number string) (bool, error)
}

// ClientRepository persists clients keyed by CPF together with their
// ordered account numbers.
type ClientRepository interface {
	// Insert stores a new client. Returns [ErrAlreadyExists] if the CPF is taken.
	Insert(ctx context.Context, client *models.Client) error
	// Find returns the client with the given CPF, or nil, nil when absent.
	Find(ctx context.Context, cpf string) (*models.Client, error)
	// FindOwner returns the client holding accountNumber, or nil, nil when
	// no client holds it.
	FindOwner(ctx context.Context, accountNumber string) (*models.Client, error)
	// Update overwrites a stored client. Reports false if the CPF is unknown.
	Update(ctx context.Context, client *models.Client) (bool, error)
	// Remove deletes a client. Reports false if the CPF is unknown.
	Remove(ctx context.Context, cpf string) (bool, error)
}
