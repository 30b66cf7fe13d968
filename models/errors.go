package models

import "errors"

// Entity-level rule violations. They are raised by the entities themselves and
// surfaced unchanged by the service layer, so callers match them with
// [errors.Is] regardless of which layer produced them.
var (
	// ErrInvalidAmount is returned when a credit or debit amount is zero or negative.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInsufficientBalance is returned when a debit exceeds the current balance.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrClientAlreadyHasAccount is returned when an account number is added to a
	// client that already holds it. The bank facade also returns it when a client
	// that owns any account asks for another association.
	ErrClientAlreadyHasAccount = errors.New("client already has an account")

	// ErrClientHasNoAccount is returned when removing an account number the client
	// does not hold.
	ErrClientHasNoAccount = errors.New("client has no such account")

	// ErrUnknownAccountKind is returned when a persisted account state carries a
	// kind this version does not know how to restore.
	ErrUnknownAccountKind = errors.New("unknown account kind")
)
