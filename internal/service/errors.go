package service

import (
	"errors"

	"github.com/MKhiriev/go-bank/models"
)

var (
	ErrAccountAlreadyRegistered = errors.New("account already registered")
	ErrAccountNotFound          = errors.New("account not found")
	ErrNotASavingsAccount       = errors.New("not a savings account")
	ErrNotASpecialAccount       = errors.New("not a special account")

	ErrClientAlreadyRegistered  = errors.New("client already registered")
	ErrClientNotRegistered      = errors.New("client not registered")
	ErrAccountAlreadyAssociated = errors.New("account already associated with a client")

	// ErrUpdateNotApplied is returned when a repository reports that an
	// update matched no stored record.
	ErrUpdateNotApplied = errors.New("update not applied")

	ErrSystemInitialization = errors.New("bank system initialization failed")
)

// Entity errors surfaced unchanged by the bank.
var (
	ErrInvalidAmount           = models.ErrInvalidAmount
	ErrInsufficientBalance     = models.ErrInsufficientBalance
	ErrClientAlreadyHasAccount = models.ErrClientAlreadyHasAccount
	ErrClientHasNoAccount      = models.ErrClientHasNoAccount
)
