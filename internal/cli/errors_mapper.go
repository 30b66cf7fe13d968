package cli

import (
	"errors"

	"github.com/MKhiriev/go-bank/internal/app"
	"github.com/MKhiriev/go-bank/internal/service"
	"github.com/MKhiriev/go-bank/internal/store"
	"github.com/MKhiriev/go-bank/models"
)

// errorMessages is checked in order: bank errors that wrap a storage error
// (such as ErrAccountAlreadyRegistered on an insert race) come before the
// generic storage entry.
var errorMessages = []struct {
	target  error
	message string
}{
	{ErrUnknownCommand, app.MsgUnknownCommand},
	{ErrUsage, app.MsgInvalidArguments},
	{ErrInvalidArgument, app.MsgInvalidArguments},

	{service.ErrAccountAlreadyRegistered, app.MsgAccountAlreadyRegistered},
	{service.ErrAccountNotFound, app.MsgAccountNotFound},
	{service.ErrNotASavingsAccount, app.MsgNotASavingsAccount},
	{service.ErrNotASpecialAccount, app.MsgNotASpecialAccount},
	{service.ErrClientAlreadyRegistered, app.MsgClientAlreadyRegistered},
	{service.ErrClientNotRegistered, app.MsgClientNotRegistered},
	{service.ErrAccountAlreadyAssociated, app.MsgAccountAlreadyAssociated},
	{service.ErrUpdateNotApplied, app.MsgUpdateNotApplied},
	{service.ErrSystemInitialization, app.MsgSystemInitialization},

	{models.ErrInvalidAmount, app.MsgInvalidAmount},
	{models.ErrInsufficientBalance, app.MsgInsufficientBalance},
	{models.ErrClientAlreadyHasAccount, app.MsgClientAlreadyHasAccount},
	{models.ErrClientHasNoAccount, app.MsgClientHasNoAccount},
	{models.ErrUnknownAccountKind, app.MsgUnknownAccountKind},

	{store.ErrRepository, app.MsgStorageError},
}

// MessageFromError returns the user-facing message for err.
func MessageFromError(err error) string {
	for _, m := range errorMessages {
		if errors.Is(err, m.target) {
			return m.message
		}
	}
	return app.MsgInternalError
}
