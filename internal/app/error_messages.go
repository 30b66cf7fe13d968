// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// go-bank command line front end.
//
// All Msg* constants are human-readable message strings printed to the user
// to describe why an operation failed. Keeping them in one place ensures
// consistent wording across commands.
package app

const (
	// MsgInvalidArguments is shown when a command is called with missing or
	// malformed arguments.
	MsgInvalidArguments = "invalid arguments"

	// MsgUnknownCommand is shown for a command name the CLI does not know.
	MsgUnknownCommand = "unknown command"

	// MsgInvalidAmount is shown when a credit, debit or transfer amount is
	// zero or negative.
	MsgInvalidAmount = "amount must be greater than zero"

	// MsgInsufficientBalance is shown when a debit or transfer exceeds the
	// balance of the account.
	MsgInsufficientBalance = "insufficient balance"

	MsgAccountAlreadyRegistered = "an account with this number already exists"
	MsgAccountNotFound          = "account not found"
	MsgNotASavingsAccount       = "interest accrues on savings accounts only"
	MsgNotASpecialAccount       = "bonus accrues on special accounts only"

	MsgClientAlreadyRegistered  = "a client with this CPF already exists"
	MsgClientNotRegistered      = "client not registered"
	MsgClientAlreadyHasAccount  = "client already has an account"
	MsgClientHasNoAccount       = "client has no such account"
	MsgAccountAlreadyAssociated = "account already belongs to another client"

	// MsgUpdateNotApplied is shown when storage reports that an update
	// matched no stored record.
	MsgUpdateNotApplied = "update was not applied"

	// MsgUnknownAccountKind is shown when the requested kind is not one of
	// checking, savings or special.
	MsgUnknownAccountKind = "unknown account kind (use checking, savings or special)"

	// MsgSystemInitialization is shown when the bank could not be built from
	// the configured storage.
	MsgSystemInitialization = "bank could not be initialized"

	// MsgStorageError is shown for any storage fault.
	MsgStorageError = "storage error"

	// MsgInternalError is shown when no more specific message applies.
	MsgInternalError = "internal error"
)
