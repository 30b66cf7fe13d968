// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli implements the one-shot command line front end of go-bank:
// every invocation runs a single command against the bank and prints the
// affected accounts or clients.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-bank/internal/logger"
	"github.com/MKhiriev/go-bank/internal/service"
	"github.com/MKhiriev/go-bank/internal/utils"
	"github.com/MKhiriev/go-bank/internal/validators"
	"github.com/MKhiriev/go-bank/models"
)

const operationIDField = "operation_id"

// App dispatches command line arguments to the bank.
type App struct {
	bank      service.Bank
	buildInfo models.AppBuildInfo
	ids       *utils.IDGenerator
	validator validators.Validator
	out       io.Writer

	logger *logger.Logger
}

func NewApp(bank service.Bank, buildInfo models.AppBuildInfo, out io.Writer, logger *logger.Logger) *App {
	return &App{
		bank:      bank,
		buildInfo: buildInfo,
		ids:       utils.NewIDGenerator(),
		validator: validators.NewBankInputValidator(),
		out:       out,
		logger:    logger,
	}
}

// Run executes the command in args. Every run gets an operation id, attached
// to ctx and to the context logger; an id already present in ctx is reused.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no command given", ErrUsage)
	}

	operationID, ok := utils.GetOperationIDFromContext(ctx)
	if !ok {
		operationID = a.ids.OperationID()
	}

	l := a.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str(operationIDField, operationID)
	})
	ctx = utils.WithOperationID(l.WithContext(ctx), operationID)

	l.Debug().Strs("args", args).Msg("running command")

	cmd, ok := commands[args[0]]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}

	if err := cmd(a, ctx, args[1:]); err != nil {
		l.Err(err).Str("func", "*App.Run").Str("command", args[0]).Msg("command failed")
		return err
	}

	return nil
}

// validate checks obj with the input validator, reporting failures as
// ErrInvalidArgument.
func (a *App) validate(ctx context.Context, obj any, fields ...string) error {
	if err := a.validator.Validate(ctx, obj, fields...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return nil
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(v any) {
	fmt.Fprintln(a.out, v)
}
