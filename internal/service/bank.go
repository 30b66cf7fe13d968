// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-bank/internal/config"
	"github.com/MKhiriev/go-bank/internal/logger"
	"github.com/MKhiriev/go-bank/internal/store"
	"github.com/MKhiriev/go-bank/models"
)

// bank validates every operation against both repositories and persists
// each mutated entity explicitly: repositories copy on read, so changing an
// entity never reaches storage by itself.
//
// bank holds no locks; callers serialize access.
type bank struct {
	accounts store.AccountRepository
	clients  store.ClientRepository

	interestRate float64

	logger *logger.Logger
}

// NewBank builds a Bank over the repositories in storages. The repositories
// are referenced, not owned: closing storages is up to the caller.
func NewBank(storages *store.Storages, cfg config.App, logger *logger.Logger) Bank {
	logger.Debug().Float64("interest_rate", cfg.InterestRate).Msg("creating bank")
	return &bank{
		accounts:     storages.Accounts,
		clients:      storages.Clients,
		interestRate: cfg.InterestRate,
		logger:       logger,
	}
}

// requireAccount fails with ErrAccountNotFound unless account is stored.
func (b *bank) requireAccount(ctx context.Context, account models.Account) error {
	if account == nil {
		return fmt.Errorf("%w: no account given", ErrAccountNotFound)
	}

	exists, err := b.accounts.Exists(ctx, account.Number())
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, account.Number())
	}

	return nil
}

// saveAccount writes account back, treating an unmatched update as an error.
func (b *bank) saveAccount(ctx context.Context, account models.Account) error {
	updated, err := b.accounts.Update(ctx, account)
	if err != nil {
		return err
	}
	if !updated {
		return fmt.Errorf("%w: account %s", ErrUpdateNotApplied, account.Number())
	}

	return nil
}

func (b *bank) saveClient(ctx context.Context, client *models.Client) error {
	updated, err := b.clients.Update(ctx, client)
	if err != nil {
		return err
	}
	if !updated {
		return fmt.Errorf("%w: client %s", ErrUpdateNotApplied, client.CPF())
	}

	return nil
}

func validAmount(amount float64) error {
	if !models.ValidAmount(amount) {
		return fmt.Errorf("%w: %v", ErrInvalidAmount, amount)
	}
	return nil
}
