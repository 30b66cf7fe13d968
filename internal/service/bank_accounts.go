package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bank/internal/logger"
	"github.com/MKhiriev/go-bank/internal/store"
	"github.com/MKhiriev/go-bank/models"
)

func (b *bank) Register(ctx context.Context, account models.Account) error {
	log := logger.FromContext(ctx)

	if account == nil {
		return fmt.Errorf("%w: no account given", ErrAccountNotFound)
	}

	exists, err := b.accounts.Exists(ctx, account.Number())
	if err != nil {
		log.Err(err).Str("func", "*bank.Register").Str("number", account.Number()).Msg("error checking account existence")
		return err
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrAccountAlreadyRegistered, account.Number())
	}

	if err = b.accounts.Insert(ctx, account); err != nil {
		log.Err(err).Str("func", "*bank.Register").Str("number", account.Number()).Msg("error inserting account")
		if errors.Is(err, store.ErrAlreadyExists) {
			return fmt.Errorf("%w: %w", ErrAccountAlreadyRegistered, err)
		}
		return err
	}

	log.Debug().Str("func", "*bank.Register").Str("number", account.Number()).Str("kind", string(account.Kind())).Msg("account registered")
	return nil
}

func (b *bank) FindAccount(ctx context.Context, number string) (models.Account, error) {
	return b.accounts.Find(ctx, number)
}

func (b *bank) Credit(ctx context.Context, account models.Account, amount float64) error {
	if err := b.requireAccount(ctx, account); err != nil {
		return err
	}

	if err := account.Credit(amount); err != nil {
		return err
	}

	if err := b.saveAccount(ctx, account); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bank.Credit").Str("number", account.Number()).Msg("error saving credited account")
		return err
	}

	return nil
}

func (b *bank) Debit(ctx context.Context, account models.Account, amount float64) error {
	if err := b.requireAccount(ctx, account); err != nil {
		return err
	}

	if err := account.Debit(amount); err != nil {
		return err
	}

	if err := b.saveAccount(ctx, account); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bank.Debit").Str("number", account.Number()).Msg("error saving debited account")
		return err
	}

	return nil
}

func (b *bank) Transfer(ctx context.Context, src, dst models.Account, amount float64) error {
	log := logger.FromContext(ctx)

	if err := b.requireAccount(ctx, src); err != nil {
		return err
	}
	if err := b.requireAccount(ctx, dst); err != nil {
		return err
	}
	if err := validAmount(amount); err != nil {
		return err
	}
	if src.Balance() < amount {
		return fmt.Errorf("%w: account %s", ErrInsufficientBalance, src.Number())
	}

	// moving money onto the same account changes nothing
	if src.Number() == dst.Number() {
		log.Debug().Str("func", "*bank.Transfer").Str("number", src.Number()).Msg("transfer to the same account skipped")
		return nil
	}

	// dst is credited only once the debit is stored
	if err := src.Debit(amount); err != nil {
		return err
	}
	if err := b.saveAccount(ctx, src); err != nil {
		log.Err(err).Str("func", "*bank.Transfer").Str("src", src.Number()).Msg("error saving source account, transfer abandoned")
		return err
	}

	if err := dst.Credit(amount); err != nil {
		return err
	}
	if err := b.saveAccount(ctx, dst); err != nil {
		log.Err(err).Str("func", "*bank.Transfer").Str("src", src.Number()).Str("dst", dst.Number()).
			Msg("error saving destination account after source was debited")
		return err
	}

	log.Debug().Str("func", "*bank.Transfer").Str("src", src.Number()).Str("dst", dst.Number()).Float64("amount", amount).Msg("transfer completed")
	return nil
}

func (b *bank) AccrueInterest(ctx context.Context, account models.Account) error {
	if err := b.requireAccount(ctx, account); err != nil {
		return err
	}

	savings, ok := account.(models.InterestAccruer)
	if !ok {
		return fmt.Errorf("%w: %s is %s", ErrNotASavingsAccount, account.Number(), account.Kind())
	}

	savings.AccrueInterest(b.interestRate)

	if err := b.saveAccount(ctx, savings); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bank.AccrueInterest").Str("number", account.Number()).Msg("error saving account after interest")
		return err
	}

	return nil
}

func (b *bank) AccrueBonus(ctx context.Context, account models.Account) error {
	if err := b.requireAccount(ctx, account); err != nil {
		return err
	}

	special, ok := account.(models.BonusAccruer)
	if !ok {
		return fmt.Errorf("%w: %s is %s", ErrNotASpecialAccount, account.Number(), account.Kind())
	}

	special.AccrueBonus()

	if err := b.saveAccount(ctx, special); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bank.AccrueBonus").Str("number", account.Number()).Msg("error saving account after bonus")
		return err
	}

	return nil
}
