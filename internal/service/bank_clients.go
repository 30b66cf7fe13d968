package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-bank/internal/logger"
	"github.com/MKhiriev/go-bank/internal/store"
	"github.com/MKhiriev/go-bank/models"
)

func (b *bank) RegisterClient(ctx context.Context, client *models.Client) error {
	log := logger.FromContext(ctx)

	if client == nil {
		return fmt.Errorf("%w: no client given", ErrClientNotRegistered)
	}

	existing, err := b.clients.Find(ctx, client.CPF())
	if err != nil {
		log.Err(err).Str("func", "*bank.RegisterClient").Str("cpf", client.CPF()).Msg("error looking up client")
		return err
	}
	if existing != nil {
		return fmt.Errorf("%w: %s", ErrClientAlreadyRegistered, client.CPF())
	}

	if err = b.clients.Insert(ctx, client); err != nil {
		log.Err(err).Str("func", "*bank.RegisterClient").Str("cpf", client.CPF()).Msg("error inserting client")
		return err
	}

	log.Debug().Str("func", "*bank.RegisterClient").Str("cpf", client.CPF()).Msg("client registered")
	return nil
}

func (b *bank) FindClient(ctx context.Context, cpf string) (*models.Client, error) {
	return b.clients.Find(ctx, cpf)
}

// AssociateAccount checks, in order: the client is registered, the client
// holds no account yet, and a stored account has no owner.
func (b *bank) AssociateAccount(ctx context.Context, cpf, number string) error {
	log := logger.FromContext(ctx)

	client, err := b.clients.Find(ctx, cpf)
	if err != nil {
		log.Err(err).Str("func", "*bank.AssociateAccount").Str("cpf", cpf).Msg("error looking up client")
		return err
	}
	if client == nil {
		return fmt.Errorf("%w: %s", ErrClientNotRegistered, cpf)
	}

	if len(client.Accounts()) > 0 {
		return fmt.Errorf("%w: client %s", ErrClientAlreadyHasAccount, cpf)
	}

	exists, err := b.accounts.Exists(ctx, number)
	if err != nil {
		log.Err(err).Str("func", "*bank.AssociateAccount").Str("number", number).Msg("error checking account existence")
		return err
	}
	if exists {
		owner, err := b.clients.FindOwner(ctx, number)
		if err != nil {
			log.Err(err).Str("func", "*bank.AssociateAccount").Str("number", number).Msg("error looking up account owner")
			return err
		}
		if owner != nil {
			return fmt.Errorf("%w: account %s belongs to %s", ErrAccountAlreadyAssociated, number, owner.CPF())
		}
	}

	if err = client.AddAccount(number); err != nil {
		return err
	}

	if err = b.saveClient(ctx, client); err != nil {
		log.Err(err).Str("func", "*bank.AssociateAccount").Str("cpf", cpf).Str("number", number).Msg("error saving client")
		// a number recorded earlier for another client without a stored account
		if errors.Is(err, store.ErrAlreadyExists) {
			return fmt.Errorf("%w: %w", ErrAccountAlreadyAssociated, err)
		}
		return err
	}

	log.Debug().Str("func", "*bank.AssociateAccount").Str("cpf", cpf).Str("number", number).Msg("account associated")
	return nil
}

// RemoveClient deletes every account of the client, continuing past failed
// removals, and then the client itself.
func (b *bank) RemoveClient(ctx context.Context, cpf string) error {
	log := logger.FromContext(ctx)

	client, err := b.clients.Find(ctx, cpf)
	if err != nil {
		log.Err(err).Str("func", "*bank.RemoveClient").Str("cpf", cpf).Msg("error looking up client")
		return err
	}
	if client == nil {
		return fmt.Errorf("%w: %s", ErrClientNotRegistered, cpf)
	}

	for _, number := range client.Accounts() {
		removed, err := b.accounts.Remove(ctx, number)
		if err != nil {
			log.Warn().Err(err).Str("func", "*bank.RemoveClient").Str("cpf", cpf).Str("number", number).Msg("error removing client account, continuing")
			continue
		}
		if !removed {
			log.Warn().Str("func", "*bank.RemoveClient").Str("cpf", cpf).Str("number", number).Msg("client account was not stored")
		}
	}

	removed, err := b.clients.Remove(ctx, cpf)
	if err != nil {
		log.Err(err).Str("func", "*bank.RemoveClient").Str("cpf", cpf).Msg("error removing client")
		return err
	}
	if !removed {
		return fmt.Errorf("%w: %s", ErrClientNotRegistered, cpf)
	}

	log.Debug().Str("func", "*bank.RemoveClient").Str("cpf", cpf).Msg("client removed")
	return nil
}

func (b *bank) UpdateClient(ctx context.Context, client *models.Client) error {
	if err := b.saveClient(ctx, client); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*bank.UpdateClient").Str("cpf", client.CPF()).Msg("error updating client")
		return err
	}

	return nil
}
