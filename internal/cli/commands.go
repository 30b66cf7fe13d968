package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-bank/internal/service"
	"github.com/MKhiriev/go-bank/internal/validators"
	"github.com/MKhiriev/go-bank/models"
)

type command func(a *App, ctx context.Context, args []string) error

var commands = map[string]command{
	"account":  (*App).account,
	"credit":   (*App).credit,
	"debit":    (*App).debit,
	"transfer": (*App).transfer,
	"interest": (*App).interest,
	"bonus":    (*App).bonus,
	"client":   (*App).client,
	"version":  (*App).version,
}

var accountCommands = map[string]command{
	"open": (*App).openAccount,
	"show": (*App).showAccount,
}

var clientCommands = map[string]command{
	"register":  (*App).registerClient,
	"show":      (*App).showClient,
	"associate": (*App).associateAccount,
	"rename":    (*App).renameClient,
	"remove":    (*App).removeClient,
}

// generateNumber in place of an account number asks for a generated one.
const generateNumber = "-"

func subcommand(table map[string]command, group string, a *App, ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: %s needs a subcommand", ErrUsage, group)
	}

	cmd, ok := table[args[0]]
	if !ok {
		return fmt.Errorf("%w: %s %q", ErrUnknownCommand, group, args[0])
	}

	return cmd(a, ctx, args[1:])
}

func expectArgs(args []string, min, max int, usage string) error {
	if len(args) < min || len(args) > max {
		return fmt.Errorf("%w: usage: %s", ErrUsage, usage)
	}
	return nil
}

func parseAmount(s string) (float64, error) {
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: amount %q: %w", ErrInvalidArgument, s, err)
	}
	return amount, nil
}

// ── accounts ──────────────────────────────────────────────────────────────────

func (a *App) account(ctx context.Context, args []string) error {
	return subcommand(accountCommands, "account", a, ctx, args)
}

// openAccount: account open <kind> [number|-] [initial-balance]
func (a *App) openAccount(ctx context.Context, args []string) error {
	if err := expectArgs(args, 1, 3, "account open <checking|savings|special> [number] [initial-balance]"); err != nil {
		return err
	}

	number := generateNumber
	if len(args) > 1 {
		number = args[1]
	}
	if number == generateNumber || number == "" {
		number = a.ids.AccountNumber()
	}

	state := models.AccountState{Number: number, Kind: models.AccountKind(args[0])}
	if len(args) > 2 {
		balance, err := parseAmount(args[2])
		if err != nil {
			return err
		}
		state.Balance = balance
	}

	// the kind is left to NewAccount so an unknown one reports ErrUnknownAccountKind
	if err := a.validate(ctx, state, validators.FieldNumber, validators.FieldBalance); err != nil {
		return err
	}

	account, err := models.NewAccount(state.Kind, state.Number, state.Balance)
	if err != nil {
		return err
	}

	if err = a.bank.Register(ctx, account); err != nil {
		return err
	}

	a.println(account)
	return nil
}

func (a *App) showAccount(ctx context.Context, args []string) error {
	if err := expectArgs(args, 1, 1, "account show <number>"); err != nil {
		return err
	}

	account, err := a.findAccount(ctx, args[0])
	if err != nil {
		return err
	}

	a.println(account)
	return nil
}

// findAccount loads a stored account, turning absence into ErrAccountNotFound.
func (a *App) findAccount(ctx context.Context, number string) (models.Account, error) {
	account, err := a.bank.FindAccount(ctx, number)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, fmt.Errorf("%w: %s", service.ErrAccountNotFound, number)
	}
	return account, nil
}

func (a *App) credit(ctx context.Context, args []string) error {
	return a.moveMoney(ctx, args, "credit <number> <amount>", a.bank.Credit)
}

func (a *App) debit(ctx context.Context, args []string) error {
	return a.moveMoney(ctx, args, "debit <number> <amount>", a.bank.Debit)
}

func (a *App) moveMoney(ctx context.Context, args []string, usage string,
	op func(ctx context.Context, account models.Account, amount float64) error) error {
	if err := expectArgs(args, 2, 2, usage); err != nil {
		return err
	}

	amount, err := parseAmount(args[1])
	if err != nil {
		return err
	}

	account, err := a.findAccount(ctx, args[0])
	if err != nil {
		return err
	}

	if err = op(ctx, account, amount); err != nil {
		return err
	}

	a.println(account)
	return nil
}

func (a *App) transfer(ctx context.Context, args []string) error {
	if err := expectArgs(args, 3, 3, "transfer <src> <dst> <amount>"); err != nil {
		return err
	}

	amount, err := parseAmount(args[2])
	if err != nil {
		return err
	}

	src, err := a.findAccount(ctx, args[0])
	if err != nil {
		return err
	}
	dst, err := a.findAccount(ctx, args[1])
	if err != nil {
		return err
	}

	if err = a.bank.Transfer(ctx, src, dst, amount); err != nil {
		return err
	}

	a.println(src)
	if src.Number() != dst.Number() {
		a.println(dst)
	}
	return nil
}

func (a *App) interest(ctx context.Context, args []string) error {
	return a.accrue(ctx, args, "interest <number>", a.bank.AccrueInterest)
}

func (a *App) bonus(ctx context.Context, args []string) error {
	return a.accrue(ctx, args, "bonus <number>", a.bank.AccrueBonus)
}

func (a *App) accrue(ctx context.Context, args []string, usage string,
	op func(ctx context.Context, account models.Account) error) error {
	if err := expectArgs(args, 1, 1, usage); err != nil {
		return err
	}

	account, err := a.findAccount(ctx, args[0])
	if err != nil {
		return err
	}

	if err = op(ctx, account); err != nil {
		return err
	}

	a.println(account)
	return nil
}

// ── clients ───────────────────────────────────────────────────────────────────

func (a *App) client(ctx context.Context, args []string) error {
	return subcommand(clientCommands, "client", a, ctx, args)
}

func (a *App) registerClient(ctx context.Context, args []string) error {
	if err := expectArgs(args, 2, 2, "client register <name> <cpf>"); err != nil {
		return err
	}

	client := models.NewClient(args[0], args[1])
	if err := a.validate(ctx, client); err != nil {
		return err
	}

	if err := a.bank.RegisterClient(ctx, client); err != nil {
		return err
	}

	a.println(client)
	return nil
}

func (a *App) showClient(ctx context.Context, args []string) error {
	if err := expectArgs(args, 1, 1, "client show <cpf>"); err != nil {
		return err
	}

	client, err := a.findClient(ctx, args[0])
	if err != nil {
		return err
	}

	a.println(client)
	return nil
}

func (a *App) findClient(ctx context.Context, cpf string) (*models.Client, error) {
	client, err := a.bank.FindClient(ctx, cpf)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, fmt.Errorf("%w: %s", service.ErrClientNotRegistered, cpf)
	}
	return client, nil
}

func (a *App) associateAccount(ctx context.Context, args []string) error {
	if err := expectArgs(args, 2, 2, "client associate <cpf> <number>"); err != nil {
		return err
	}

	if err := a.bank.AssociateAccount(ctx, args[0], args[1]); err != nil {
		return err
	}

	return a.showClient(ctx, args[:1])
}

func (a *App) renameClient(ctx context.Context, args []string) error {
	if err := expectArgs(args, 2, 2, "client rename <cpf> <name>"); err != nil {
		return err
	}

	client, err := a.findClient(ctx, args[0])
	if err != nil {
		return err
	}

	client.SetName(args[1])
	if err = a.validate(ctx, client, validators.FieldName); err != nil {
		return err
	}

	if err = a.bank.UpdateClient(ctx, client); err != nil {
		return err
	}

	a.println(client)
	return nil
}

func (a *App) removeClient(ctx context.Context, args []string) error {
	if err := expectArgs(args, 1, 1, "client remove <cpf>"); err != nil {
		return err
	}

	if err := a.bank.RemoveClient(ctx, args[0]); err != nil {
		return err
	}

	a.printf("client %s removed\n", args[0])
	return nil
}

// ── misc ──────────────────────────────────────────────────────────────────────

func (a *App) version(_ context.Context, args []string) error {
	if err := expectArgs(args, 0, 0, "version"); err != nil {
		return err
	}

	a.println(a.buildInfo)
	return nil
}
