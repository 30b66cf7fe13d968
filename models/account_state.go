package models

import "fmt"

// AccountState is the persisted form of an [Account].
// Repositories store and load this record; they never reach into the
// unexported fields of the variants.
type AccountState struct {
	// Number is the unique account number (primary key).
	Number string `json:"number"`

	// Kind selects the variant restored by [RestoreAccount].
	Kind AccountKind `json:"kind"`

	// Balance is the current balance.
	Balance float64 `json:"balance"`

	// Bonus is the pending bonus of a special account. Zero for other kinds.
	Bonus float64 `json:"bonus,omitempty"`
}

// StateOf captures the persisted form of account.
func StateOf(account Account) AccountState {
	state := AccountState{
		Number:  account.Number(),
		Kind:    account.Kind(),
		Balance: account.Balance(),
	}

	if special, ok := account.(*SpecialAccount); ok {
		state.Bonus = special.PendingBonus()
	}

	return state
}

// RestoreAccount builds a fresh account from its persisted form.
// Returns [ErrUnknownAccountKind] for kinds it does not recognise.
func RestoreAccount(state AccountState) (Account, error) {
	switch state.Kind {
	case Checking:
		return NewCheckingAccount(state.Number, state.Balance), nil
	case Savings:
		return NewSavingsAccount(state.Number, state.Balance), nil
	case Special:
		account := NewSpecialAccount(state.Number, state.Balance)
		account.bonus = state.Bonus
		return account, nil
	default:
		return nil, fmt.Errorf("%w: %q (account %s)", ErrUnknownAccountKind, state.Kind, state.Number)
	}
}

// NewAccount opens an account of the given kind.
func NewAccount(kind AccountKind, number string, balance float64) (Account, error) {
	return RestoreAccount(AccountState{Number: number, Kind: kind, Balance: balance})
}
