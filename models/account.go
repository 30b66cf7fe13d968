// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"math"
)

// AccountKind identifies the concrete variant behind an [Account].
// It is stored alongside the balance so that repositories can restore the
// right variant on read.
type AccountKind string

const (
	// Checking is a plain account with credit and debit only.
	Checking AccountKind = "checking"

	// Savings is an account that accrues interest at a rate chosen by the caller.
	Savings AccountKind = "savings"

	// Special is an account that accumulates a bonus on every credit and pays
	// it out on demand.
	Special AccountKind = "special"
)

// SpecialBonusRate is the share of every credited amount that a special
// account sets aside as pending bonus.
const SpecialBonusRate = 0.01

// Account is the capability set shared by every account variant.
//
// Number is immutable for the whole life of the account. Balance is changed
// only through Credit, Debit and the variant-specific accrual operations;
// no variant exposes a setter.
type Account interface {
	Number() string
	Balance() float64
	Kind() AccountKind

	// Credit adds amount to the balance. Fails with [ErrInvalidAmount] unless
	// amount is finite and positive.
	Credit(amount float64) error

	// Debit subtracts amount from the balance. Fails with [ErrInvalidAmount]
	// unless amount is finite and positive, and with [ErrInsufficientBalance]
	// if amount exceeds the balance.
	Debit(amount float64) error
}

// InterestAccruer is implemented by savings accounts.
type InterestAccruer interface {
	Account
	AccrueInterest(rate float64)
}

// BonusAccruer is implemented by special accounts.
type BonusAccruer interface {
	Account
	AccrueBonus()
}

// ValidAmount reports whether amount can be credited or debited: a finite
// number greater than zero.
func ValidAmount(amount float64) bool {
	return amount > 0 && !math.IsInf(amount, 0) && !math.IsNaN(amount)
}

// baseAccount carries number and balance for all variants.
type baseAccount struct {
	number  string
	balance float64
}

func (a *baseAccount) Number() string {
	return a.number
}

func (a *baseAccount) Balance() float64 {
	return a.balance
}

func (a *baseAccount) Credit(amount float64) error {
	if !ValidAmount(amount) {
		return ErrInvalidAmount
	}

	a.balance += amount
	return nil
}

func (a *baseAccount) Debit(amount float64) error {
	if !ValidAmount(amount) {
		return ErrInvalidAmount
	}
	if amount > a.balance {
		return ErrInsufficientBalance
	}

	a.balance -= amount
	return nil
}

// CheckingAccount is the plain account variant.
type CheckingAccount struct {
	baseAccount
}

// NewCheckingAccount returns a checking account with the given opening balance.
func NewCheckingAccount(number string, balance float64) *CheckingAccount {
	return &CheckingAccount{baseAccount{number: number, balance: balance}}
}

func (a *CheckingAccount) Kind() AccountKind {
	return Checking
}

func (a *CheckingAccount) String() string {
	return formatAccount(a)
}

// SavingsAccount accrues interest on demand.
type SavingsAccount struct {
	baseAccount
}

// NewSavingsAccount returns a savings account with the given opening balance.
func NewSavingsAccount(number string, balance float64) *SavingsAccount {
	return &SavingsAccount{baseAccount{number: number, balance: balance}}
}

func (a *SavingsAccount) Kind() AccountKind {
	return Savings
}

// AccrueInterest multiplies the balance by 1 + rate. The rate is a policy of
// the caller, the account does not store one.
func (a *SavingsAccount) AccrueInterest(rate float64) {
	a.balance *= 1 + rate
}

func (a *SavingsAccount) String() string {
	return formatAccount(a)
}

// SpecialAccount sets aside [SpecialBonusRate] of every credit as pending
// bonus. AccrueBonus moves the pending bonus into the balance.
type SpecialAccount struct {
	baseAccount
	bonus float64
}

// NewSpecialAccount returns a special account with the given opening balance
// and no pending bonus.
func NewSpecialAccount(number string, balance float64) *SpecialAccount {
	return &SpecialAccount{baseAccount: baseAccount{number: number, balance: balance}}
}

func (a *SpecialAccount) Kind() AccountKind {
	return Special
}

// Credit credits the balance and grows the pending bonus.
func (a *SpecialAccount) Credit(amount float64) error {
	if err := a.baseAccount.Credit(amount); err != nil {
		return err
	}

	a.bonus += amount * SpecialBonusRate
	return nil
}

// PendingBonus returns the bonus accumulated since the last AccrueBonus.
func (a *SpecialAccount) PendingBonus() float64 {
	return a.bonus
}

// AccrueBonus adds the pending bonus to the balance and resets it.
func (a *SpecialAccount) AccrueBonus() {
	a.balance += a.bonus
	a.bonus = 0
}

func (a *SpecialAccount) String() string {
	return formatAccount(a)
}

func formatAccount(a Account) string {
	return fmt.Sprintf("%s %s: %.2f", a.Kind(), a.Number(), a.Balance())
}
