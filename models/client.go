package models

import (
	"fmt"
	"slices"
	"strings"
)

// Client is a bank client identified by CPF.
//
// The account numbers are kept in insertion order without duplicates. A
// number enters the list only through association; the list is nil when the
// client holds no accounts.
type Client struct {
	name     string
	cpf      string
	accounts []string
}

// ClientState is the persisted form of a [Client].
type ClientState struct {
	// Name is the display name of the client.
	Name string `json:"name"`

	// CPF is the unique client identifier (primary key).
	CPF string `json:"cpf"`

	// Accounts holds the associated account numbers in insertion order.
	Accounts []string `json:"accounts,omitempty"`
}

// NewClient returns a detached client with no accounts.
func NewClient(name, cpf string) *Client {
	return &Client{name: name, cpf: cpf}
}

// RestoreClient builds a client from its persisted form.
func RestoreClient(state ClientState) *Client {
	client := NewClient(state.Name, state.CPF)
	if len(state.Accounts) > 0 {
		client.accounts = slices.Clone(state.Accounts)
	}
	return client
}

// State captures the persisted form of the client.
func (c *Client) State() ClientState {
	return ClientState{
		Name:     c.name,
		CPF:      c.cpf,
		Accounts: c.Accounts(),
	}
}

func (c *Client) Name() string {
	return c.name
}

func (c *Client) SetName(name string) {
	c.name = name
}

func (c *Client) CPF() string {
	return c.cpf
}

func (c *Client) SetCPF(cpf string) {
	c.cpf = cpf
}

// Accounts returns a copy of the associated account numbers, nil if there are none.
func (c *Client) Accounts() []string {
	if len(c.accounts) == 0 {
		return nil
	}
	return slices.Clone(c.accounts)
}

// AddAccount appends number to the account list.
// Returns [ErrClientAlreadyHasAccount] if the number is already present.
func (c *Client) AddAccount(number string) error {
	if c.FindAccountIndex(number) != -1 {
		return ErrClientAlreadyHasAccount
	}

	c.accounts = append(c.accounts, number)
	return nil
}

// RemoveAccount drops number from the account list, keeping the order of the rest.
// Returns [ErrClientHasNoAccount] if the number is absent.
func (c *Client) RemoveAccount(number string) error {
	i := c.FindAccountIndex(number)
	if i == -1 {
		return ErrClientHasNoAccount
	}

	c.accounts = slices.Delete(c.accounts, i, i+1)
	if len(c.accounts) == 0 {
		c.accounts = nil
	}
	return nil
}

// RemoveAllAccounts clears the account list.
func (c *Client) RemoveAllAccounts() {
	c.accounts = nil
}

// FindAccountIndex returns the position of number or -1.
func (c *Client) FindAccountIndex(number string) int {
	return slices.Index(c.accounts, number)
}

// AccountAt returns the account number at index.
// ok is false when index is out of range.
func (c *Client) AccountAt(index int) (number string, ok bool) {
	if index < 0 || index >= len(c.accounts) {
		return "", false
	}
	return c.accounts[index], true
}

// Equal reports whether other is a client with the same CPF.
// Nil clients and values of other types are never equal.
func (c *Client) Equal(other any) bool {
	if c == nil {
		return false
	}

	switch o := other.(type) {
	case *Client:
		return o != nil && o.cpf == c.cpf
	case Client:
		return o.cpf == c.cpf
	default:
		return false
	}
}

func (c *Client) String() string {
	return fmt.Sprintf("Name: %s\nCPF: %s\nAccounts: [%s]", c.name, c.cpf, strings.Join(c.accounts, ", "))
}
