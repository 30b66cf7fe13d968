package validators

import (
	"context"
	"math"
	"slices"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-bank/models"
)

const (
	FieldName    = "name"
	FieldCPF     = "cpf"
	FieldNumber  = "number"
	FieldKind    = "kind"
	FieldBalance = "balance"
)

var allowedAccountKinds = []models.AccountKind{
	models.Checking,
	models.Savings,
	models.Special,
}

// BankInputValidator checks user input before it reaches the bank:
// clients (name, CPF) and accounts being opened (number, kind, balance).
type BankInputValidator struct {
}

func NewBankInputValidator() Validator {
	return &BankInputValidator{}
}

func (v *BankInputValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ClientState:
		return v.validateClient(ctx, value, fields...)
	case *models.Client:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateClient(ctx, value.State(), fields...)

	case models.AccountState:
		return v.validateAccount(ctx, value, fields...)
	case *models.AccountState:
		return v.validateAccount(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *BankInputValidator) validateClient(ctx context.Context, client models.ClientState, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldCPF}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(client.Name) == "" {
				return ErrEmptyName
			}
		case FieldCPF:
			if !isDigits(client.CPF) {
				return ErrInvalidCPF
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *BankInputValidator) validateAccount(ctx context.Context, account models.AccountState, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNumber, FieldKind, FieldBalance}
	}

	for _, f := range fields {
		switch f {
		case FieldNumber:
			if account.Number == "" || strings.ContainsFunc(account.Number, unicode.IsSpace) {
				return ErrInvalidAccountNumber
			}
		case FieldKind:
			if !slices.Contains(allowedAccountKinds, account.Kind) {
				return ErrInvalidAccountKind
			}
		case FieldBalance:
			if account.Balance < 0 || math.IsNaN(account.Balance) || math.IsInf(account.Balance, 0) {
				return ErrInvalidBalance
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isDigits reports whether s is a non-empty string of ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
