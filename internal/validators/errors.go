package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName            = errors.New("client name is required")
	ErrInvalidCPF           = errors.New("CPF must contain digits only")
	ErrInvalidAccountNumber = errors.New("account number must be non-empty and contain no spaces")
	ErrInvalidAccountKind   = errors.New("invalid account kind")
	ErrInvalidBalance       = errors.New("balance must be a non-negative number")
)
