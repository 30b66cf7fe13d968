package cli

import "errors"

var (
	ErrUnknownCommand  = errors.New("unknown command")
	ErrUsage           = errors.New("wrong number of arguments")
	ErrInvalidArgument = errors.New("invalid argument")
)
