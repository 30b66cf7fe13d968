package utils

import (
	"strings"

	"github.com/google/uuid"
)

// IDGenerator hands out the identifiers the bank does not receive from the
// user: account numbers for `account open` without a number, and the
// operation id of every command run.
type IDGenerator struct {
}

func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// AccountNumber returns a random UUIDv4 in its 32 hex digit form, so the
// number has no separators to quote on the command line.
func (g *IDGenerator) AccountNumber() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// OperationID returns a UUIDv7, which sorts by creation time in the logs.
// Falls back to a UUIDv4 if the clock sequence cannot be read.
func (g *IDGenerator) OperationID() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
