// Package utils provides general-purpose helper utilities
// used across different parts of the application: type-safe context keys
// and identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// OperationIDCtxKey is the key used to store the identifier of the bank
// operation being executed (one per command line invocation).
var OperationIDCtxKey = contextKey("operationID")

// WithOperationID returns a copy of ctx carrying operationID.
func WithOperationID(ctx context.Context, operationID string) context.Context {
	return context.WithValue(ctx, OperationIDCtxKey, operationID)
}

// GetOperationIDFromContext retrieves the operation identifier from the context.
//
// ok is false when the value is missing, empty or of an unexpected type.
func GetOperationIDFromContext(ctx context.Context) (string, bool) {
	operationID, ok := ctx.Value(OperationIDCtxKey).(string)
	return operationID, ok && operationID != ""
}
