// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks command line input before it reaches the bank:
// client names and CPFs, and the number and opening balance of new accounts.
// Business rules that depend on stored state (duplicates, ownership,
// balances) stay in the service layer.
package validators

import "context"

// Validator checks obj and returns the first violated rule. fields narrows
// the check to the named fields (FieldName, FieldCPF...); none means all.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
