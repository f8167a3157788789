// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks requests received by the development server
// before they reach the item store.
//
// A [Validator] accepts an arbitrary value and, optionally, the names of the
// fields to check. Without field names every rule for the value's type runs.
package validators

import "context"

// Validator validates v, restricted to fields when any are given.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}
