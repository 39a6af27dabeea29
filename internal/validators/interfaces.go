// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request bodies accepted by the reference
// backend before they reach storage.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
