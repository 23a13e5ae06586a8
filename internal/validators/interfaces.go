// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks client-supplied file names before they reach a
// storage backend.
//
// A [Validator] accepts a [models.StoredFile], a pointer to one, or a bare
// name, and an optional list of fields restricting which rules run
// ([FieldName], [FieldExtension]).
package validators

import "context"

// Validator validates value, restricted to fields when any are given.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
