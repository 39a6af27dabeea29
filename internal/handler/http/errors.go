// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header.
var (
	// ErrEmptyAuthorizationHeader means the request carries no
	// "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader means the header is not "Token <value>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken means the scheme is present but the value is empty.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)
