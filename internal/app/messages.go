// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings shared by the
// terminal screens and the reference backend. Keeping them in one place
// keeps the wording identical everywhere they appear.
package app

// Blocking alerts shown when an action fails. The screen leaves its state
// as it was before the action.
const (
	MsgDeleteError = "Delete error!"
	MsgAddError    = "Add error!"
	MsgReadError   = "Reading error!"
	MsgSaveError   = "Saving error!"
	MsgHTTPError   = "HTTP error!"

	// MsgLoginError is shown when the server rejected the credentials.
	MsgLoginError = "Login error!"
	// MsgServerConnectionError is shown for every other login failure.
	MsgServerConnectionError = "Server connection error!"
)

// Empty and placeholder states.
const (
	MsgEmptyList = "List is empty"
	MsgLoading   = "Loading..."
)

// Reference backend response details, worded like a REST framework backend.
const (
	MsgInvalidCredentials = "Unable to log in with provided credentials."
	MsgInvalidToken       = "Invalid token."
	MsgNoCredentials      = "Authentication credentials were not provided."
	MsgNotFound           = "Not found."
	MsgInvalidData        = "Invalid data provided."
)

// MsgForbidden answers requests that name another user's data.
const MsgForbidden = "You do not have permission to perform this action."
