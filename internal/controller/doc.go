// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package controller holds the screen-independent state behind the list,
// edit and training screens.
//
// Every controller owns a context derived from the screen that created it.
// Close cancels that context: requests still in flight are aborted and any
// result that arrives afterwards is dropped with [ErrClosed] instead of
// touching state. State is guarded by a mutex because Bubble Tea runs
// commands on their own goroutines.
//
// Mutations are applied only after the server confirmed them. On failure the
// state is left exactly as it was (last known good) and the error is
// returned to the screen, which decides what to show.
package controller

import "errors"

var (
	// ErrClosed is returned for calls made or completed after Close.
	ErrClosed = errors.New("controller closed")
	// ErrNotLoaded is returned by WordEditor.Save before a successful Load.
	ErrNotLoaded = errors.New("nothing loaded")
	// ErrEmptyDeck is returned by Quiz.Next when the dictionary has no words.
	ErrEmptyDeck = errors.New("dictionary has no words")
)
