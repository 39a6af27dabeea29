// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the pair of terminal flows the navigation gate switches between.
type UI interface {
	// LoginFlow returns nil once the session is signed in and
	// tui.ErrUserQuit when the user left.
	LoginFlow(ctx context.Context) error

	// MainLoop runs the signed-in screens. logout reports a sign-out; false
	// with a nil error means the user quit.
	MainLoop(ctx context.Context) (logout bool, err error)
}
