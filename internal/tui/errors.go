// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-vocab-trainer/internal/app"
	"github.com/MKhiriev/go-vocab-trainer/internal/controller"
	"github.com/MKhiriev/go-vocab-trainer/internal/service"
)

// ErrUserQuit is returned by the flows when the user pressed ctrl+c.
var ErrUserQuit = errors.New("user quit")

func loginErrorText(err error) string {
	if errors.Is(err, service.ErrInvalidCredentials) {
		return app.MsgLoginError
	}
	return app.MsgServerConnectionError
}

// stale reports results of a controller that was closed by navigation.
// They must not reach the screen.
func stale(err error) bool {
	return errors.Is(err, controller.ErrClosed)
}
