// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the runtime of the terminal vocabulary client.
//
// It restores the session once, then lets the navigation gate pick between
// the login flow and the signed-in screens until the user quits.
package client
