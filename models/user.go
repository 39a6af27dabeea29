// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// UserProfile is the read-only account information returned by the users
// endpoint.
type UserProfile struct {
	ID        int64  `json:"id"`
	Username  string `json:"username,omitempty"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// DisplayName renders "last first", falling back to the username when both
// name parts are empty.
func (u UserProfile) DisplayName() string {
	name := strings.TrimSpace(u.LastName + " " + u.FirstName)
	if name == "" {
		return u.Username
	}
	return name
}

// User is an account of the reference backend. PasswordHash never leaves
// the server.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	FirstName    string
	LastName     string
	Email        string
}

// Profile returns the public part of the account.
func (u User) Profile() UserProfile {
	return UserProfile{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}
