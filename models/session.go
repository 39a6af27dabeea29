// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Session is the signed-in state of the client. It is owned by the session
// service; the credential store keeps a durable mirror of both fields.
type Session struct {
	// Token is the opaque credential issued by the token-auth endpoint and
	// sent as "Authorization: Token <value>".
	Token string `json:"token"`

	// UserID is the server-side identifier of the signed-in user.
	UserID int64 `json:"user_id"`
}

// SignedIn reports whether both the token and the user identifier are present.
func (s Session) SignedIn() bool {
	return s.Token != "" && s.UserID != 0
}

// Credentials is the request body of the token-auth endpoint.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is the successful token-auth response.
type AuthResponse struct {
	Token  string `json:"token"`
	UserID int64  `json:"user_id"`
}
