// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the client and the
// vocabulary backend.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from HTTP. The package ships a REST implementation built on resty
// ([NewHTTPServerAdapter]).
//
// Every failure, whether a non-2xx status or a transport error, wraps
// [ErrRequestFailed]. Status failures are [*StatusError] values and also wrap
// [ErrHTTPStatus]; transport failures wrap [ErrTransport]. Authenticate maps
// HTTP 400 to [ErrInvalidCredentials].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-vocab-trainer/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the vocabulary backend. Every
// method except Authenticate sends the token set by SetToken.
type ServerAdapter interface {
	// SetToken stores the token attached as "Authorization: Token <token>"
	// to all subsequent authenticated requests. An empty token clears it.
	SetToken(token string)

	// Token returns the token currently stored in the adapter, or an empty
	// string.
	Token() string

	// Authenticate exchanges credentials for a token and user id. It does
	// not store the token; the session service decides what to do with it.
	Authenticate(ctx context.Context, creds models.Credentials) (models.AuthResponse, error)

	// ListDictionaries returns every dictionary owned by ownerID.
	ListDictionaries(ctx context.Context, ownerID int64) ([]models.Dictionary, error)
	// CreateDictionary creates a dictionary and returns it with its
	// server-assigned id.
	CreateDictionary(ctx context.Context, req models.NewDictionaryRequest) (models.Dictionary, error)
	// DeleteDictionary removes a dictionary.
	DeleteDictionary(ctx context.Context, id int64) error

	// ListWords returns every word of a dictionary.
	ListWords(ctx context.Context, dictionaryID int64) ([]models.Word, error)
	// GetWord fetches a single word.
	GetWord(ctx context.Context, id int64) (models.Word, error)
	// CreateWord adds a word pair to req.DictionaryID.
	CreateWord(ctx context.Context, req models.NewWordRequest) (models.Word, error)
	// UpdateWord replaces the word identified by word.ID with word.
	UpdateWord(ctx context.Context, word models.Word) (models.Word, error)
	// DeleteWord removes a word.
	DeleteWord(ctx context.Context, id int64) error

	// GetUser fetches the profile of user id.
	GetUser(ctx context.Context, id int64) (models.UserProfile, error)
}
