package store

import (
	"context"

	"github.com/MKhiriev/go-vocab-trainer/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CredentialStore is the device-local key→value store that survives
// application restarts. Values are strings; the session layer decides what
// goes in them.
type CredentialStore interface {
	// Get returns the value stored under key or [ErrKeyNotFound].
	Get(ctx context.Context, key string) (string, error)
	// Set inserts or replaces the value stored under key.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// VocabularyStorage keeps the accounts, tokens, dictionaries and words of
// the reference backend. Identifiers are assigned by the storage.
type VocabularyStorage interface {
	SaveUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	GetUser(ctx context.Context, id int64) (models.User, error)

	// SaveToken binds token to userID; a user may hold several tokens.
	SaveToken(ctx context.Context, token string, userID int64) error
	UserIDByToken(ctx context.Context, token string) (int64, error)

	// ListDictionaries returns the dictionaries of ownerID ordered by id
	// with WordCount filled in.
	ListDictionaries(ctx context.Context, ownerID int64) ([]models.Dictionary, error)
	GetDictionary(ctx context.Context, id int64) (models.Dictionary, error)
	CreateDictionary(ctx context.Context, dictionary models.Dictionary) (models.Dictionary, error)
	// DeleteDictionary removes the dictionary together with its words.
	DeleteDictionary(ctx context.Context, id int64) error

	ListWords(ctx context.Context, dictionaryID int64) ([]models.Word, error)
	GetWord(ctx context.Context, id int64) (models.Word, error)
	CreateWord(ctx context.Context, word models.Word) (models.Word, error)
	UpdateWord(ctx context.Context, word models.Word) (models.Word, error)
	DeleteWord(ctx context.Context, id int64) error
}
