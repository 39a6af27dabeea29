package service

import (
	"context"

	"github.com/MKhiriev/go-vocab-trainer/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService issues and checks opaque tokens for the reference backend.
type AuthService interface {
	// RegisterUser stores user with a hash of password.
	RegisterUser(ctx context.Context, user models.User, password string) (models.User, error)
	// Login checks the credentials and issues a new token.
	Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error)
	// ParseToken returns the id of the user the token was issued to.
	ParseToken(ctx context.Context, token string) (int64, error)
}

// VocabularyService serves dictionaries and words on behalf of userID. Data
// of other users is reported as not found.
type VocabularyService interface {
	ListDictionaries(ctx context.Context, userID, ownerID int64) ([]models.Dictionary, error)
	CreateDictionary(ctx context.Context, userID int64, req models.NewDictionaryRequest) (models.Dictionary, error)
	DeleteDictionary(ctx context.Context, userID, id int64) error

	ListWords(ctx context.Context, userID, dictionaryID int64) ([]models.Word, error)
	GetWord(ctx context.Context, userID, id int64) (models.Word, error)
	CreateWord(ctx context.Context, userID int64, req models.NewWordRequest) (models.Word, error)
	UpdateWord(ctx context.Context, userID int64, word models.Word) (models.Word, error)
	DeleteWord(ctx context.Context, userID, id int64) error
}

// UserService reads account profiles.
type UserService interface {
	GetProfile(ctx context.Context, userID, id int64) (models.UserProfile, error)
}
