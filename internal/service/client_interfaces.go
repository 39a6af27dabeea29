package service

import (
	"context"

	"github.com/MKhiriev/go-vocab-trainer/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientSessionService owns the signed-in state of the client. It is the only
// writer of the session; every other component receives it by constructor
// and only reads it.
type ClientSessionService interface {
	// Bootstrap restores the session from the credential store. Missing or
	// undecodable values leave the session signed out without an error;
	// only storage failures are returned. Call it once before the first
	// screen is drawn.
	Bootstrap(ctx context.Context) error

	// Login persists token and userID, then makes them the current session
	// and hands the token to the server adapter. Calling it twice with the
	// same values leaves the same state as calling it once.
	Login(ctx context.Context, token string, userID int64) error

	// Logout clears the in-memory session first, then deletes both stored
	// keys. Both deletes are always attempted.
	Logout(ctx context.Context) error

	// SignedIn reports whether both the token and the user id are present.
	SignedIn() bool

	// Session returns a copy of the current session.
	Session() models.Session
}

// ClientAuthService exchanges credentials for a session.
type ClientAuthService interface {
	// Authenticate calls the token endpoint and, on success, signs the
	// session in. It returns [ErrInvalidCredentials] when the server rejects
	// the credentials and [ErrServerUnavailable] for every other failure.
	Authenticate(ctx context.Context, username, password string) error
}

// ClientDictionaryService manages the dictionaries of the signed-in user.
type ClientDictionaryService interface {
	List(ctx context.Context) ([]models.Dictionary, error)
	// Create sends the session user id as the owner.
	Create(ctx context.Context, name string) (models.Dictionary, error)
	Delete(ctx context.Context, id int64) error
}

// ClientWordService manages the words of one dictionary at a time.
type ClientWordService interface {
	List(ctx context.Context, dictionaryID int64) ([]models.Word, error)
	Get(ctx context.Context, id int64) (models.Word, error)
	Create(ctx context.Context, dictionaryID int64, sourceText, targetText string) (models.Word, error)
	// Update PUTs the full word.
	Update(ctx context.Context, word models.Word) (models.Word, error)
	Delete(ctx context.Context, id int64) error
}

// ClientProfileService reads the profile of the signed-in user.
type ClientProfileService interface {
	Get(ctx context.Context) (models.UserProfile, error)
}
