package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-vocab-trainer/internal/logger"
	"github.com/MKhiriev/go-vocab-trainer/internal/store"
	"github.com/MKhiriev/go-vocab-trainer/internal/utils"
	"github.com/MKhiriev/go-vocab-trainer/internal/validators"
	"github.com/MKhiriev/go-vocab-trainer/models"
)

// authService hashes passwords with bcrypt and hands out random opaque
// tokens. Tokens never expire.
type authService struct {
	storage   store.VocabularyStorage
	tokens    *utils.UUIDGenerator
	validator validators.Validator
	hashCost  int
	logger    *logger.Logger
}

func NewAuthService(storage store.VocabularyStorage, logger *logger.Logger) AuthService {
	return &authService{
		storage:   storage,
		tokens:    utils.NewUUIDGenerator(),
		validator: validators.NewVocabularyValidator(),
		hashCost:  bcrypt.DefaultCost,
		logger:    logger,
	}
}

func (a *authService) RegisterUser(ctx context.Context, user models.User, password string) (models.User, error) {
	creds := models.Credentials{Username: user.Username, Password: password}
	if err := a.validator.Validate(ctx, creds); err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.hashCost)
	if err != nil {
		return models.User{}, fmt.Errorf("error hashing password: %w", err)
	}
	user.PasswordHash = string(hash)

	registered, err := a.storage.SaveUser(ctx, user)
	if err != nil {
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	a.logger.Info().Int64("id", registered.ID).Str("username", registered.Username).Msg("user registered")
	return registered, nil
}

func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.AuthResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, creds); err != nil {
		log.Err(err).Str("username", creds.Username).Msg("invalid credentials provided")
		return models.AuthResponse{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	user, err := a.storage.FindUserByUsername(ctx, creds.Username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.AuthResponse{}, ErrWrongPassword
	}
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("user search by login failed: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		log.Debug().Int64("id", user.ID).Msg("wrong password")
		return models.AuthResponse{}, ErrWrongPassword
	}

	token := a.tokens.GenerateToken()
	if err = a.storage.SaveToken(ctx, token, user.ID); err != nil {
		return models.AuthResponse{}, fmt.Errorf("error saving token: %w", err)
	}

	return models.AuthResponse{Token: token, UserID: user.ID}, nil
}

func (a *authService) ParseToken(ctx context.Context, token string) (int64, error) {
	if token == "" {
		return 0, ErrInvalidToken
	}

	userID, err := a.storage.UserIDByToken(ctx, token)
	if errors.Is(err, store.ErrTokenNotFound) {
		return 0, ErrInvalidToken
	}
	if err != nil {
		return 0, fmt.Errorf("error looking up token: %w", err)
	}
	return userID, nil
}
