// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-vocab-trainer/internal/logger"
	"github.com/MKhiriev/go-vocab-trainer/internal/store"
	"github.com/MKhiriev/go-vocab-trainer/models"
)

// Credential store keys. Both values are JSON-encoded scalars.
const (
	TokenKey  = "api-token"
	UserIDKey = "user-id"
)

// TokenHolder receives the session token; the server adapter implements it.
type TokenHolder interface {
	SetToken(token string)
}

type clientSessionService struct {
	store  store.CredentialStore
	tokens TokenHolder
	logger *logger.Logger

	mu      sync.RWMutex
	session models.Session
}

func NewClientSessionService(credentials store.CredentialStore, tokens TokenHolder, logger *logger.Logger) ClientSessionService {
	return &clientSessionService{
		store:  credentials,
		tokens: tokens,
		logger: logger,
	}
}

func (s *clientSessionService) Bootstrap(ctx context.Context) error {
	rawToken, err := s.read(ctx, TokenKey)
	if err != nil || rawToken == "" {
		return err
	}
	rawUserID, err := s.read(ctx, UserIDKey)
	if err != nil || rawUserID == "" {
		return err
	}

	var (
		token  string
		userID int64
	)
	if err = json.Unmarshal([]byte(rawToken), &token); err != nil {
		s.logger.Warn().Err(err).Str("key", TokenKey).Msg("stored token is not decodable, staying signed out")
		return nil
	}
	if err = json.Unmarshal([]byte(rawUserID), &userID); err != nil {
		s.logger.Warn().Err(err).Str("key", UserIDKey).Msg("stored user id is not decodable, staying signed out")
		return nil
	}

	if err = s.Login(ctx, token, userID); err != nil {
		if errors.Is(err, ErrInvalidSession) {
			s.logger.Warn().Err(err).Msg("stored session is invalid, staying signed out")
			return nil
		}
		return fmt.Errorf("restore session: %w", err)
	}

	s.logger.Info().Int64("user_id", userID).Msg("session restored")
	return nil
}

// read returns "" for absent or unreadable-by-us values; only real storage
// failures come back as errors.
func (s *clientSessionService) read(ctx context.Context, key string) (string, error) {
	v, err := s.store.Get(ctx, key)
	switch {
	case err == nil:
		return v, nil
	case errors.Is(err, store.ErrKeyNotFound):
		return "", nil
	case errors.Is(err, store.ErrSealing):
		s.logger.Warn().Err(err).Str("key", key).Msg("stored value cannot be opened, staying signed out")
		return "", nil
	default:
		return "", fmt.Errorf("read %s: %w", key, err)
	}
}

func (s *clientSessionService) Login(ctx context.Context, token string, userID int64) error {
	token = strings.TrimSpace(token)
	if token == "" || userID == 0 {
		return ErrInvalidSession
	}

	encodedToken, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("encode token: %w", err)
	}
	encodedUserID, err := json.Marshal(userID)
	if err != nil {
		return fmt.Errorf("encode user id: %w", err)
	}

	if err = s.store.Set(ctx, TokenKey, string(encodedToken)); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	if err = s.store.Set(ctx, UserIDKey, string(encodedUserID)); err != nil {
		return fmt.Errorf("persist user id: %w", err)
	}

	s.mu.Lock()
	s.session = models.Session{Token: token, UserID: userID}
	s.mu.Unlock()

	s.tokens.SetToken(token)
	return nil
}

func (s *clientSessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.session = models.Session{}
	s.mu.Unlock()
	s.tokens.SetToken("")

	var errs []error
	for _, key := range []string{TokenKey, UserIDKey} {
		if err := s.store.Delete(ctx, key); err != nil {
			s.logger.Err(err).Str("key", key).Msg("failed to delete stored credential")
			errs = append(errs, fmt.Errorf("delete %s: %w", key, err))
		}
	}

	return errors.Join(errs...)
}

func (s *clientSessionService) SignedIn() bool {
	return s.Session().SignedIn()
}

func (s *clientSessionService) Session() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session
}
