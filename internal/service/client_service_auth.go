package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vocab-trainer/internal/adapter"
	"github.com/MKhiriev/go-vocab-trainer/internal/logger"
	"github.com/MKhiriev/go-vocab-trainer/models"
)

type clientAuthService struct {
	adapter adapter.ServerAdapter
	session ClientSessionService
	logger  *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, session ClientSessionService, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{adapter: serverAdapter, session: session, logger: logger}
}

func (a *clientAuthService) Authenticate(ctx context.Context, username, password string) error {
	resp, err := a.adapter.Authenticate(ctx, models.Credentials{Username: username, Password: password})
	if err != nil {
		a.logger.Warn().Err(err).Str("username", username).Msg("authentication failed")
		if errors.Is(err, adapter.ErrInvalidCredentials) {
			return fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
		}
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	if err = a.session.Login(ctx, resp.Token, resp.UserID); err != nil {
		// a 2xx without token/user id is a broken server, not bad credentials
		return fmt.Errorf("%w: sign in: %w", ErrServerUnavailable, err)
	}

	a.logger.Info().Int64("user_id", resp.UserID).Msg("signed in")
	return nil
}
