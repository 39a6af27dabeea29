package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-vocab-trainer/internal/app"
	"github.com/MKhiriev/go-vocab-trainer/internal/logger"
	"github.com/MKhiriev/go-vocab-trainer/internal/service"
	"github.com/MKhiriev/go-vocab-trainer/internal/utils"
)

const tokenScheme = "Token"

// auth accepts "Authorization: Token <value>", resolves the token to a user
// id via [service.AuthService.ParseToken] and stores it under
// [utils.UserIDCtxKey]. Missing or unknown tokens are answered with 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Debug().Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteDetail(w, app.MsgNoCredentials, http.StatusUnauthorized)
			return
		}

		token, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Debug().Err(err).Send()
			utils.WriteDetail(w, app.MsgInvalidToken, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		userID, err := h.services.AuthService.ParseToken(ctx, token)
		if err != nil {
			if !errors.Is(err, service.ErrInvalidToken) {
				log.Err(err).Msg("error occurred during parsing token")
			}
			utils.WriteDetail(w, app.MsgInvalidToken, http.StatusUnauthorized)
			return
		}

		userLog := log.With().Int64("user_id", userID).Logger()
		ctx = context.WithValue(userLog.WithContext(ctx), utils.UserIDCtxKey, userID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the value of a "Token <value>" header.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	scheme, token, found := strings.Cut(strings.TrimLeft(authHeader, " "), " ")
	if !found || scheme != tokenScheme {
		return "", ErrInvalidAuthorizationHeader
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrEmptyToken
	}
	return token, nil
}
