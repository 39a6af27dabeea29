package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-vocab-trainer/internal/app"
	"github.com/MKhiriev/go-vocab-trainer/internal/logger"
	"github.com/MKhiriev/go-vocab-trainer/internal/service"
	"github.com/MKhiriev/go-vocab-trainer/internal/utils"
	"github.com/MKhiriev/go-vocab-trainer/models"
)

// obtainToken exchanges username/password for an opaque token. Every
// rejection is a 400 with non_field_errors, which is what the client keys
// its "Login error!" message on.
func (h *Handler) obtainToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteDetail(w, app.MsgInvalidData, http.StatusBadRequest)
		return
	}

	resp, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided), errors.Is(err, service.ErrWrongPassword):
			log.Debug().Err(err).Str("username", creds.Username).Msg("credentials rejected")
			_, _ = utils.WriteJSON(w, map[string][]string{"non_field_errors": {app.MsgInvalidCredentials}}, http.StatusBadRequest)
		default:
			log.Err(err).Msg("unexpected error occurred during token issue")
			utils.WriteDetail(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
		return
	}

	log.Debug().Int64("id", resp.UserID).Msg("token issued")
	_, _ = utils.WriteJSON(w, resp, http.StatusOK)
}
