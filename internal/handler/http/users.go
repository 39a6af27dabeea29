package http

import (
	"net/http"

	"github.com/MKhiriev/go-vocab-trainer/internal/utils"
)

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	profile, err := h.services.UserService.GetProfile(r.Context(), currentUserID(r), id)
	if err != nil {
		writeError(w, r, err, "error reading user")
		return
	}

	_, _ = utils.WriteJSON(w, profile, http.StatusOK)
}
