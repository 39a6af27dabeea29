package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-vocab-trainer/internal/app"
	"github.com/MKhiriev/go-vocab-trainer/internal/logger"
	"github.com/MKhiriev/go-vocab-trainer/internal/utils"
	"github.com/MKhiriev/go-vocab-trainer/models"
)

func (h *Handler) listDictionaries(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := queryID(w, r, "owner_id")
	if !ok {
		return
	}

	dictionaries, err := h.services.VocabularyService.ListDictionaries(r.Context(), currentUserID(r), ownerID)
	if err != nil {
		writeError(w, r, err, "error listing dictionaries")
		return
	}

	_, _ = utils.WriteJSON(w, dictionaries, http.StatusOK)
}

func (h *Handler) createDictionary(w http.ResponseWriter, r *http.Request) {
	var req models.NewDictionaryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteDetail(w, app.MsgInvalidData, http.StatusBadRequest)
		return
	}

	created, err := h.services.VocabularyService.CreateDictionary(r.Context(), currentUserID(r), req)
	if err != nil {
		writeError(w, r, err, "error creating dictionary")
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) deleteDictionary(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.services.VocabularyService.DeleteDictionary(r.Context(), currentUserID(r), id); err != nil {
		writeError(w, r, err, "error deleting dictionary")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
