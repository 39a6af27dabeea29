package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-vocab-trainer/internal/app"
	"github.com/MKhiriev/go-vocab-trainer/internal/logger"
	"github.com/MKhiriev/go-vocab-trainer/internal/utils"
	"github.com/MKhiriev/go-vocab-trainer/models"
)

func (h *Handler) listWords(w http.ResponseWriter, r *http.Request) {
	dictionaryID, ok := queryID(w, r, "dictionary_id")
	if !ok {
		return
	}

	words, err := h.services.VocabularyService.ListWords(r.Context(), currentUserID(r), dictionaryID)
	if err != nil {
		writeError(w, r, err, "error listing words")
		return
	}

	_, _ = utils.WriteJSON(w, words, http.StatusOK)
}

func (h *Handler) getWord(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	word, err := h.services.VocabularyService.GetWord(r.Context(), currentUserID(r), id)
	if err != nil {
		writeError(w, r, err, "error reading word")
		return
	}

	_, _ = utils.WriteJSON(w, word, http.StatusOK)
}

// createWord takes the dictionary from the body and falls back to the
// dictionary_id query parameter; when both are given they must agree.
func (h *Handler) createWord(w http.ResponseWriter, r *http.Request) {
	var req models.NewWordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteDetail(w, app.MsgInvalidData, http.StatusBadRequest)
		return
	}

	if r.URL.Query().Has("dictionary_id") {
		dictionaryID, ok := queryID(w, r, "dictionary_id")
		if !ok {
			return
		}
		if req.DictionaryID == 0 {
			req.DictionaryID = dictionaryID
		}
		if req.DictionaryID != dictionaryID {
			utils.WriteDetail(w, app.MsgInvalidData, http.StatusBadRequest)
			return
		}
	}

	created, err := h.services.VocabularyService.CreateWord(r.Context(), currentUserID(r), req)
	if err != nil {
		writeError(w, r, err, "error creating word")
		return
	}

	_, _ = utils.WriteJSON(w, created, http.StatusCreated)
}

// updateWord replaces the whole word; the id in the path wins over the
// body.
func (h *Handler) updateWord(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var word models.Word
	if err := json.NewDecoder(r.Body).Decode(&word); err != nil {
		logger.FromRequest(r).Err(err).Msg("Invalid JSON was passed")
		utils.WriteDetail(w, app.MsgInvalidData, http.StatusBadRequest)
		return
	}
	word.ID = id

	updated, err := h.services.VocabularyService.UpdateWord(r.Context(), currentUserID(r), word)
	if err != nil {
		writeError(w, r, err, "error updating word")
		return
	}

	_, _ = utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteWord(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.services.VocabularyService.DeleteWord(r.Context(), currentUserID(r), id); err != nil {
		writeError(w, r, err, "error deleting word")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
