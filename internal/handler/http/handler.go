package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-vocab-trainer/internal/app"
	"github.com/MKhiriev/go-vocab-trainer/internal/logger"
	"github.com/MKhiriev/go-vocab-trainer/internal/service"
	"github.com/MKhiriev/go-vocab-trainer/internal/utils"
)

type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// writeError logs err and answers with the status and detail mapped to it.
func writeError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	resp := responseFromError(err)

	log := logger.FromRequest(r)
	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Msg(msg)
	} else {
		log.Debug().Err(err).Msg(msg)
	}

	utils.WriteDetail(w, resp.detail, resp.status)
}

// pathID parses the {id} URL parameter. Anything that is not a positive
// integer cannot name a resource and is answered with 404.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		utils.WriteDetail(w, app.MsgNotFound, http.StatusNotFound)
		return 0, false
	}
	return id, true
}

// queryID parses a required positive integer query parameter.
func queryID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.URL.Query().Get(name), 10, 64)
	if err != nil || id <= 0 {
		utils.WriteDetail(w, name+" is required", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

// currentUserID returns the id stored by the auth middleware.
func currentUserID(r *http.Request) int64 {
	userID, _ := utils.GetUserIDFromContext(r.Context())
	return userID
}
