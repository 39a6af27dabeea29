package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-vocab-trainer/internal/app"
	"github.com/MKhiriev/go-vocab-trainer/internal/service"
	"github.com/MKhiriev/go-vocab-trainer/internal/store"
)

type errorResponse struct {
	status int
	detail string
}

var errorStatusMap = map[error]errorResponse{
	service.ErrInvalidDataProvided:                   {http.StatusBadRequest, app.MsgInvalidData},
	service.ErrInvalidToken:                          {http.StatusUnauthorized, app.MsgInvalidToken},
	service.ErrUnauthorizedAccessToDifferentUserData: {http.StatusForbidden, app.MsgForbidden},

	store.ErrNoUserWasFound:     {http.StatusNotFound, app.MsgNotFound},
	store.ErrDictionaryNotFound: {http.StatusNotFound, app.MsgNotFound},
	store.ErrWordNotFound:       {http.StatusNotFound, app.MsgNotFound},
}

func responseFromError(err error) errorResponse {
	for target, resp := range errorStatusMap {
		if errors.Is(err, target) {
			return resp
		}
	}
	return errorResponse{http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)}
}
