package service

import (
	"github.com/MKhiriev/go-vocab-trainer/internal/adapter"
	"github.com/MKhiriev/go-vocab-trainer/internal/logger"
	"github.com/MKhiriev/go-vocab-trainer/internal/store"
)

// ClientServices is the service layer handed to the navigation gate and the
// screens. Every user-bound service shares the one Session.
type ClientServices struct {
	Session      ClientSessionService
	Auth         ClientAuthService
	Dictionaries ClientDictionaryService
	Words        ClientWordService
	Profile      ClientProfileService
}

func NewClientServices(credentials store.CredentialStore, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	session := NewClientSessionService(credentials, serverAdapter, logger)

	return &ClientServices{
		Session:      session,
		Auth:         NewClientAuthService(serverAdapter, session, logger),
		Dictionaries: NewClientDictionaryService(serverAdapter, session),
		Words:        NewClientWordService(serverAdapter),
		Profile:      NewClientProfileService(serverAdapter, session),
	}
}
