package service

import (
	"github.com/MKhiriev/go-vocab-trainer/internal/logger"
	"github.com/MKhiriev/go-vocab-trainer/internal/store"
)

// Services is the service layer of the reference backend.
type Services struct {
	AuthService       AuthService
	VocabularyService VocabularyService
	UserService       UserService
}

func NewServices(storage store.VocabularyStorage, logger *logger.Logger) *Services {
	return &Services{
		AuthService:       NewAuthService(storage, logger),
		VocabularyService: NewVocabularyValidationService().Wrap(NewVocabularyService(storage, logger)),
		UserService:       NewUserService(storage),
	}
}
