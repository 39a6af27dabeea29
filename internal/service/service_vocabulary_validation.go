package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vocab-trainer/internal/validators"
	"github.com/MKhiriev/go-vocab-trainer/models"
)

// VocabularyServiceWrapper decorates a VocabularyService.
type VocabularyServiceWrapper interface {
	Wrap(VocabularyService) VocabularyService
}

// VocabularyValidationService rejects malformed requests before they reach
// the wrapped service.
type VocabularyValidationService struct {
	inner     VocabularyService
	validator validators.Validator
}

func NewVocabularyValidationService() VocabularyServiceWrapper {
	return &VocabularyValidationService{
		validator: validators.NewVocabularyValidator(),
	}
}

func (v *VocabularyValidationService) Wrap(inner VocabularyService) VocabularyService {
	v.inner = inner
	return v
}

func (v *VocabularyValidationService) validate(ctx context.Context, obj any, fields ...string) error {
	if err := v.validator.Validate(ctx, obj, fields...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}

func (v *VocabularyValidationService) ListDictionaries(ctx context.Context, userID, ownerID int64) ([]models.Dictionary, error) {
	if ownerID <= 0 {
		return nil, fmt.Errorf("%w: owner_id is required", ErrInvalidDataProvided)
	}
	return v.inner.ListDictionaries(ctx, userID, ownerID)
}

func (v *VocabularyValidationService) CreateDictionary(ctx context.Context, userID int64, req models.NewDictionaryRequest) (models.Dictionary, error) {
	if err := v.validate(ctx, req); err != nil {
		return models.Dictionary{}, err
	}
	return v.inner.CreateDictionary(ctx, userID, req)
}

func (v *VocabularyValidationService) DeleteDictionary(ctx context.Context, userID, id int64) error {
	return v.inner.DeleteDictionary(ctx, userID, id)
}

func (v *VocabularyValidationService) ListWords(ctx context.Context, userID, dictionaryID int64) ([]models.Word, error) {
	if dictionaryID <= 0 {
		return nil, fmt.Errorf("%w: dictionary_id is required", ErrInvalidDataProvided)
	}
	return v.inner.ListWords(ctx, userID, dictionaryID)
}

func (v *VocabularyValidationService) GetWord(ctx context.Context, userID, id int64) (models.Word, error) {
	return v.inner.GetWord(ctx, userID, id)
}

func (v *VocabularyValidationService) CreateWord(ctx context.Context, userID int64, req models.NewWordRequest) (models.Word, error) {
	if err := v.validate(ctx, req); err != nil {
		return models.Word{}, err
	}
	return v.inner.CreateWord(ctx, userID, req)
}

func (v *VocabularyValidationService) UpdateWord(ctx context.Context, userID int64, word models.Word) (models.Word, error) {
	if err := v.validate(ctx, word); err != nil {
		return models.Word{}, err
	}
	return v.inner.UpdateWord(ctx, userID, word)
}

func (v *VocabularyValidationService) DeleteWord(ctx context.Context, userID, id int64) error {
	return v.inner.DeleteWord(ctx, userID, id)
}
