package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-vocab-trainer/internal/logger"
	"github.com/MKhiriev/go-vocab-trainer/internal/store"
	"github.com/MKhiriev/go-vocab-trainer/models"
)

type vocabularyService struct {
	storage store.VocabularyStorage
	logger  *logger.Logger
}

func NewVocabularyService(storage store.VocabularyStorage, logger *logger.Logger) VocabularyService {
	return &vocabularyService{storage: storage, logger: logger}
}

func (v *vocabularyService) ListDictionaries(ctx context.Context, userID, ownerID int64) ([]models.Dictionary, error) {
	if ownerID != userID {
		return nil, ErrUnauthorizedAccessToDifferentUserData
	}
	return v.storage.ListDictionaries(ctx, ownerID)
}

func (v *vocabularyService) CreateDictionary(ctx context.Context, userID int64, req models.NewDictionaryRequest) (models.Dictionary, error) {
	if req.Owner != userID {
		return models.Dictionary{}, ErrUnauthorizedAccessToDifferentUserData
	}

	created, err := v.storage.CreateDictionary(ctx, models.Dictionary{Owner: req.Owner, Name: req.Name})
	if err != nil {
		return models.Dictionary{}, fmt.Errorf("error creating dictionary: %w", err)
	}
	logger.FromContext(ctx).Debug().Int64("id", created.ID).Msg("dictionary created")
	return created, nil
}

func (v *vocabularyService) DeleteDictionary(ctx context.Context, userID, id int64) error {
	if _, err := v.ownedDictionary(ctx, userID, id); err != nil {
		return err
	}
	return v.storage.DeleteDictionary(ctx, id)
}

func (v *vocabularyService) ListWords(ctx context.Context, userID, dictionaryID int64) ([]models.Word, error) {
	if _, err := v.ownedDictionary(ctx, userID, dictionaryID); err != nil {
		return nil, err
	}
	return v.storage.ListWords(ctx, dictionaryID)
}

func (v *vocabularyService) GetWord(ctx context.Context, userID, id int64) (models.Word, error) {
	return v.ownedWord(ctx, userID, id)
}

func (v *vocabularyService) CreateWord(ctx context.Context, userID int64, req models.NewWordRequest) (models.Word, error) {
	if _, err := v.ownedDictionary(ctx, userID, req.DictionaryID); err != nil {
		return models.Word{}, err
	}

	return v.storage.CreateWord(ctx, models.Word{
		DictionaryID: req.DictionaryID,
		SourceText:   req.SourceText,
		TargetText:   req.TargetText,
	})
}

func (v *vocabularyService) UpdateWord(ctx context.Context, userID int64, word models.Word) (models.Word, error) {
	if _, err := v.ownedWord(ctx, userID, word.ID); err != nil {
		return models.Word{}, err
	}
	// moving a word is allowed between the user's own dictionaries only
	if _, err := v.ownedDictionary(ctx, userID, word.DictionaryID); err != nil {
		return models.Word{}, err
	}
	return v.storage.UpdateWord(ctx, word)
}

func (v *vocabularyService) DeleteWord(ctx context.Context, userID, id int64) error {
	if _, err := v.ownedWord(ctx, userID, id); err != nil {
		return err
	}
	return v.storage.DeleteWord(ctx, id)
}

// ownedDictionary reports dictionaries of other users as missing.
func (v *vocabularyService) ownedDictionary(ctx context.Context, userID, id int64) (models.Dictionary, error) {
	d, err := v.storage.GetDictionary(ctx, id)
	if err != nil {
		return models.Dictionary{}, err
	}
	if d.Owner != userID {
		return models.Dictionary{}, store.ErrDictionaryNotFound
	}
	return d, nil
}

func (v *vocabularyService) ownedWord(ctx context.Context, userID, id int64) (models.Word, error) {
	w, err := v.storage.GetWord(ctx, id)
	if err != nil {
		return models.Word{}, err
	}
	if _, err = v.ownedDictionary(ctx, userID, w.DictionaryID); err != nil {
		if errors.Is(err, store.ErrDictionaryNotFound) {
			return models.Word{}, store.ErrWordNotFound
		}
		return models.Word{}, err
	}
	return w, nil
}

type userService struct {
	storage store.VocabularyStorage
}

func NewUserService(storage store.VocabularyStorage) UserService {
	return &userService{storage: storage}
}

// GetProfile returns the profile of id; users only see their own.
func (u *userService) GetProfile(ctx context.Context, userID, id int64) (models.UserProfile, error) {
	if id != userID {
		return models.UserProfile{}, store.ErrNoUserWasFound
	}
	user, err := u.storage.GetUser(ctx, id)
	if err != nil {
		return models.UserProfile{}, err
	}
	return user.Profile(), nil
}
