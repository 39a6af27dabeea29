package controller

import (
	"context"

	"github.com/MKhiriev/go-vocab-trainer/internal/service"
	"github.com/MKhiriev/go-vocab-trainer/models"
)

// DictionaryList is the dictionary list of the signed-in user; drafts are
// dictionary names.
type DictionaryList = ListController[models.Dictionary, string]

// NewDictionaryList binds a list controller to the dictionaries service.
func NewDictionaryList(parent context.Context, dictionaries service.ClientDictionaryService) *DictionaryList {
	return NewListController[models.Dictionary, string](parent, dictionaries)
}

// WordDraft is a word pair that has not been sent yet.
type WordDraft struct {
	SourceText string
	TargetText string
}

// WordList is the word list of one dictionary.
type WordList = ListController[models.Word, WordDraft]

// NewWordList binds a list controller to the words of dictionaryID.
func NewWordList(parent context.Context, words service.ClientWordService, dictionaryID int64) *WordList {
	return NewListController[models.Word, WordDraft](parent, dictionaryWords{words: words, dictionaryID: dictionaryID})
}

type dictionaryWords struct {
	words        service.ClientWordService
	dictionaryID int64
}

func (d dictionaryWords) List(ctx context.Context) ([]models.Word, error) {
	return d.words.List(ctx, d.dictionaryID)
}

func (d dictionaryWords) Create(ctx context.Context, draft WordDraft) (models.Word, error) {
	return d.words.Create(ctx, d.dictionaryID, draft.SourceText, draft.TargetText)
}

func (d dictionaryWords) Delete(ctx context.Context, id int64) error {
	return d.words.Delete(ctx, id)
}
