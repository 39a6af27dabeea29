package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-vocab-trainer/internal/adapter"
	"github.com/MKhiriev/go-vocab-trainer/models"
)

type clientWordService struct {
	adapter adapter.ServerAdapter
}

func NewClientWordService(serverAdapter adapter.ServerAdapter) ClientWordService {
	return &clientWordService{adapter: serverAdapter}
}

func (w *clientWordService) List(ctx context.Context, dictionaryID int64) ([]models.Word, error) {
	words, err := w.adapter.ListWords(ctx, dictionaryID)
	if err != nil {
		return nil, fmt.Errorf("list words of dictionary %d: %w", dictionaryID, err)
	}
	return words, nil
}

func (w *clientWordService) Get(ctx context.Context, id int64) (models.Word, error) {
	word, err := w.adapter.GetWord(ctx, id)
	if err != nil {
		return models.Word{}, fmt.Errorf("get word %d: %w", id, err)
	}
	return word, nil
}

func (w *clientWordService) Create(ctx context.Context, dictionaryID int64, sourceText, targetText string) (models.Word, error) {
	word, err := w.adapter.CreateWord(ctx, models.NewWordRequest{
		DictionaryID: dictionaryID,
		SourceText:   sourceText,
		TargetText:   targetText,
	})
	if err != nil {
		return models.Word{}, fmt.Errorf("create word in dictionary %d: %w", dictionaryID, err)
	}
	return word, nil
}

func (w *clientWordService) Update(ctx context.Context, word models.Word) (models.Word, error) {
	updated, err := w.adapter.UpdateWord(ctx, word)
	if err != nil {
		return models.Word{}, fmt.Errorf("update word %d: %w", word.ID, err)
	}
	return updated, nil
}

func (w *clientWordService) Delete(ctx context.Context, id int64) error {
	if err := w.adapter.DeleteWord(ctx, id); err != nil {
		return fmt.Errorf("delete word %d: %w", id, err)
	}
	return nil
}
