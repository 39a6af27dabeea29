package controller

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-vocab-trainer/internal/service"
	"github.com/MKhiriev/go-vocab-trainer/models"
)

// WordEditor fetches one word, edits it in memory and PUTs it back whole.
type WordEditor struct {
	words service.ClientWordService

	ctx    context.Context
	cancel context.CancelFunc

	mu     sync.RWMutex
	word   models.Word
	loaded bool
}

func NewWordEditor(parent context.Context, words service.ClientWordService) *WordEditor {
	ctx, cancel := context.WithCancel(parent)
	return &WordEditor{words: words, ctx: ctx, cancel: cancel}
}

func (e *WordEditor) Load(wordID int64) (models.Word, error) {
	if e.ctx.Err() != nil {
		return models.Word{}, ErrClosed
	}

	word, err := e.words.Get(e.ctx, wordID)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.ctx.Err() != nil {
		return models.Word{}, ErrClosed
	}
	if err != nil {
		return models.Word{}, err
	}

	e.word = word
	e.loaded = true
	return word, nil
}

func (e *WordEditor) SetSource(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.word.SourceText = text
}

func (e *WordEditor) SetTarget(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.word.TargetText = text
}

// Word returns the word as currently edited.
func (e *WordEditor) Word() models.Word {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.word
}

// Save sends the edited word and returns the dictionary id the caller should
// go back to and refresh.
func (e *WordEditor) Save() (int64, error) {
	if e.ctx.Err() != nil {
		return 0, ErrClosed
	}

	e.mu.RLock()
	word, loaded := e.word, e.loaded
	e.mu.RUnlock()
	if !loaded {
		return 0, ErrNotLoaded
	}

	saved, err := e.words.Update(e.ctx, word)

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.ctx.Err() != nil {
		return 0, ErrClosed
	}
	if err != nil {
		return 0, err
	}

	e.word = saved
	if saved.DictionaryID == 0 {
		return word.DictionaryID, nil
	}
	return saved.DictionaryID, nil
}

func (e *WordEditor) Close() {
	e.cancel()
}
