package controller

import (
	"context"
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-vocab-trainer/internal/service"
	"github.com/MKhiriev/go-vocab-trainer/models"
)

// Quiz drills the words of one dictionary. Words are drawn uniformly at
// random with replacement, so the same word may come up twice in a row.
type Quiz struct {
	words        service.ClientWordService
	dictionaryID int64
	rnd          *rand.Rand

	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.RWMutex
	deck     []models.Word
	current  models.Word
	drawn    bool
	solved   bool
	revealed bool
}

// NewQuiz creates a quiz over dictionaryID. A nil rnd is replaced by a
// time-seeded generator.
func NewQuiz(parent context.Context, words service.ClientWordService, dictionaryID int64, rnd *rand.Rand) *Quiz {
	if rnd == nil {
		seed := uint64(time.Now().UnixNano())
		rnd = rand.New(rand.NewPCG(seed, seed>>1|1))
	}

	ctx, cancel := context.WithCancel(parent)
	return &Quiz{
		words:        words,
		dictionaryID: dictionaryID,
		rnd:          rnd,
		ctx:          ctx,
		cancel:       cancel,
	}
}

// Load fetches the word set once and draws the first word.
func (q *Quiz) Load() error {
	if q.ctx.Err() != nil {
		return ErrClosed
	}

	words, err := q.words.List(q.ctx, q.dictionaryID)

	q.mu.Lock()
	defer q.mu.Unlock()

	if q.ctx.Err() != nil {
		return ErrClosed
	}
	if err != nil {
		return err
	}

	q.deck = slices.Clone(words)
	q.drawn = false
	if len(q.deck) > 0 {
		q.drawLocked()
	}
	return nil
}

// Next starts a new round with a uniformly random word.
func (q *Quiz) Next() (models.Word, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.deck) == 0 {
		return models.Word{}, ErrEmptyDeck
	}
	q.drawLocked()
	return q.current, nil
}

func (q *Quiz) drawLocked() {
	q.current = q.deck[q.rnd.IntN(len(q.deck))]
	q.drawn = true
	q.solved = false
	q.revealed = false
}

// Current returns the word of the running round.
func (q *Quiz) Current() (models.Word, bool) {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.current, q.drawn
}

// Answer compares input with the target text ignoring case. A match solves
// the round; a mismatch changes nothing.
func (q *Quiz) Answer(input string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.drawn {
		return false
	}
	if strings.ToLower(input) == strings.ToLower(q.current.TargetText) {
		q.solved = true
	}
	return q.solved
}

// Reveal shows the target text without ending the round.
func (q *Quiz) Reveal() string {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.drawn {
		return ""
	}
	q.revealed = true
	return q.current.TargetText
}

func (q *Quiz) Solved() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.solved
}

func (q *Quiz) Revealed() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.revealed
}

// Empty reports whether the loaded dictionary has no words.
func (q *Quiz) Empty() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.deck) == 0
}

func (q *Quiz) Len() int {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return len(q.deck)
}

func (q *Quiz) Close() {
	q.cancel()
}
