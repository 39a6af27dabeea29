package store

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-vocab-trainer/models"
)

type memoryVocabularyStorage struct {
	mu sync.RWMutex

	users        map[int64]models.User
	tokens       map[string]int64
	dictionaries map[int64]models.Dictionary
	words        map[int64]models.Word

	lastUserID       int64
	lastDictionaryID int64
	lastWordID       int64

	now func() time.Time
}

// NewMemoryVocabularyStorage returns a process-local [VocabularyStorage].
// Everything is lost when the process exits.
func NewMemoryVocabularyStorage() VocabularyStorage {
	return &memoryVocabularyStorage{
		users:        make(map[int64]models.User),
		tokens:       make(map[string]int64),
		dictionaries: make(map[int64]models.Dictionary),
		words:        make(map[int64]models.Word),
		now:          time.Now,
	}
}

func (m *memoryVocabularyStorage) SaveUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, u := range m.users {
		if u.Username == user.Username {
			return models.User{}, ErrLoginAlreadyExists
		}
	}

	m.lastUserID++
	user.ID = m.lastUserID
	m.users[user.ID] = user
	return user, nil
}

func (m *memoryVocabularyStorage) FindUserByUsername(_ context.Context, username string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return models.User{}, ErrNoUserWasFound
}

func (m *memoryVocabularyStorage) GetUser(_ context.Context, id int64) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return models.User{}, ErrNoUserWasFound
	}
	return u, nil
}

func (m *memoryVocabularyStorage) SaveToken(_ context.Context, token string, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[userID]; !ok {
		return ErrNoUserWasFound
	}
	m.tokens[token] = userID
	return nil
}

func (m *memoryVocabularyStorage) UserIDByToken(_ context.Context, token string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	userID, ok := m.tokens[token]
	if !ok {
		return 0, ErrTokenNotFound
	}
	return userID, nil
}

func (m *memoryVocabularyStorage) ListDictionaries(_ context.Context, ownerID int64) ([]models.Dictionary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]models.Dictionary, 0)
	for _, d := range m.dictionaries {
		if d.Owner == ownerID {
			result = append(result, m.withCountLocked(d))
		}
	}
	slices.SortFunc(result, func(a, b models.Dictionary) int { return cmp.Compare(a.ID, b.ID) })
	return result, nil
}

func (m *memoryVocabularyStorage) GetDictionary(_ context.Context, id int64) (models.Dictionary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	d, ok := m.dictionaries[id]
	if !ok {
		return models.Dictionary{}, ErrDictionaryNotFound
	}
	return m.withCountLocked(d), nil
}

func (m *memoryVocabularyStorage) withCountLocked(d models.Dictionary) models.Dictionary {
	d.WordCount = 0
	for _, w := range m.words {
		if w.DictionaryID == d.ID {
			d.WordCount++
		}
	}
	return d
}

func (m *memoryVocabularyStorage) CreateDictionary(_ context.Context, dictionary models.Dictionary) (models.Dictionary, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[dictionary.Owner]; !ok {
		return models.Dictionary{}, ErrNoUserWasFound
	}

	m.lastDictionaryID++
	dictionary.ID = m.lastDictionaryID
	dictionary.WordCount = 0
	dictionary.CreatedAt = m.now().UTC().Truncate(time.Second)
	m.dictionaries[dictionary.ID] = dictionary
	return dictionary, nil
}

func (m *memoryVocabularyStorage) DeleteDictionary(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.dictionaries[id]; !ok {
		return ErrDictionaryNotFound
	}
	delete(m.dictionaries, id)
	for wordID, w := range m.words {
		if w.DictionaryID == id {
			delete(m.words, wordID)
		}
	}
	return nil
}

func (m *memoryVocabularyStorage) ListWords(_ context.Context, dictionaryID int64) ([]models.Word, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.dictionaries[dictionaryID]; !ok {
		return nil, ErrDictionaryNotFound
	}

	result := make([]models.Word, 0)
	for _, w := range m.words {
		if w.DictionaryID == dictionaryID {
			result = append(result, w)
		}
	}
	slices.SortFunc(result, func(a, b models.Word) int { return cmp.Compare(a.ID, b.ID) })
	return result, nil
}

func (m *memoryVocabularyStorage) GetWord(_ context.Context, id int64) (models.Word, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	w, ok := m.words[id]
	if !ok {
		return models.Word{}, ErrWordNotFound
	}
	return w, nil
}

func (m *memoryVocabularyStorage) CreateWord(_ context.Context, word models.Word) (models.Word, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.dictionaries[word.DictionaryID]; !ok {
		return models.Word{}, ErrDictionaryNotFound
	}

	m.lastWordID++
	word.ID = m.lastWordID
	m.words[word.ID] = word
	return word, nil
}

func (m *memoryVocabularyStorage) UpdateWord(_ context.Context, word models.Word) (models.Word, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.words[word.ID]; !ok {
		return models.Word{}, ErrWordNotFound
	}
	if _, ok := m.dictionaries[word.DictionaryID]; !ok {
		return models.Word{}, ErrDictionaryNotFound
	}
	m.words[word.ID] = word
	return word, nil
}

func (m *memoryVocabularyStorage) DeleteWord(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.words[id]; !ok {
		return ErrWordNotFound
	}
	delete(m.words, id)
	return nil
}
