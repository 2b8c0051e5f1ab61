package quiz

import (
	"context"
	"errors"
	"sync"
)

var ErrQuizNotFound = errors.New("quiz not found")

// Store keeps parsed question sets keyed by quiz ID.
type Store interface {
	PutQuiz(ctx context.Context, q Quiz) error
	GetQuiz(ctx context.Context, id string) (Quiz, error)
}

type memoryStore struct {
	mu      sync.RWMutex
	quizzes map[string]Quiz
}

func NewInMemoryStore() Store {
	return &memoryStore{quizzes: map[string]Quiz{}}
}

func (m *memoryStore) PutQuiz(_ context.Context, q Quiz) error {
	if q.ID == "" {
		return errors.New("quiz id required")
	}
	q.Questions = cloneQuestions(q.Questions)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.quizzes[q.ID] = q
	return nil
}

func (m *memoryStore) GetQuiz(_ context.Context, id string) (Quiz, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	q, ok := m.quizzes[id]
	if !ok {
		return Quiz{}, ErrQuizNotFound
	}
	q.Questions = cloneQuestions(q.Questions)
	return q, nil
}
