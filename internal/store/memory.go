package store

import (
	"context"
	"sync"

	"github.com/WorthlessAI/Procastinator/internal/domain"
)

// MemoryStore is a mutex-guarded map from username to task id to task.
// Lifetime = process lifetime.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[string]map[int64]domain.Task
}

// NewMemoryStore returns an empty in-process task store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[string]map[int64]domain.Task)}
}

func (s *MemoryStore) Put(_ context.Context, user string, t domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	bucket, ok := s.users[user]
	if !ok {
		bucket = make(map[int64]domain.Task)
		s.users[user] = bucket
	}
	bucket[t.ID] = t
	return nil
}

func (s *MemoryStore) Get(_ context.Context, user string, id int64) (domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.users[user][id]
	if !ok {
		return domain.Task{}, ErrTaskNotFound
	}
	return t, nil
}

func (s *MemoryStore) ListByUser(_ context.Context, user string) ([]domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bucket := s.users[user]
	list := make([]domain.Task, 0, len(bucket))
	for _, t := range bucket {
		list = append(list, t)
	}
	return list, nil
}

func (s *MemoryStore) MarkDone(_ context.Context, user string, id int64) (domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.users[user][id]
	if !ok {
		return domain.Task{}, ErrTaskNotFound
	}
	t.Completed = true
	s.users[user][id] = t
	return t, nil
}

func (s *MemoryStore) Delete(_ context.Context, user string, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user][id]; !ok {
		return ErrTaskNotFound
	}
	delete(s.users[user], id)
	return nil
}
