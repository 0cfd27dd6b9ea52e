package store

import (
	"context"
	"fmt"
	"sync"

	"maricheck/internal/admin/models"
	id "maricheck/pkg/domain"
	"maricheck/pkg/platform/sentinel"
)

// InMemoryStore keeps admin accounts in process memory.
type InMemoryStore struct {
	mu         sync.RWMutex
	nextID     int64
	byUsername map[string]*models.Admin
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{byUsername: make(map[string]*models.Admin)}
}

// Create assigns the next id. A taken username yields sentinel.ErrAlreadyUsed.
func (s *InMemoryStore) Create(_ context.Context, admin *models.Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byUsername[admin.Username]; taken {
		return fmt.Errorf("username %s: %w", admin.Username, sentinel.ErrAlreadyUsed)
	}
	s.nextID++
	admin.ID = id.AdminID(s.nextID)
	stored := *admin
	s.byUsername[admin.Username] = &stored
	return nil
}

func (s *InMemoryStore) FindByUsername(_ context.Context, username string) (*models.Admin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	admin, ok := s.byUsername[username]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	found := *admin
	return &found, nil
}

func (s *InMemoryStore) Count(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byUsername), nil
}
