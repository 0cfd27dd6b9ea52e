package staff

import (
	"context"
	"sort"
	"sync"

	"maricheck/internal/applicant/models"
	id "maricheck/pkg/domain"
	"maricheck/pkg/platform/sentinel"
)

// InMemoryStore keeps staff applicants in process memory.
type InMemoryStore struct {
	mu      sync.RWMutex
	nextID  int64
	members map[id.StaffID]*models.StaffMember
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{members: make(map[id.StaffID]*models.StaffMember)}
}

func (s *InMemoryStore) Create(_ context.Context, member *models.StaffMember) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	member.ID = id.StaffID(s.nextID)
	s.members[member.ID] = member.Clone()
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, staffID id.StaffID) (*models.StaffMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if m, ok := s.members[staffID]; ok {
		return m.Clone(), nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) Update(_ context.Context, member *models.StaffMember) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.replace(member)
}

func (s *InMemoryStore) Execute(_ context.Context, staffID id.StaffID, validate func(*models.StaffMember) error, mutate func(*models.StaffMember)) (*models.StaffMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.members[staffID]
	if !ok {
		return nil, sentinel.ErrNotFound
	}
	working := existing.Clone()
	if validate != nil {
		if err := validate(working); err != nil {
			return nil, err
		}
	}
	mutate(working)
	if err := s.replace(working); err != nil {
		return nil, err
	}
	return working.Clone(), nil
}

// List returns matching staff applicants, newest first.
func (s *InMemoryStore) List(_ context.Context, filter models.ListFilter) ([]*models.StaffMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.StaffMember, 0, len(s.members))
	for _, m := range s.members {
		if m.Matches(filter) {
			out = append(out, m.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (s *InMemoryStore) Count(_ context.Context, filter models.ListFilter) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for _, m := range s.members {
		if m.Matches(filter) {
			n++
		}
	}
	return n, nil
}

func (s *InMemoryStore) replace(member *models.StaffMember) error {
	existing, ok := s.members[member.ID]
	if !ok {
		return sentinel.ErrNotFound
	}
	updated := member.Clone()
	updated.CreatedAt = existing.CreatedAt
	s.members[member.ID] = updated
	return nil
}
