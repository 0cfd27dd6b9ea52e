package crew

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"maricheck/internal/applicant/models"
	id "maricheck/pkg/domain"
	"maricheck/pkg/platform/sentinel"
)

// InMemoryStore keeps crew members in process memory. A single mutex guards
// every map so uniqueness checks and writes are atomic.
type InMemoryStore struct {
	mu        sync.RWMutex
	nextID    int64
	members   map[id.CrewID]*models.CrewMember
	passports map[id.Passport]id.CrewID
	tokens    map[string]id.CrewID
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{
		members:   make(map[id.CrewID]*models.CrewMember),
		passports: make(map[id.Passport]id.CrewID),
		tokens:    make(map[string]id.CrewID),
	}
}

// Create assigns the next id and stores the member. A taken passport or
// profile token yields sentinel.ErrAlreadyUsed.
func (s *InMemoryStore) Create(_ context.Context, member *models.CrewMember) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.passports[member.Passport]; taken {
		return fmt.Errorf("passport %s: %w", member.Passport, sentinel.ErrAlreadyUsed)
	}
	if member.ProfileToken != "" {
		if _, taken := s.tokens[member.ProfileToken]; taken {
			return fmt.Errorf("profile token: %w", sentinel.ErrAlreadyUsed)
		}
	}

	s.nextID++
	member.ID = id.CrewID(s.nextID)
	s.put(member.Clone())
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, crewID id.CrewID) (*models.CrewMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if m, ok := s.members[crewID]; ok {
		return m.Clone(), nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) FindByPassport(_ context.Context, passport id.Passport) (*models.CrewMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if crewID, ok := s.passports[passport]; ok {
		return s.members[crewID].Clone(), nil
	}
	return nil, sentinel.ErrNotFound
}

func (s *InMemoryStore) FindByProfileToken(_ context.Context, token string) (*models.CrewMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if crewID, ok := s.tokens[token]; ok && token != "" {
		return s.members[crewID].Clone(), nil
	}
	return nil, sentinel.ErrNotFound
}

// Update overwrites the stored member (last writer wins). Passport and profile
// token are not writable through Update.
func (s *InMemoryStore) Update(_ context.Context, member *models.CrewMember) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.replace(member)
}

// Execute runs validate then mutate against the stored member while holding
// the write lock, then persists the result.
func (s *InMemoryStore) Execute(_ context.Context, crewID id.CrewID, validate func(*models.CrewMember) error, mutate func(*models.CrewMember)) (*models.CrewMember, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.members[crewID]
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

// SetProfileTokenIfEmpty writes token only when the member has none yet and
// returns the token now on record.
func (s *InMemoryStore) SetProfileTokenIfEmpty(_ context.Context, crewID id.CrewID, token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.members[crewID]
	if !ok {
		return "", sentinel.ErrNotFound
	}
	if existing.ProfileToken != "" {
		return existing.ProfileToken, nil
	}
	if _, taken := s.tokens[token]; taken {
		return "", fmt.Errorf("profile token: %w", sentinel.ErrAlreadyUsed)
	}
	existing.ProfileToken = token
	s.tokens[token] = crewID
	return token, nil
}

// List returns matching members, newest first.
func (s *InMemoryStore) List(_ context.Context, filter models.ListFilter) ([]*models.CrewMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*models.CrewMember, 0, len(s.members))
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

func (s *InMemoryStore) put(member *models.CrewMember) {
	s.members[member.ID] = member
	s.passports[member.Passport] = member.ID
	if member.ProfileToken != "" {
		s.tokens[member.ProfileToken] = member.ID
	}
}

func (s *InMemoryStore) replace(member *models.CrewMember) error {
	existing, ok := s.members[member.ID]
	if !ok {
		return sentinel.ErrNotFound
	}
	updated := member.Clone()
	updated.Passport = existing.Passport
	updated.ProfileToken = existing.ProfileToken
	updated.CreatedAt = existing.CreatedAt
	s.members[member.ID] = updated
	return nil
}
