package crew

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"maricheck/internal/applicant/models"
	id "maricheck/pkg/domain"
	"maricheck/pkg/platform/sentinel"
)

type InMemoryStoreSuite struct {
	suite.Suite
	store *InMemoryStore
	ctx   context.Context
	now   time.Time
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreSuite))
}

func (s *InMemoryStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
	s.now = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
}

func (s *InMemoryStoreSuite) newMember(name, passport string, at time.Time) *models.CrewMember {
	member, err := models.NewCrewMember(models.CrewRegistration{
		Name:             name,
		Rank:             "Bosun",
		Passport:         passport,
		Nationality:      "Indian",
		DateOfBirth:      time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		YearsExperience:  6,
		AvailabilityDate: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		MobileNumber:     "+919800000000",
		Email:            "sailor@example.com",
	}, at)
	s.Require().NoError(err)
	return member
}

func (s *InMemoryStoreSuite) create(name, passport string, at time.Time) *models.CrewMember {
	member := s.newMember(name, passport, at)
	s.Require().NoError(s.store.Create(s.ctx, member))
	return member
}

func (s *InMemoryStoreSuite) TestCreate() {
	s.Run("assigns sequential ids", func() {
		a := s.create("Arjun Nair", "P1000001", s.now)
		b := s.create("Ravi Kumar", "P1000002", s.now)
		s.Equal(id.CrewID(1), a.ID)
		s.Equal(id.CrewID(2), b.ID)
	})

	s.Run("duplicate passport rejected", func() {
		dup := s.newMember("Someone Else", "P1000001", s.now)
		err := s.store.Create(s.ctx, dup)
		s.ErrorIs(err, sentinel.ErrAlreadyUsed)
	})

	s.Run("stored copy is isolated from caller", func() {
		m := s.create("Isolated Person", "P1000003", s.now)
		m.Name = "Mutated"
		found, err := s.store.FindByID(s.ctx, m.ID)
		s.Require().NoError(err)
		s.Equal("Isolated Person", found.Name)
	})
}

func (s *InMemoryStoreSuite) TestFind() {
	m := s.create("Arjun Nair", "P2000001", s.now)

	s.Run("by id", func() {
		found, err := s.store.FindByID(s.ctx, m.ID)
		s.Require().NoError(err)
		s.Equal(m.Passport, found.Passport)
	})

	s.Run("by passport", func() {
		found, err := s.store.FindByPassport(s.ctx, id.Passport("P2000001"))
		s.Require().NoError(err)
		s.Equal(m.ID, found.ID)
	})

	s.Run("missing id", func() {
		_, err := s.store.FindByID(s.ctx, id.CrewID(999))
		s.ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("empty token never matches", func() {
		_, err := s.store.FindByProfileToken(s.ctx, "")
		s.ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *InMemoryStoreSuite) TestSetProfileTokenIfEmpty() {
	m := s.create("Arjun Nair", "P3000001", s.now)

	s.Run("first write wins", func() {
		got, err := s.store.SetProfileTokenIfEmpty(s.ctx, m.ID, "token-a")
		s.Require().NoError(err)
		s.Equal("token-a", got)

		got, err = s.store.SetProfileTokenIfEmpty(s.ctx, m.ID, "token-b")
		s.Require().NoError(err)
		s.Equal("token-a", got)

		found, err := s.store.FindByProfileToken(s.ctx, "token-a")
		s.Require().NoError(err)
		s.Equal(m.ID, found.ID)

		_, err = s.store.FindByProfileToken(s.ctx, "token-b")
		s.ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("unknown member", func() {
		_, err := s.store.SetProfileTokenIfEmpty(s.ctx, id.CrewID(404), "token-c")
		s.ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("concurrent issuers converge on one token", func() {
		other := s.create("Ravi Kumar", "P3000002", s.now)
		var (
			wg      sync.WaitGroup
			mu      sync.Mutex
			results = map[string]int{}
		)
		for i := range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				got, err := s.store.SetProfileTokenIfEmpty(s.ctx, other.ID, fmt.Sprintf("candidate-%d", i))
				if err != nil {
					return
				}
				mu.Lock()
				results[got]++
				mu.Unlock()
			}()
		}
		wg.Wait()
		s.Len(results, 1)
	})
}

func (s *InMemoryStoreSuite) TestUpdateAndExecute() {
	m := s.create("Arjun Nair", "P4000001", s.now)
	_, err := s.store.SetProfileTokenIfEmpty(s.ctx, m.ID, "kept-token")
	s.Require().NoError(err)

	s.Run("update cannot rewrite passport or token", func() {
		changed := m.Clone()
		changed.Passport = id.Passport("OTHER")
		changed.ProfileToken = "forged"
		changed.AdminNotes = "checked"
		s.Require().NoError(s.store.Update(s.ctx, changed))

		found, err := s.store.FindByID(s.ctx, m.ID)
		s.Require().NoError(err)
		s.Equal(id.Passport("P4000001"), found.Passport)
		s.Equal("kept-token", found.ProfileToken)
		s.Equal("checked", found.AdminNotes)
	})

	s.Run("execute applies mutation", func() {
		later := s.now.Add(time.Hour)
		updated, err := s.store.Execute(s.ctx, m.ID, nil, func(c *models.CrewMember) {
			c.ApplyAction(models.ActionApprove, "ok", later)
		})
		s.Require().NoError(err)
		s.Equal(models.CrewStatusApproved, updated.Status)
		s.Equal(later, updated.UpdatedAt)
	})

	s.Run("validation failure leaves record untouched", func() {
		_, err := s.store.Execute(s.ctx, m.ID, func(*models.CrewMember) error {
			return sentinel.ErrInvalidState
		}, func(c *models.CrewMember) {
			c.AdminNotes = "never written"
		})
		s.ErrorIs(err, sentinel.ErrInvalidState)

		found, err := s.store.FindByID(s.ctx, m.ID)
		s.Require().NoError(err)
		s.NotEqual("never written", found.AdminNotes)
	})

	s.Run("update of unknown member", func() {
		ghost := s.newMember("Ghost Person", "P4000009", s.now)
		ghost.ID = id.CrewID(77)
		s.ErrorIs(s.store.Update(s.ctx, ghost), sentinel.ErrNotFound)
	})
}

func (s *InMemoryStoreSuite) TestListAndCount() {
	first := s.create("Arjun Nair", "P5000001", s.now)
	second := s.create("Ravi Kumar", "P5000002", s.now.Add(time.Minute))
	third := s.create("Sam Fernandes", "P5000003", s.now.Add(time.Minute))
	_, err := s.store.Execute(s.ctx, second.ID, nil, func(c *models.CrewMember) {
		c.ApplyAction(models.ActionApprove, "", s.now)
	})
	s.Require().NoError(err)

	s.Run("newest first with id tiebreak", func() {
		all, err := s.store.List(s.ctx, models.ListFilter{})
		s.Require().NoError(err)
		s.Require().Len(all, 3)
		s.Equal([]id.CrewID{third.ID, second.ID, first.ID}, []id.CrewID{all[0].ID, all[1].ID, all[2].ID})
	})

	s.Run("status filter", func() {
		approved, err := s.store.List(s.ctx, models.ListFilter{Statuses: []int{models.CrewStatusApproved.Code()}})
		s.Require().NoError(err)
		s.Require().Len(approved, 1)
		s.Equal(second.ID, approved[0].ID)
	})

	s.Run("search is case insensitive across name and passport", func() {
		byName, err := s.store.List(s.ctx, models.ListFilter{Search: "  nair "})
		s.Require().NoError(err)
		s.Len(byName, 1)

		byPassport, err := s.store.List(s.ctx, models.ListFilter{Search: "p50000"})
		s.Require().NoError(err)
		s.Len(byPassport, 3)
	})

	s.Run("limit and count", func() {
		limited, err := s.store.List(s.ctx, models.ListFilter{Limit: 2})
		s.Require().NoError(err)
		s.Len(limited, 2)

		n, err := s.store.Count(s.ctx, models.ListFilter{Statuses: []int{models.CrewStatusRegistered.Code()}})
		s.Require().NoError(err)
		s.Equal(2, n)
	})
}
