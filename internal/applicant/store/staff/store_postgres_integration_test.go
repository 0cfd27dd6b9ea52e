//go:build integration

package staff_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"maricheck/internal/applicant/models"
	"maricheck/internal/applicant/store/staff"
	"maricheck/internal/platform/postgres"
	"maricheck/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *staff.PostgresStore
	ctx      context.Context
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T(), postgres.Schema)
	s.store = staff.NewPostgres(s.postgres.DB)
	s.ctx = context.Background()
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.Truncate(s.ctx, "staff_members"))
}

func (s *PostgresStoreSuite) TestLifecycle() {
	now := time.Now().UTC().Truncate(time.Microsecond)
	m, err := models.NewStaffMember(models.StaffRegistration{
		FullName:         "Priya Shah",
		EmailOrWhatsApp:  "priya@example.com",
		PositionApplying: "HR Manager",
		Department:       "HR",
		YearsExperience:  8,
		Location:         "Chennai",
		AvailabilityDate: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		MobileNumber:     "+914400000000",
	}, now)
	s.Require().NoError(err)
	s.Require().NoError(m.AttachDocument(models.SlotResume, "resume/resume_0a1b2c3d_cv.pdf", now))
	s.Require().NoError(s.store.Create(s.ctx, m))

	updated, err := s.store.Execute(s.ctx, m.ID, nil, func(sm *models.StaffMember) {
		sm.ApplyAction(models.ActionReject, "position filled", now.Add(time.Minute))
	})
	s.Require().NoError(err)
	s.Equal(models.StaffStatusRejected, updated.Status)

	found, err := s.store.FindByID(s.ctx, m.ID)
	s.Require().NoError(err)
	s.Equal("position filled", found.AdminNotes)
	s.Equal("resume/resume_0a1b2c3d_cv.pdf", found.Documents[models.SlotResume])
	s.Equal(100, found.CompletionPercentage())

	rejected, err := s.store.List(s.ctx, models.ListFilter{Statuses: []int{-1}, Search: "manager"})
	s.Require().NoError(err)
	s.Len(rejected, 1)
}
