//go:build integration

package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	platformpostgres "maricheck/internal/platform/postgres"
	audit "maricheck/pkg/platform/audit"
	auditpostgres "maricheck/pkg/platform/audit/store/postgres"
	txcontext "maricheck/pkg/platform/tx"
	"maricheck/pkg/testutil/containers"
)

type AuditStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *auditpostgres.Store
	ctx      context.Context
}

func TestAuditStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(AuditStoreSuite))
}

func (s *AuditStoreSuite) SetupSuite() {
	s.postgres = containers.NewPostgresContainer(s.T(), platformpostgres.Schema)
	s.store = auditpostgres.New(s.postgres.DB)
	s.ctx = context.Background()
}

func (s *AuditStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.Truncate(s.ctx, "audit_events"))
}

func (s *AuditStoreSuite) TestAppendAndList() {
	base := time.Date(2025, 2, 10, 8, 0, 0, 0, time.UTC)
	s.Require().NoError(s.store.Append(s.ctx, audit.Event{
		Timestamp: base,
		Subject:   "crew:1",
		Action:    string(audit.EventCrewRegistered),
		ClientIP:  "10.0.0.1",
	}))
	s.Require().NoError(s.store.Append(s.ctx, audit.Event{
		Timestamp: base.Add(time.Minute),
		Subject:   "crew:1",
		Action:    string(audit.EventStatusChanged),
		Decision:  "approve",
		ActorID:   "admin",
	}))
	s.Require().NoError(s.store.Append(s.ctx, audit.Event{
		Timestamp: base.Add(2 * time.Minute),
		Subject:   "staff:4",
		Action:    string(audit.EventStaffRegistered),
	}))

	events, err := s.store.ListBySubject(s.ctx, "crew:1")
	s.Require().NoError(err)
	s.Require().Len(events, 2)
	s.Equal(string(audit.EventStatusChanged), events[0].Action)
	s.Equal("admin", events[0].ActorID)
	s.Equal(audit.CategoryCompliance, events[1].Category)
	s.Equal("10.0.0.1", events[1].ClientIP)

	recent, err := s.store.ListRecent(s.ctx, 1)
	s.Require().NoError(err)
	s.Require().Len(recent, 1)
	s.Equal("staff:4", recent[0].Subject)
}

func (s *AuditStoreSuite) TestAppendJoinsTransaction() {
	manager := txcontext.NewPostgresManager(s.postgres.DB, 5*time.Second)
	errAbort := errors.New("abort")

	err := manager.RunInTx(s.ctx, func(ctx context.Context) error {
		s.Require().NoError(s.store.Append(ctx, audit.Event{
			Timestamp: time.Now(),
			Subject:   "crew:9",
			Action:    string(audit.EventProfileTokenIssued),
		}))
		return errAbort
	})
	s.ErrorIs(err, errAbort)

	events, err := s.store.ListBySubject(s.ctx, "crew:9")
	s.Require().NoError(err)
	s.Empty(events)
}
