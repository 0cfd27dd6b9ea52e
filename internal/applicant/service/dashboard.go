package service

import (
	"cmp"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"maricheck/internal/applicant/models"
	dErrors "maricheck/pkg/domain-errors"
	audit "maricheck/pkg/platform/audit"
)

const (
	recentLimit     = 5
	timestampLayout = "2006-01-02 15:04:05"
	dateLayout      = "2006-01-02"
)

// Dashboard gathers the admin overview with the counts and recent lists
// fetched concurrently.
func (s *Service) Dashboard(ctx context.Context) (dash *models.Dashboard, err error) {
	ctx, span := tracer.Start(ctx, "applicant.Dashboard")
	defer func() { finishSpan(span, err) }()

	dash = &models.Dashboard{}
	screening := []int{models.CrewStatusScreening.Code()}
	approved := []int{models.CrewStatusApproved.Code()}
	staffScreening := []int{models.StaffStatusScreening.Code()}
	staffApproved := []int{models.StaffStatusApproved.Code()}

	g, gctx := errgroup.WithContext(ctx)
	count := func(dst *int, fn func(context.Context, models.ListFilter) (int, error), filter models.ListFilter) {
		g.Go(func() error {
			n, err := fn(gctx, filter)
			if err != nil {
				return err
			}
			*dst = n
			return nil
		})
	}
	count(&dash.TotalCrew, s.crew.Count, models.ListFilter{})
	count(&dash.TotalStaff, s.staff.Count, models.ListFilter{})
	count(&dash.CrewScreening, s.crew.Count, models.ListFilter{Statuses: screening})
	count(&dash.StaffScreening, s.staff.Count, models.ListFilter{Statuses: staffScreening})
	count(&dash.CrewApproved, s.crew.Count, models.ListFilter{Statuses: approved})
	count(&dash.StaffApproved, s.staff.Count, models.ListFilter{Statuses: staffApproved})
	g.Go(func() error {
		recent, err := s.crew.List(gctx, models.ListFilter{Limit: recentLimit})
		dash.RecentCrew = recent
		return err
	})
	g.Go(func() error {
		recent, err := s.staff.List(gctx, models.ListFilter{Limit: recentLimit})
		dash.RecentStaff = recent
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load dashboard")
	}
	return dash, nil
}

var (
	crewExportHeader = []string{
		"ID", "Name", "Rank", "Passport", "Nationality", "Date of Birth",
		"Years Experience", "Mobile Number", "Email", "Status", "Profile Completion",
		"Created At", "Updated At",
	}
	staffExportHeader = []string{
		"ID", "Full Name", "Position Applying", "Department", "Location",
		"Years Experience", "Email/WhatsApp", "Mobile Number", "Status",
		"Created At", "Updated At",
	}
)

// ExportCrewCSV writes every crew member, oldest first.
func (s *Service) ExportCrewCSV(ctx context.Context, w io.Writer) (err error) {
	ctx, span := tracer.Start(ctx, "applicant.ExportCrewCSV")
	defer func() { finishSpan(span, err) }()
	defer s.metrics.ObserveExport(categoryCrew, time.Now())

	members, err := s.crew.List(ctx, models.ListFilter{})
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to list crew members")
	}
	slices.SortFunc(members, func(a, b *models.CrewMember) int { return cmp.Compare(a.ID, b.ID) })

	cw := csv.NewWriter(w)
	if err := cw.Write(crewExportHeader); err != nil {
		return fmt.Errorf("write crew export header: %w", err)
	}
	for _, m := range members {
		err := cw.Write([]string{
			m.ID.String(), m.Name, m.Rank, m.Passport.String(), m.Nationality,
			m.DateOfBirth.Format(dateLayout), strconv.Itoa(m.YearsExperience),
			m.MobileNumber, m.Email, m.Status.Name(),
			strconv.Itoa(m.CompletionPercentage()) + "%",
			m.CreatedAt.UTC().Format(timestampLayout), m.UpdatedAt.UTC().Format(timestampLayout),
		})
		if err != nil {
			return fmt.Errorf("write crew export row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush crew export: %w", err)
	}

	s.emitAudit(ctx, audit.EventExported, "crew", strconv.Itoa(len(members)), "csv")
	return nil
}

// ExportStaffCSV writes every staff applicant, oldest first.
func (s *Service) ExportStaffCSV(ctx context.Context, w io.Writer) (err error) {
	ctx, span := tracer.Start(ctx, "applicant.ExportStaffCSV")
	defer func() { finishSpan(span, err) }()
	defer s.metrics.ObserveExport(categoryStaff, time.Now())

	members, err := s.staff.List(ctx, models.ListFilter{})
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to list staff members")
	}
	slices.SortFunc(members, func(a, b *models.StaffMember) int { return cmp.Compare(a.ID, b.ID) })

	cw := csv.NewWriter(w)
	if err := cw.Write(staffExportHeader); err != nil {
		return fmt.Errorf("write staff export header: %w", err)
	}
	for _, m := range members {
		err := cw.Write([]string{
			m.ID.String(), m.FullName, m.PositionApplying, m.Department, m.Location,
			strconv.Itoa(m.YearsExperience), m.EmailOrWhatsApp, m.MobileNumber, m.Status.Name(),
			m.CreatedAt.UTC().Format(timestampLayout), m.UpdatedAt.UTC().Format(timestampLayout),
		})
		if err != nil {
			return fmt.Errorf("write staff export row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush staff export: %w", err)
	}

	s.emitAudit(ctx, audit.EventExported, "staff", strconv.Itoa(len(members)), "csv")
	return nil
}
