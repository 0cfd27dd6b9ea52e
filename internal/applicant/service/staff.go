package service

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"maricheck/internal/applicant/models"
	id "maricheck/pkg/domain"
	dErrors "maricheck/pkg/domain-errors"
	audit "maricheck/pkg/platform/audit"
	"maricheck/pkg/requestcontext"
)

// RegisterStaff creates a staff applicant in Screening with its optional
// resume and photo attached.
func (s *Service) RegisterStaff(ctx context.Context, reg models.StaffRegistration, uploads []Upload) (member *models.StaffMember, err error) {
	ctx, span := tracer.Start(ctx, "applicant.RegisterStaff")
	defer func() { finishSpan(span, err) }()
	defer s.metrics.ObserveRegistration(categoryStaff, time.Now())

	now := requestcontext.Now(ctx)
	member, err = models.NewStaffMember(reg, now)
	if err != nil {
		return nil, err
	}
	if err := validateUploads(models.StaffSlots(), nil, uploads); err != nil {
		return nil, err
	}
	stored, err := s.storeUploads(ctx, categoryStaff, uploads)
	if err != nil {
		return nil, err
	}
	for _, u := range stored {
		if err := member.AttachDocument(u.slot, u.ref, now); err != nil {
			s.discardUploads(ctx, stored)
			return nil, err
		}
	}

	if err := s.staff.Create(ctx, member); err != nil {
		s.discardUploads(ctx, stored)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save staff member")
	}

	span.SetAttributes(attribute.Int64("staff.id", int64(member.ID)))
	s.logger.InfoContext(ctx, "staff member registered",
		"staff_id", member.ID,
		"department", member.Department,
		"request_id", requestcontext.RequestID(ctx),
	)
	s.emitAudit(ctx, audit.EventStaffRegistered, staffSubject(member.ID), member.Status.Name(), "")
	s.metrics.IncrementRegistrations(categoryStaff)
	return member, nil
}

func (s *Service) GetStaff(ctx context.Context, staffID id.StaffID) (*models.StaffMember, error) {
	member, err := s.staff.FindByID(ctx, staffID)
	if err != nil {
		return nil, translate(err, "staff member not found", "failed to load staff member")
	}
	return member, nil
}

func (s *Service) ListStaff(ctx context.Context, filter models.ListFilter) ([]*models.StaffMember, error) {
	members, err := s.staff.List(ctx, filter)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list staff members")
	}
	return members, nil
}

// TransitionStaff applies an admin review action. flag and verified are not
// staff actions and, like unknown actions, report applied=false.
func (s *Service) TransitionStaff(ctx context.Context, staffID id.StaffID, action models.Action, note string) (member *models.StaffMember, applied bool, err error) {
	ctx, span := tracer.Start(ctx, "applicant.TransitionStaff")
	defer func() { finishSpan(span, err) }()
	span.SetAttributes(attribute.String("action", string(action)))

	member, err = s.staff.FindByID(ctx, staffID)
	if err != nil {
		return nil, false, translate(err, "staff member not found", "failed to load staff member")
	}
	if !member.CanApplyAction(action) {
		s.ignoredAction(ctx, staffSubject(staffID), categoryStaff, action)
		return member, false, nil
	}

	now := requestcontext.Now(ctx)
	member, err = s.staff.Execute(ctx, staffID, nil, func(m *models.StaffMember) {
		applied = m.ApplyAction(action, note, now)
	})
	if err != nil {
		return nil, false, translate(err, "staff member not found", "failed to update staff status")
	}

	s.logger.InfoContext(ctx, "staff status changed",
		"staff_id", staffID,
		"action", action,
		"status", member.Status.Name(),
		"admin", requestcontext.Username(ctx),
		"request_id", requestcontext.RequestID(ctx),
	)
	s.emitAudit(ctx, audit.EventStatusChanged, staffSubject(staffID), member.Status.Name(), string(action))
	s.metrics.IncrementTransitions(categoryStaff, string(action), applied)
	return member, applied, nil
}
