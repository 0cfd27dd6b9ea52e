package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"maricheck/internal/applicant/models"
	id "maricheck/pkg/domain"
	dErrors "maricheck/pkg/domain-errors"
	audit "maricheck/pkg/platform/audit"
	"maricheck/pkg/platform/sentinel"
	"maricheck/pkg/requestcontext"
)

const invalidProfileLink = "invalid or expired profile link"

// RegisterCrew creates a Registered crew member with the core documents
// attached and issues its profile token. A taken passport is rejected before
// any file is stored.
func (s *Service) RegisterCrew(ctx context.Context, reg models.CrewRegistration, uploads []Upload) (member *models.CrewMember, err error) {
	ctx, span := tracer.Start(ctx, "applicant.RegisterCrew")
	defer func() { finishSpan(span, err) }()
	defer s.metrics.ObserveRegistration(categoryCrew, time.Now())

	now := requestcontext.Now(ctx)
	member, err = models.NewCrewMember(reg, now)
	if err != nil {
		return nil, err
	}

	switch _, findErr := s.crew.FindByPassport(ctx, member.Passport); {
	case findErr == nil:
		return nil, dErrors.New(dErrors.CodeConflict, "a crew member with this passport number already exists")
	case !errors.Is(findErr, sentinel.ErrNotFound):
		return nil, dErrors.Wrap(findErr, dErrors.CodeInternal, "failed to check passport")
	}

	if err := validateUploads(models.CrewSlots(), models.CrewRegistrationSlots(), uploads); err != nil {
		return nil, err
	}
	stored, err := s.storeUploads(ctx, categoryCrew, uploads)
	if err != nil {
		return nil, err
	}
	for _, u := range stored {
		if err := member.AttachDocument(u.slot, u.ref, now); err != nil {
			s.discardUploads(ctx, stored)
			return nil, err
		}
	}

	var issued bool
	err = s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.crew.Create(ctx, member); err != nil {
			if errors.Is(err, sentinel.ErrAlreadyUsed) {
				return dErrors.New(dErrors.CodeConflict, "a crew member with this passport number already exists")
			}
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save crew member")
		}
		var tokenErr error
		issued, tokenErr = s.issueToken(ctx, member)
		return tokenErr
	})
	if err != nil {
		s.discardUploads(ctx, stored)
		return nil, err
	}
	if issued {
		s.tokenIssued(ctx, member.ID)
	}

	span.SetAttributes(attribute.Int64("crew.id", int64(member.ID)))
	s.logger.InfoContext(ctx, "crew member registered",
		"crew_id", member.ID,
		"documents", len(stored),
		"request_id", requestcontext.RequestID(ctx),
	)
	s.emitAudit(ctx, audit.EventCrewRegistered, crewSubject(member.ID), member.Status.Name(), "")
	s.metrics.IncrementRegistrations(categoryCrew)
	return member, nil
}

// IssueProfileToken returns the crew member's profile token, minting and
// persisting one on first use.
func (s *Service) IssueProfileToken(ctx context.Context, crewID id.CrewID) (token string, err error) {
	ctx, span := tracer.Start(ctx, "applicant.IssueProfileToken")
	defer func() { finishSpan(span, err) }()

	member, err := s.crew.FindByID(ctx, crewID)
	if err != nil {
		return "", translate(err, "crew member not found", "failed to load crew member")
	}
	issued, err := s.issueToken(ctx, member)
	if err != nil {
		return "", err
	}
	if issued {
		s.tokenIssued(ctx, member.ID)
	}
	return member.ProfileToken, nil
}

// issueToken sets member.ProfileToken to the token on record, writing a new
// one only when none exists. Concurrent issuers converge on the first write.
// issued reports whether this call wrote the token; callers announce it once
// the surrounding transaction has committed.
func (s *Service) issueToken(ctx context.Context, member *models.CrewMember) (issued bool, err error) {
	if member.HasProfileToken() {
		return false, nil
	}
	candidate, err := models.NewProfileToken(member.ID, member.Passport, s.entropy)
	if err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to generate profile token")
	}
	token, err := s.crew.SetProfileTokenIfEmpty(ctx, member.ID, candidate)
	if err != nil {
		return false, translate(err, "crew member not found", "failed to save profile token")
	}
	member.ProfileToken = token
	return token == candidate, nil
}

func (s *Service) tokenIssued(ctx context.Context, crewID id.CrewID) {
	s.metrics.IncrementProfileTokensIssued()
	s.emitAudit(ctx, audit.EventProfileTokenIssued, crewSubject(crewID), "issued", "")
}

// TrackCrew is the public status lookup by passport number.
func (s *Service) TrackCrew(ctx context.Context, passport string) (member *models.CrewMember, err error) {
	ctx, span := tracer.Start(ctx, "applicant.TrackCrew")
	defer func() { finishSpan(span, err) }()

	p := id.NormalizePassport(passport)
	if p == "" {
		return nil, dErrors.New(dErrors.CodeValidation, "passport is required")
	}
	member, err = s.crew.FindByPassport(ctx, p)
	if err != nil {
		return nil, translate(err, "no crew member found with this passport number", "failed to look up passport")
	}
	s.emitAudit(ctx, audit.EventApplicationTracked, crewSubject(member.ID), member.Status.Name(), "")
	return member, nil
}

// OpenPrivateProfile grants bearer access to a crew member's private page.
// An unknown id and a wrong token fail identically.
func (s *Service) OpenPrivateProfile(ctx context.Context, crewID id.CrewID, token string) (member *models.CrewMember, err error) {
	ctx, span := tracer.Start(ctx, "applicant.OpenPrivateProfile")
	defer func() { finishSpan(span, err) }()

	member, err = s.crew.FindByID(ctx, crewID)
	if err != nil && !errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load crew member")
	}
	if err != nil || !member.MatchesProfileToken(token) {
		return nil, s.denyProfile(ctx, crewID)
	}
	s.emitAudit(ctx, audit.EventProfileAccessed, crewSubject(crewID), "granted", "")
	return member, nil
}

func (s *Service) denyProfile(ctx context.Context, crewID id.CrewID) error {
	s.metrics.IncrementProfileAccessDenied()
	s.logger.WarnContext(ctx, "profile access denied",
		"crew_id", crewID,
		"request_id", requestcontext.RequestID(ctx),
	)
	s.emitAudit(ctx, audit.EventProfileDenied, crewSubject(crewID), "denied", invalidProfileLink)
	return dErrors.New(dErrors.CodeNotFound, invalidProfileLink)
}

// UploadCrewDocuments fills document slots from the private profile page and
// returns the display names of the updated slots. updated_at only moves when
// at least one file was stored.
func (s *Service) UploadCrewDocuments(ctx context.Context, crewID id.CrewID, token string, uploads []Upload) (member *models.CrewMember, updated []string, err error) {
	ctx, span := tracer.Start(ctx, "applicant.UploadCrewDocuments")
	defer func() { finishSpan(span, err) }()

	member, err = s.OpenPrivateProfile(ctx, crewID, token)
	if err != nil {
		return nil, nil, err
	}
	if err := validateUploads(models.CrewSlots(), nil, uploads); err != nil {
		return nil, nil, err
	}
	if len(uploads) == 0 {
		return member, nil, nil
	}

	stored, err := s.storeUploads(ctx, categoryCrew, uploads)
	if err != nil {
		return nil, nil, err
	}

	now := requestcontext.Now(ctx)
	member, err = s.crew.Execute(ctx, crewID,
		func(c *models.CrewMember) error {
			if !c.MatchesProfileToken(token) {
				return sentinel.ErrNotFound
			}
			return nil
		},
		func(c *models.CrewMember) {
			for _, u := range stored {
				_ = c.AttachDocument(u.slot, u.ref, now)
			}
		},
	)
	if err != nil {
		s.discardUploads(ctx, stored)
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, nil, s.denyProfile(ctx, crewID)
		}
		return nil, nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save documents")
	}

	specs := models.CrewSlots()
	for _, u := range stored {
		spec, _ := models.LookupSlot(specs, u.slot)
		updated = append(updated, spec.DisplayName)
	}
	s.emitAudit(ctx, audit.EventDocumentsUploaded, crewSubject(crewID), "stored", strings.Join(updated, ", "))
	return member, updated, nil
}

func (s *Service) GetCrew(ctx context.Context, crewID id.CrewID) (*models.CrewMember, error) {
	member, err := s.crew.FindByID(ctx, crewID)
	if err != nil {
		return nil, translate(err, "crew member not found", "failed to load crew member")
	}
	return member, nil
}

func (s *Service) ListCrew(ctx context.Context, filter models.ListFilter) ([]*models.CrewMember, error) {
	members, err := s.crew.List(ctx, filter)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list crew members")
	}
	return members, nil
}

// TransitionCrew applies an admin review action. Unknown actions change
// nothing and report applied=false.
func (s *Service) TransitionCrew(ctx context.Context, crewID id.CrewID, action models.Action, note string) (member *models.CrewMember, applied bool, err error) {
	ctx, span := tracer.Start(ctx, "applicant.TransitionCrew")
	defer func() { finishSpan(span, err) }()
	span.SetAttributes(attribute.String("action", string(action)))

	member, err = s.crew.FindByID(ctx, crewID)
	if err != nil {
		return nil, false, translate(err, "crew member not found", "failed to load crew member")
	}
	if !member.CanApplyAction(action) {
		s.ignoredAction(ctx, crewSubject(crewID), categoryCrew, action)
		return member, false, nil
	}

	now := requestcontext.Now(ctx)
	member, err = s.crew.Execute(ctx, crewID, nil, func(c *models.CrewMember) {
		applied = c.ApplyAction(action, note, now)
	})
	if err != nil {
		return nil, false, translate(err, "crew member not found", "failed to update crew status")
	}

	s.logger.InfoContext(ctx, "crew status changed",
		"crew_id", crewID,
		"action", action,
		"status", member.Status.Name(),
		"admin", requestcontext.Username(ctx),
		"request_id", requestcontext.RequestID(ctx),
	)
	s.emitAudit(ctx, audit.EventStatusChanged, crewSubject(crewID), member.Status.Name(), string(action))
	s.metrics.IncrementTransitions(categoryCrew, string(action), applied)
	return member, applied, nil
}

func (s *Service) ignoredAction(ctx context.Context, subject, variant string, action models.Action) {
	s.logger.WarnContext(ctx, "ignored unknown review action",
		"subject", subject,
		"action", action,
		"request_id", requestcontext.RequestID(ctx),
	)
	s.emitAudit(ctx, audit.EventStatusIgnored, subject, "ignored", string(action))
	s.metrics.IncrementTransitions(variant, "unknown", false)
}
