package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"maricheck/internal/applicant/metrics"
	"maricheck/internal/applicant/models"
	id "maricheck/pkg/domain"
	dErrors "maricheck/pkg/domain-errors"
	audit "maricheck/pkg/platform/audit"
	"maricheck/pkg/platform/device"
	"maricheck/pkg/platform/sentinel"
	txcontext "maricheck/pkg/platform/tx"
	"maricheck/pkg/requestcontext"
)

type CrewStore interface {
	Create(ctx context.Context, member *models.CrewMember) error
	FindByID(ctx context.Context, crewID id.CrewID) (*models.CrewMember, error)
	FindByPassport(ctx context.Context, passport id.Passport) (*models.CrewMember, error)
	Execute(ctx context.Context, crewID id.CrewID, validate func(*models.CrewMember) error, mutate func(*models.CrewMember)) (*models.CrewMember, error)
	SetProfileTokenIfEmpty(ctx context.Context, crewID id.CrewID, token string) (string, error)
	List(ctx context.Context, filter models.ListFilter) ([]*models.CrewMember, error)
	Count(ctx context.Context, filter models.ListFilter) (int, error)
}

type StaffStore interface {
	Create(ctx context.Context, member *models.StaffMember) error
	FindByID(ctx context.Context, staffID id.StaffID) (*models.StaffMember, error)
	Execute(ctx context.Context, staffID id.StaffID, validate func(*models.StaffMember) error, mutate func(*models.StaffMember)) (*models.StaffMember, error)
	List(ctx context.Context, filter models.ListFilter) ([]*models.StaffMember, error)
	Count(ctx context.Context, filter models.ListFilter) (int, error)
}

// FileStore persists uploaded documents and returns their storage reference.
type FileStore interface {
	Save(ctx context.Context, r io.Reader, originalName, category string) (string, error)
	Delete(ctx context.Context, ref string) error
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Upload is one file submitted for a document slot.
type Upload struct {
	Slot     models.Slot
	Filename string
	Content  io.Reader
}

const (
	categoryCrew  = "crew"
	categoryStaff = "staff"
)

var tracer = otel.Tracer("maricheck/internal/applicant/service")

// Service orchestrates applicant intake, private profile access and admin review.
type Service struct {
	crew           CrewStore
	staff          StaffStore
	files          FileStore
	tx             txcontext.Manager
	logger         *slog.Logger
	metrics        *metrics.Metrics
	auditPublisher AuditPublisher
	entropy        io.Reader
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

// WithTx groups the create-then-issue-token steps of a registration.
func WithTx(manager txcontext.Manager) Option {
	return func(s *Service) {
		if manager != nil {
			s.tx = manager
		}
	}
}

func WithFileStore(files FileStore) Option {
	return func(s *Service) {
		s.files = files
	}
}

// WithEntropy replaces crypto/rand as the profile token randomness source.
func WithEntropy(r io.Reader) Option {
	return func(s *Service) {
		s.entropy = r
	}
}

func New(crew CrewStore, staff StaffStore, opts ...Option) *Service {
	s := &Service{
		crew:   crew,
		staff:  staff,
		tx:     txcontext.Noop{},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// validateUploads checks every upload against the slot table before anything
// is written. allowed narrows the accepted slots; nil accepts the whole table.
func validateUploads(specs []models.SlotSpec, allowed []models.Slot, uploads []Upload) error {
	for _, u := range uploads {
		spec, ok := models.LookupSlot(specs, u.Slot)
		if !ok || (allowed != nil && !slices.Contains(allowed, u.Slot)) {
			return dErrors.New(dErrors.CodeValidation, "document "+string(u.Slot)+" cannot be uploaded here")
		}
		if !spec.AllowsFile(u.Filename) {
			return dErrors.New(dErrors.CodeValidation, spec.DisplayName+" has an unsupported file type")
		}
	}
	return nil
}

type storedUpload struct {
	slot models.Slot
	ref  string
}

func (s *Service) storeUploads(ctx context.Context, category string, uploads []Upload) ([]storedUpload, error) {
	if len(uploads) == 0 {
		return nil, nil
	}
	if s.files == nil {
		return nil, dErrors.New(dErrors.CodeInternal, "document storage is not configured")
	}
	stored := make([]storedUpload, 0, len(uploads))
	for _, u := range uploads {
		ref, err := s.files.Save(ctx, u.Content, u.Filename, category)
		if err != nil {
			s.logger.ErrorContext(ctx, "failed to store document",
				"slot", u.Slot,
				"stored_before_failure", len(stored),
				"error", err,
				"request_id", requestcontext.RequestID(ctx),
			)
			s.discardUploads(ctx, stored)
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to store document")
		}
		stored = append(stored, storedUpload{slot: u.Slot, ref: ref})
		s.metrics.IncrementDocumentsStored(string(u.Slot))
	}
	return stored, nil
}

// discardUploads removes files whose record was never written.
func (s *Service) discardUploads(ctx context.Context, stored []storedUpload) {
	for _, u := range stored {
		if err := s.files.Delete(context.WithoutCancel(ctx), u.ref); err != nil {
			s.logger.WarnContext(ctx, "failed to remove orphaned document",
				"reference", u.ref,
				"error", err,
				"request_id", requestcontext.RequestID(ctx),
			)
		}
	}
}

func (s *Service) emitAudit(ctx context.Context, event audit.AuditEvent, subject, decision, reason string) {
	if s.auditPublisher == nil {
		return
	}
	err := s.auditPublisher.Emit(ctx, audit.Event{
		Subject:   subject,
		Action:    string(event),
		Decision:  decision,
		Reason:    reason,
		RequestID: requestcontext.RequestID(ctx),
		ActorID:   requestcontext.Username(ctx),
		ClientIP:  requestcontext.ClientIP(ctx),
		Device:    device.ParseUserAgent(requestcontext.UserAgent(ctx)),
	})
	if err != nil {
		s.logger.WarnContext(ctx, "failed to emit audit event",
			"event", event,
			"subject", subject,
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
	}
}

func finishSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// translate maps store facts to coded errors. Already coded errors pass through.
func translate(err error, notFound, internal string) error {
	if _, ok := dErrors.CodeOf(err); ok {
		return err
	}
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, notFound)
	case errors.Is(err, context.DeadlineExceeded):
		return dErrors.Wrap(err, dErrors.CodeTimeout, internal)
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, internal)
	}
}

func crewSubject(crewID id.CrewID) string    { return "crew:" + crewID.String() }
func staffSubject(staffID id.StaffID) string { return "staff:" + staffID.String() }
