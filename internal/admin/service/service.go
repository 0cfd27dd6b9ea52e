package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"maricheck/internal/admin/metrics"
	"maricheck/internal/admin/models"
	"maricheck/internal/admin/secrets"
	dErrors "maricheck/pkg/domain-errors"
	audit "maricheck/pkg/platform/audit"
	"maricheck/pkg/platform/device"
	"maricheck/pkg/platform/sentinel"
	"maricheck/pkg/requestcontext"
)

type Store interface {
	Create(ctx context.Context, admin *models.Admin) error
	FindByUsername(ctx context.Context, username string) (*models.Admin, error)
	Count(ctx context.Context) (int, error)
}

// SessionIssuer signs a session for an authenticated admin.
type SessionIssuer interface {
	Issue(admin *models.Admin, now time.Time) (*models.Session, error)
}

type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

var tracer = otel.Tracer("maricheck/internal/admin/service")

var errInvalidCredentials = dErrors.New(dErrors.CodeUnauthorized, "Invalid username or password")

// Service authenticates administrators and issues their sessions.
type Service struct {
	store          Store
	sessions       SessionIssuer
	logger         *slog.Logger
	metrics        *metrics.Metrics
	auditPublisher AuditPublisher
	hashCost       int

	// decoyHash is compared against when the username is unknown so both
	// failure paths cost one bcrypt comparison.
	decoyOnce sync.Once
	decoyHash string
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

func WithAuditPublisher(p AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = p
	}
}

// WithHashCost sets the bcrypt cost for new passwords.
func WithHashCost(cost int) Option {
	return func(s *Service) {
		s.hashCost = cost
	}
}

func New(store Store, sessions SessionIssuer, opts ...Option) *Service {
	s := &Service{
		store:    store,
		sessions: sessions,
		logger:   slog.Default(),
		hashCost: secrets.DefaultCost,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Authenticate checks a username and password. Unknown users and wrong
// passwords produce the same error.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*models.Admin, error) {
	username = models.NormalizeUsername(username)
	admin, err := s.store.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			_ = secrets.Verify(password, s.decoy())
			return nil, errInvalidCredentials
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load admin")
	}
	if err := secrets.Verify(password, admin.PasswordHash); err != nil {
		if dErrors.HasCode(err, dErrors.CodeUnauthorized) {
			return nil, errInvalidCredentials
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to verify password")
	}
	return admin, nil
}

// Login authenticates and issues a session.
func (s *Service) Login(ctx context.Context, username, password string) (sess *models.Session, err error) {
	ctx, span := tracer.Start(ctx, "admin.Login")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	username = models.NormalizeUsername(username)
	admin, err := s.Authenticate(ctx, username, password)
	if err != nil {
		if dErrors.HasCode(err, dErrors.CodeUnauthorized) {
			s.logger.WarnContext(ctx, "admin login failed",
				"username", username,
				"request_id", requestcontext.RequestID(ctx),
			)
			s.metrics.IncrementLogins("failed")
			s.emitAudit(ctx, audit.EventAdminLoginFailed, username, "denied", "invalid_credentials")
		}
		return nil, err
	}

	sess, err = s.sessions.Issue(admin, requestcontext.Now(ctx))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to issue session")
	}

	s.logger.InfoContext(ctx, "admin logged in",
		"admin_id", admin.ID,
		"username", admin.Username,
		"request_id", requestcontext.RequestID(ctx),
	)
	s.metrics.IncrementLogins("succeeded")
	s.emitAudit(ctx, audit.EventAdminLogin, admin.Username, "granted", "")
	return sess, nil
}

// Logout records the end of the caller's session.
func (s *Service) Logout(ctx context.Context) {
	username := requestcontext.Username(ctx)
	if username == "" {
		return
	}
	s.logger.InfoContext(ctx, "admin logged out",
		"username", username,
		"request_id", requestcontext.RequestID(ctx),
	)
	s.emitAudit(ctx, audit.EventAdminLogout, username, "", "")
}

// EnsureDefaultAdmin seeds the "admin" account when no admin exists and a
// bootstrap password is configured. It reports whether an account was created.
func (s *Service) EnsureDefaultAdmin(ctx context.Context, password string) (bool, error) {
	if password == "" {
		return false, nil
	}
	n, err := s.store.Count(ctx)
	if err != nil {
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count admins")
	}
	if n > 0 {
		return false, nil
	}
	hash, err := secrets.Hash(password, s.hashCost)
	if err != nil {
		return false, err
	}
	admin := &models.Admin{
		Username:     models.DefaultUsername,
		PasswordHash: hash,
		CreatedAt:    requestcontext.Now(ctx),
	}
	if err := s.store.Create(ctx, admin); err != nil {
		if errors.Is(err, sentinel.ErrAlreadyUsed) {
			return false, nil
		}
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create default admin")
	}
	s.logger.WarnContext(ctx, "seeded default admin account; change its password",
		"username", admin.Username,
	)
	return true, nil
}

func (s *Service) decoy() string {
	s.decoyOnce.Do(func() {
		s.decoyHash, _ = secrets.Hash("decoy-password", s.hashCost)
	})
	return s.decoyHash
}

func (s *Service) emitAudit(ctx context.Context, event audit.AuditEvent, username, decision, reason string) {
	if s.auditPublisher == nil {
		return
	}
	err := s.auditPublisher.Emit(ctx, audit.Event{
		Subject:   "admin:" + username,
		Action:    string(event),
		Decision:  decision,
		Reason:    reason,
		RequestID: requestcontext.RequestID(ctx),
		ActorID:   username,
		ClientIP:  requestcontext.ClientIP(ctx),
		Device:    device.ParseUserAgent(requestcontext.UserAgent(ctx)),
	})
	if err != nil {
		s.logger.WarnContext(ctx, "failed to emit audit event",
			"event", event,
			"error", err,
			"request_id", requestcontext.RequestID(ctx),
		)
	}
}
