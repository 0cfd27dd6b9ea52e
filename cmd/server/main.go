package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	adminadapters "maricheck/internal/admin/adapters"
	adminhandler "maricheck/internal/admin/handler"
	adminmetrics "maricheck/internal/admin/metrics"
	adminservice "maricheck/internal/admin/service"
	"maricheck/internal/admin/session"
	adminstore "maricheck/internal/admin/store"
	applicanthandler "maricheck/internal/applicant/handler"
	applicantmetrics "maricheck/internal/applicant/metrics"
	applicantservice "maricheck/internal/applicant/service"
	crewstore "maricheck/internal/applicant/store/crew"
	staffstore "maricheck/internal/applicant/store/staff"
	httpapi "maricheck/internal/http"
	"maricheck/internal/platform/config"
	"maricheck/internal/platform/httpserver"
	"maricheck/internal/platform/kafka"
	"maricheck/internal/platform/logger"
	"maricheck/internal/platform/metrics"
	"maricheck/internal/platform/postgres"
	redisclient "maricheck/internal/platform/redis"
	ratelimitmetrics "maricheck/internal/ratelimit/metrics"
	ratelimitmw "maricheck/internal/ratelimit/middleware"
	ratelimitmodels "maricheck/internal/ratelimit/models"
	ratelimitservice "maricheck/internal/ratelimit/service"
	"maricheck/internal/ratelimit/store/bucket"
	ratelimitredis "maricheck/internal/ratelimit/store/redis"
	"maricheck/internal/uploads"
	audit "maricheck/pkg/platform/audit"
	"maricheck/pkg/platform/audit/publisher"
	auditkafka "maricheck/pkg/platform/audit/store/kafka"
	auditmemory "maricheck/pkg/platform/audit/store/memory"
	auditpostgres "maricheck/pkg/platform/audit/store/postgres"
	txcontext "maricheck/pkg/platform/tx"
)

const (
	shutdownTimeout  = 10 * time.Second
	txTimeout        = 5 * time.Second
	auditBufferSize  = 1024
	loginLimitWindow = 15 * time.Minute
	loginLimit       = 10
)

// stores groups the persistence backends picked at startup.
type stores struct {
	crew  applicantservice.CrewStore
	staff applicantservice.StaffStore
	admin adminservice.Store
	audit audit.Store
	tx    txcontext.Manager
}

// main wires dependencies and owns the server lifecycle. Business logic lives
// in the internal service packages.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Environment)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Server, log *slog.Logger) error {
	healthChecks := map[string]httpapi.HealthCheck{}

	st, db, err := openStores(ctx, cfg, log)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
		healthChecks["postgres"] = db.PingContext
	}

	auditOpts := []publisher.Option{
		publisher.WithAsyncBuffer(auditBufferSize),
		publisher.WithLogger(log),
	}
	kafkaClient, err := kafka.New(ctx, cfg.Kafka)
	if err != nil {
		return err
	}
	if kafkaClient != nil {
		defer kafkaClient.Close()
		if err := auditkafka.EnsureTopic(ctx, kafkaClient, cfg.Kafka.AuditTopic, 1, 1); err != nil {
			return err
		}
		auditOpts = append(auditOpts, publisher.WithSink(auditkafka.NewSink(kafkaClient, cfg.Kafka.AuditTopic)))
		healthChecks["kafka"] = kafkaClient.Ping
		log.Info("audit events forwarded to kafka", "topic", cfg.Kafka.AuditTopic)
	}
	auditPublisher := publisher.NewPublisher(st.audit, auditOpts...)
	defer auditPublisher.Close()

	files, err := uploads.NewLocalStore(cfg.Uploads.Dir, uploads.WithLogger(log))
	if err != nil {
		return err
	}

	applicantSvc := applicantservice.New(st.crew, st.staff,
		applicantservice.WithLogger(log),
		applicantservice.WithMetrics(applicantmetrics.New(nil)),
		applicantservice.WithAuditPublisher(auditPublisher),
		applicantservice.WithTx(st.tx),
		applicantservice.WithFileStore(files),
	)

	sessions := session.NewManager(cfg.Session.Secret, cfg.Session.TTL)
	adminSvc := adminservice.New(st.admin, sessions,
		adminservice.WithLogger(log),
		adminservice.WithMetrics(adminmetrics.New(nil)),
		adminservice.WithAuditPublisher(auditPublisher),
	)
	created, err := adminSvc.EnsureDefaultAdmin(ctx, cfg.AdminBootstrapPassword)
	if err != nil {
		return err
	}
	if created {
		log.Warn("seeded default admin account, change its password", "username", "admin")
	}

	fallback := bucket.New()
	limiterOpts := []ratelimitservice.Option{
		ratelimitservice.WithLogger(log),
		ratelimitservice.WithMetrics(ratelimitmetrics.New(nil)),
		ratelimitservice.WithClassLimit(ratelimitmodels.ClassLogin, ratelimitmodels.Limit{Requests: loginLimit, Window: loginLimitWindow}),
	}
	rc, err := redisclient.New(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	if rc != nil {
		defer rc.Close()
		limiterOpts = append(limiterOpts, ratelimitservice.WithPrimary(ratelimitredis.New(rc.Client)))
		healthChecks["redis"] = rc.Health
	} else {
		log.Info("REDIS_URL not set, rate limits are per process")
	}
	limiter := ratelimitservice.New(fallback,
		ratelimitmodels.Limit{Requests: cfg.RateLimit.Requests, Window: cfg.RateLimit.Window},
		limiterOpts...,
	)
	rateLimits := ratelimitmw.New(limiter, log, ratelimitmw.WithAuditPublisher(auditPublisher))

	applicantHandler := applicanthandler.New(applicantSvc, log,
		applicanthandler.WithDocumentOpener(files),
		applicanthandler.WithMaxUploadBytes(cfg.Uploads.MaxBytes),
		applicanthandler.WithRateLimiter(rateLimits),
	)
	adminHandler := adminhandler.New(adminSvc, log,
		adminhandler.WithSecureCookie(cfg.IsProduction()),
		adminhandler.WithRateLimiter(rateLimits),
	)

	router := httpapi.NewRouter(httpapi.RouterDependencies{
		Logger:           log,
		Metrics:          metrics.New(nil),
		MetricsHandler:   metrics.Handler(),
		SessionValidator: adminadapters.NewSessionValidatorAdapter(sessions),
		RequestTimeout:   cfg.RequestTimeout,
		Public:           []httpapi.RouteRegistrar{applicantHandler, adminHandler},
		Admin:            []httpapi.AdminRouteRegistrar{applicantHandler},
		Session:          []httpapi.AdminSessionRegistrar{adminHandler},
		HealthChecks:     healthChecks,
	})
	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting maricheck", "addr", cfg.Addr, "environment", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		err := fallback.StartCleanup(gctx, cfg.RateLimit.Window)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// openStores uses PostgreSQL when DATABASE_URL is set and in-memory stores
// otherwise. The returned *sql.DB is nil in memory mode.
func openStores(ctx context.Context, cfg config.Server, log *slog.Logger) (*stores, *sql.DB, error) {
	if cfg.Database.URL == "" {
		if cfg.IsProduction() {
			return nil, nil, errors.New("DATABASE_URL is required in production")
		}
		log.Warn("DATABASE_URL not set, using in-memory stores")
		return &stores{
			crew:  crewstore.NewInMemory(),
			staff: staffstore.NewInMemory(),
			admin: adminstore.NewInMemory(),
			audit: auditmemory.NewInMemoryStore(),
			tx:    txcontext.Noop{},
		}, nil, nil
	}

	db, err := postgres.Open(ctx, cfg.Database, log)
	if err != nil {
		return nil, nil, err
	}
	if err := postgres.Migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return &stores{
		crew:  crewstore.NewPostgres(db),
		staff: staffstore.NewPostgres(db),
		admin: adminstore.NewPostgres(db),
		audit: auditpostgres.New(db),
		tx:    txcontext.NewPostgresManager(db, txTimeout),
	}, db, nil
}
