package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "time/tzdata"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/BruksfildServices01/barber-booking/internal/archive"
	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/auth"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-booking/internal/db"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/infra/memstore"
	infraRepo "github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/notify"
	"github.com/BruksfildServices01/barber-booking/internal/routes"
	"github.com/BruksfildServices01/barber-booking/internal/shopconfig"
	"github.com/BruksfildServices01/barber-booking/pkg/logging"
)

func main() {

	cfg := config.Load()
	logger := logging.NewWithOptions(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile})

	schedule := domain.NewSchedule(shopconfig.Default)

	// ======================================================
	// 📈 METRICS
	// ======================================================
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	bookingMetrics := metrics.New(registry)

	// ======================================================
	// 🗄️ STORAGE
	// ======================================================
	deps := routes.Dependencies{
		Config:         cfg,
		Schedule:       schedule,
		Metrics:        bookingMetrics,
		MetricsHandler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		Logger:         logger,
		Authenticator:  auth.NewSharedSecret(cfg.AdminPassword),
	}

	var auditWriter audit.Writer
	if cfg.UsesDatabase() {
		db := dbpkg.NewDB(cfg)
		deps.Appointments = infraRepo.NewAppointmentGormRepository(db)
		deps.BlockedTimes = infraRepo.NewBlockedTimeGormRepository(db)
		deps.Cleanup = infraRepo.NewCleanupGormRepository(db)

		auditLogger := audit.New(db)
		auditWriter = auditLogger
		deps.AuditReader = auditLogger
	} else {
		logger.Warn("DATABASE_URL not set, using in-memory storage (data is lost on restart)")
		store := memstore.New()
		deps.Appointments = store
		deps.BlockedTimes = store
		deps.Cleanup = store

		auditLog := memstore.NewAuditLog()
		auditWriter = auditLog
		deps.AuditReader = auditLog
	}

	auditDispatcher := audit.NewDispatcher(auditWriter, logger)
	defer auditDispatcher.Close()
	deps.Audit = auditDispatcher

	// ======================================================
	// 📱 NOTIFICATIONS
	// ======================================================
	var sender notify.Sender
	if cfg.SMSConfigured() {
		sender = notify.NewTwilioSender(
			cfg.TwilioAccountSID,
			cfg.TwilioAuthToken,
			cfg.TwilioPhoneNumber,
			cfg.NotifyTimeout,
			logger,
		)
	} else {
		logger.Warn("Twilio credentials missing, SMS notifications disabled")
		sender = notify.NewNoopSender(logger)
	}
	deps.Notifier = notify.NewDispatcher(
		sender,
		notify.NewFormatter(shopconfig.Default, schedule.Location()),
		logger,
		bookingMetrics,
	)

	// ======================================================
	// 🧱 RATE LIMIT / ARCHIVE
	// ======================================================
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Error("invalid REDIS_URL, rate limiting disabled", "error", err)
		} else {
			rdb := redis.NewClient(opts)
			defer rdb.Close()
			deps.RateLimiter = middleware.NewRateLimiter(rdb, cfg.RateLimitRequests, cfg.RateLimitWindow, logger)
		}
	}

	if cfg.ArchiveEnabled() {
		deps.Archiver = archive.NewStore(
			archive.NewS3Client(archive.ClientOptions{
				Region:          cfg.ArchiveRegion,
				Endpoint:        cfg.ArchiveEndpoint,
				AccessKeyID:     cfg.AWSAccessKeyID,
				SecretAccessKey: cfg.AWSSecretAccessKey,
			}),
			cfg.ArchiveBucket,
			logger,
		)
	}

	if cfg.AdminPassword == "" {
		logger.Warn("ADMIN_PASSWORD not set, admin endpoints will reject every request")
	}

	// ======================================================
	// 🌐 HTTP
	// ======================================================
	r := gin.New()
	r.Use(gin.Recovery())
	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server running", "addr", cfg.Addr(), "database", cfg.UsesDatabase())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
	logger.Info("server stopped")
}
