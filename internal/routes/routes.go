package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/auth"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/handlers"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/barber-booking/internal/usecase/appointment"
	ucBlockedTime "github.com/BruksfildServices01/barber-booking/internal/usecase/blockedtime"
	ucCleanup "github.com/BruksfildServices01/barber-booking/internal/usecase/cleanup"
	"github.com/BruksfildServices01/barber-booking/pkg/logging"
)

// Dependencies are the singletons built by main (or a test).
type Dependencies struct {
	Config   *config.Config
	Schedule *domain.Schedule

	Appointments domain.Repository
	BlockedTimes domain.BlockedTimeRepository
	Cleanup      domain.CleanupRepository

	Notifier      ucAppointment.Notifier
	Archiver      ucCleanup.Archiver
	Audit         *audit.Dispatcher
	AuditReader   audit.Reader
	Authenticator auth.Authenticator
	RateLimiter   *middleware.RateLimiter

	Metrics        *metrics.BookingMetrics
	MetricsHandler http.Handler
	Logger         *logging.Logger

	// Clock overrides time.Now for every use case when set.
	Clock timezone.Clock
}

func RegisterRoutes(r *gin.Engine, deps Dependencies) {

	logger := deps.Logger
	if logger == nil {
		logger = logging.Default()
	}
	loc := deps.Schedule.Location()

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.HTTPMetrics(deps.Metrics))
	if deps.Config != nil {
		r.Use(middleware.CORSMiddleware(deps.Config.PublicBaseURL))
	} else {
		r.Use(middleware.CORSMiddleware())
	}

	// ======================================================
	// 🧠 USE CASES: APPOINTMENTS
	// ======================================================
	getAvailabilityUC := ucAppointment.NewGetAvailability(
		deps.Appointments,
		deps.BlockedTimes,
		deps.Schedule,
	)

	requestAppointmentUC := ucAppointment.NewRequestAppointment(
		deps.Appointments,
		deps.Schedule,
		deps.Notifier,
		deps.Audit,
		deps.Metrics,
		logger,
	)

	listAppointmentsUC := ucAppointment.NewListAppointments(
		deps.Appointments,
		deps.Schedule,
	)

	confirmAppointmentUC := ucAppointment.NewConfirmAppointment(
		deps.Appointments,
		deps.Notifier,
		deps.Audit,
		deps.Metrics,
		logger,
	)

	rejectAppointmentUC := ucAppointment.NewRejectAppointment(
		deps.Appointments,
		deps.Notifier,
		deps.Audit,
		deps.Metrics,
		logger,
	)

	cancelAppointmentUC := ucAppointment.NewCancelAppointment(
		deps.Appointments,
		deps.Notifier,
		deps.Audit,
		deps.Metrics,
		logger,
	)

	// ======================================================
	// 🧠 USE CASES: BLOCKED TIMES / CLEANUP
	// ======================================================
	createBlockedTimeUC := ucBlockedTime.NewCreateBlockedTime(deps.BlockedTimes, deps.Audit)
	listBlockedTimesUC := ucBlockedTime.NewListBlockedTimes(deps.BlockedTimes, loc)
	deleteBlockedTimeUC := ucBlockedTime.NewDeleteBlockedTime(deps.BlockedTimes, deps.Audit)

	runCleanupUC := ucCleanup.NewRunCleanup(
		deps.Cleanup,
		deps.Archiver,
		deps.Audit,
		deps.Metrics,
		logger,
		loc,
	)

	if deps.Clock != nil {
		getAvailabilityUC.WithClock(deps.Clock)
		requestAppointmentUC.WithClock(deps.Clock)
		runCleanupUC.WithClock(deps.Clock)
	}

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(
		deps.Schedule,
		getAvailabilityUC,
		requestAppointmentUC,
		logger,
	)

	authHandler := handlers.NewAuthHandler(deps.Authenticator, logger)

	appointmentHandler := handlers.NewAppointmentHandler(
		listAppointmentsUC,
		confirmAppointmentUC,
		rejectAppointmentUC,
		cancelAppointmentUC,
		logger,
	)

	blockedTimeHandler := handlers.NewBlockedTimeHandler(
		createBlockedTimeUC,
		listBlockedTimesUC,
		deleteBlockedTimeUC,
		logger,
	)

	cleanupHandler := handlers.NewCleanupHandler(runCleanupUC, logger)

	// ======================================================
	// 🩺 OPS
	// ======================================================
	r.GET("/health", handlers.Health)
	if deps.MetricsHandler != nil {
		r.GET("/metrics", gin.WrapH(deps.MetricsHandler))
	}

	adminOnly := middleware.AdminAuth(deps.Authenticator)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🌐 API PÚBLICA
		// ------------------------------
		api.GET("/config", publicHandler.Config)
		api.GET("/slots", publicHandler.Slots)
		api.POST("/appointments/request",
			deps.RateLimiter.Handler("booking"),
			publicHandler.RequestAppointment,
		)

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/admin/login",
			deps.RateLimiter.Handler("login"),
			authHandler.Login,
		)

		// ------------------------------
		// 🔐 API ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(adminOnly)
		{
			admin.GET("/appointments", appointmentHandler.List)
			admin.POST("/appointments/:id/confirm", appointmentHandler.Confirm)
			admin.POST("/appointments/:id/reject", appointmentHandler.Reject)
			admin.POST("/appointments/:id/cancel", appointmentHandler.Cancel)

			admin.GET("/blocked-times", blockedTimeHandler.List)
			admin.POST("/blocked-times", blockedTimeHandler.Create)
			admin.DELETE("/blocked-times", blockedTimeHandler.Delete)

			if deps.AuditReader != nil {
				auditLogsHandler := handlers.NewAuditLogsHandler(deps.AuditReader, loc, logger)
				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}

		// ------------------------------
		// ⏰ CRON
		// ------------------------------
		api.POST("/cron/cleanup", adminOnly, cleanupHandler.Run)
	}
}
