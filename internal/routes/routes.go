package routes

import (
	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/handlers"
	"github.com/BruksfildServices01/barber-booking/internal/infra/payment"
	infraRepo "github.com/BruksfildServices01/barber-booking/internal/infra/repository"
	"github.com/BruksfildServices01/barber-booking/internal/infra/storage"
	"github.com/BruksfildServices01/barber-booking/internal/middleware"
	"github.com/BruksfildServices01/barber-booking/internal/notify"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	ucAdmin "github.com/BruksfildServices01/barber-booking/internal/usecase/admin"
	ucBooking "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
	ucPayment "github.com/BruksfildServices01/barber-booking/internal/usecase/payment"
	"github.com/BruksfildServices01/barber-booking/internal/validators"
)

// Dependencies are the process-wide singletons built by main.
type Dependencies struct {
	DB       *gorm.DB
	Config   *config.Config
	Log      zerolog.Logger
	Schedule *schedule.Schedule
	Clock    timezone.Clock

	Audit    *audit.Dispatcher
	Notify   *notify.Dispatcher
	Gateway  payment.Gateway
	Sessions payment.SessionStore
	// Store is nil when object storage is not configured.
	Store storage.ObjectStore
}

func RegisterRoutes(r *gin.Engine, d Dependencies) error {
	cfg := d.Config

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.RequestLogger(d.Log))
	r.Use(middleware.CORSMiddleware(cfg.Origins()))

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	bookingRepo := infraRepo.NewBookingGormRepository(d.DB)
	photoRepo := infraRepo.NewPhotoGormRepository(d.DB)
	auditLogger := audit.New(d.DB)

	engine := domain.NewEngine(d.Schedule, d.Clock().Location(), cfg.SlotDuration())

	// ======================================================
	// USE CASES
	// ======================================================
	createOpts := []ucBooking.CreateOption{
		ucBooking.WithAudit(d.Audit),
		ucBooking.WithNotifier(d.Notify),
	}
	if cfg.CheckEmailDomain {
		createOpts = append(createOpts, ucBooking.WithEmailDomainCheck(validators.IsEmailDomainValid))
	}

	getTimeSlotsUC := ucBooking.NewGetTimeSlots(bookingRepo, engine, d.Clock)
	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, engine, d.Clock, createOpts...)
	getBookingUC := ucBooking.NewGetBooking(bookingRepo)
	listBookingsUC := ucBooking.NewListBookings(bookingRepo, engine)
	cancelBookingUC := ucBooking.NewCancelBooking(bookingRepo, d.Clock, d.Audit)

	paymentSvc := ucPayment.NewService(
		bookingRepo,
		d.Gateway,
		d.Sessions,
		cfg.PaymentSessionTTL,
		d.Audit,
	)

	authenticator, err := ucAdmin.NewAuthenticator(cfg.AdminPasswordHash, cfg.AdminPassword, cfg.JWTSecret)
	if err != nil {
		return errors.Wrap(err, "admin authenticator")
	}
	exporter := ucAdmin.NewExporter(bookingRepo, engine, d.Store, d.Clock)
	photos := ucAdmin.NewPhotos(d.Schedule, photoRepo, d.Store, d.Clock)

	// ======================================================
	// HANDLERS
	// ======================================================
	bookingHandler := handlers.NewBookingHandler(
		getTimeSlotsUC,
		createBookingUC,
		getBookingUC,
		listBookingsUC,
		cancelBookingUC,
	)
	barberHandler := handlers.NewBarberHandler(photos)
	paymentHandler := handlers.NewPaymentHandler(paymentSvc)
	adminHandler := handlers.NewAdminHandler(authenticator, exporter, photos, d.Audit)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger)
	healthHandler := handlers.NewHealthHandler(d.DB)

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	adminOnly := middleware.AdminAuth(cfg.JWTSecret)

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/health", healthHandler.Health)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/", bookingHandler.Root)
		api.GET("/time-slots/:date", bookingHandler.TimeSlots)
		api.GET("/barbers", barberHandler.List)

		api.POST("/bookings", limiter.Middleware(), bookingHandler.Create)
		api.GET("/bookings/:id", bookingHandler.Get)
		api.DELETE("/bookings/:id", bookingHandler.Cancel)

		// ------------------------------
		// PAYMENT PLACEHOLDER
		// ------------------------------
		vipps := api.Group("/vipps")
		{
			vipps.POST("/initiate", limiter.Middleware(), paymentHandler.Initiate)
			vipps.POST("/callback", paymentHandler.Callback)
			vipps.GET("/status/:id", paymentHandler.Status)
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		api.POST("/admin/login", limiter.Middleware(), adminHandler.Login)
		api.GET("/bookings", adminOnly, bookingHandler.List)

		admin := api.Group("/admin")
		admin.Use(adminOnly)
		{
			admin.GET("/exports/bookings", adminHandler.ExportBookings)
			admin.POST("/exports/bookings", adminHandler.ArchiveBookings)
			admin.PUT("/barbers/:id/photo", adminHandler.UploadPhoto)
			admin.GET("/audit-logs", auditLogsHandler.List)
		}
	}

	return nil
}
