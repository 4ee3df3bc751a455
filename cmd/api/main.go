package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-booking/internal/db"
	"github.com/BruksfildServices01/barber-booking/internal/domain/schedule"
	"github.com/BruksfildServices01/barber-booking/internal/infra/payment"
	"github.com/BruksfildServices01/barber-booking/internal/infra/storage"
	"github.com/BruksfildServices01/barber-booking/internal/logging"
	"github.com/BruksfildServices01/barber-booking/internal/metrics"
	"github.com/BruksfildServices01/barber-booking/internal/notify"
	"github.com/BruksfildServices01/barber-booking/internal/routes"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("failed to load config")
	}

	log := logging.New(cfg.LogLevel, cfg.LogFormat)
	metrics.Register()

	db, err := dbpkg.Open(cfg.DBUrl)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}

	sched, err := schedule.Load(cfg.ScheduleFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load schedule")
	}

	loc := timezone.Location(cfg.ShopTimezone)

	auditDispatcher := audit.NewDispatcher(audit.New(db), log)
	defer auditDispatcher.Close()

	notifyDispatcher := notify.NewDispatcher(newSender(cfg, log), log, 100)
	defer notifyDispatcher.Close()

	gateway, err := newGateway(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build payment gateway")
	}

	deps := routes.Dependencies{
		DB:       db,
		Config:   cfg,
		Log:      log,
		Schedule: sched,
		Clock:    timezone.SystemClock(loc),
		Audit:    auditDispatcher,
		Notify:   notifyDispatcher,
		Gateway:  gateway,
		Sessions: newSessionStore(cfg, log),
	}

	if cfg.S3Enabled() {
		store, err := storage.NewS3Store(storage.S3Config{
			Bucket:        cfg.S3Bucket,
			Region:        cfg.S3Region,
			Endpoint:      cfg.S3Endpoint,
			AccessKey:     cfg.S3AccessKey,
			SecretKey:     cfg.S3SecretKey,
			PublicBaseURL: cfg.S3PublicBaseURL,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to build object storage")
		}
		deps.Store = store
	} else {
		log.Warn().Msg("S3_BUCKET not set, exports archive and photo uploads disabled")
	}

	r := gin.New()
	r.Use(gin.Recovery())

	if err := routes.RegisterRoutes(r, deps); err != nil {
		log.Fatal().Err(err).Msg("failed to register routes")
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("addr", srv.Addr).Str("timezone", loc.String()).Msg("server running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("http server error")
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http server shutdown error")
	}
	log.Info().Msg("server stopped")
}

func newSender(cfg *config.Config, log zerolog.Logger) notify.Sender {
	if cfg.SMTPHost == "" {
		return notify.NewLogSender(log)
	}
	return notify.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPFrom)
}

func newGateway(cfg *config.Config) (payment.Gateway, error) {
	if cfg.PaymentProvider == payment.ProviderMercadoPago {
		return payment.NewMercadoPago(cfg.MercadoPagoToken, cfg.PaymentReturnURL, cfg.PaymentNotificationURL)
	}
	return payment.NewVippsPlaceholder(cfg.PaymentReturnURL)
}

// newSessionStore prefers Redis so sessions survive restarts.
func newSessionStore(cfg *config.Config, log zerolog.Logger) payment.SessionStore {
	if cfg.RedisURL == "" {
		log.Warn().Msg("REDIS_URL not set, payment sessions kept in memory")
		return payment.NewMemorySessionStore()
	}
	return payment.NewRedisSessionStore(payment.NewRedisClient(cfg.RedisURL))
}
