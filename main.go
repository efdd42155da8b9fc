// File: barberia/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"barberia/config"
	"barberia/cron"
	"barberia/database"
	appointmentRepo "barberia/database/repository/appointment"
	sessionRepo "barberia/database/repository/session"
	"barberia/handlers"
	"barberia/middleware"
	"barberia/routes"
	"barberia/services/admin"
	"barberia/services/booking"
	"barberia/services/mail"
	"barberia/services/tasks"
	"barberia/services/wizard"
	"barberia/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer utils.SyncLogger()

	cfg := config.AppConfig
	shopLoc := config.ShopLocation()
	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Appointment store.
	var apptRepo appointmentRepo.AppointmentRepository
	switch cfg.StoreBackend {
	case config.StoreFirestore:
		database.InitFirestore()
		apptRepo = appointmentRepo.NewFirestoreAppointmentRepo(database.FirestoreClient, config.AppointmentsCollection)
	case config.StoreMemory:
		logger.Warn("main: using in-memory appointment store; data is lost on restart")
		apptRepo = appointmentRepo.NewMemoryAppointmentRepo()
	default:
		database.InitDB()
		mongoRepo := appointmentRepo.NewMongoAppointmentRepo(database.MongoClient, cfg.DatabaseName, config.AppointmentsCollection)
		if err := mongoRepo.EnsureIndexes(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure appointment indexes: %v", err)
		}
		apptRepo = mongoRepo
	}

	healthChecks := []utils.HealthCheck{{Name: "store", Ping: apptRepo.Ping}}

	// Wizard sessions.
	var sessions sessionRepo.SessionRepository
	if cfg.RedisAddr != "" {
		client := utils.GetSessionClient()
		sessions = sessionRepo.NewRedisSessionRepo(client, cfg.SessionTTL)
		healthChecks = append(healthChecks, utils.HealthCheck{
			Name: "redis",
			Ping: func(ctx context.Context) error { return client.Ping(ctx).Err() },
		})
	} else {
		logger.Warn("main: REDIS_ADDR not set; wizard sessions kept in memory", zap.Duration("ttl", cfg.SessionTTL))
		sessions = sessionRepo.NewMemorySessionRepo(cfg.SessionTTL)
	}

	// Confirmation mail.
	emailJS := mail.NewEmailJSClient(cfg.EmailJSAPIURL, cfg.EmailJSPrivateKey, logger)
	var dispatcher mail.Dispatcher = emailJS
	var (
		queueClient *asynq.Client
		mailWorker  *asynq.Server
	)
	if cfg.MailDelivery == config.MailDeliveryQueued {
		queueClient = asynq.NewClient(cron.QueueRedisOpt())
		dispatcher = tasks.NewQueuedDispatcher(queueClient, logger)
		mailWorker = cron.InitMailWorker(emailJS, logger)
		logger.Info("main: confirmation emails are queued")
	}

	// Services.
	engine := booking.NewEngine(apptRepo, dispatcher, booking.Settings{
		MailServiceID:  cfg.EmailJSServiceID,
		MailTemplateID: cfg.EmailJSTemplateID,
		MailPublicKey:  cfg.EmailJSPublicKey,
		StoreAccessKey: cfg.StoreAccessKey(),
		Timeout:        cfg.RemoteTimeout,
		Location:       shopLoc,
	}, logger)
	wizardService := wizard.NewService(sessions, engine, shopLoc, logger)
	adminService := admin.NewAdminService(apptRepo, logger)
	gate := admin.NewGate(cfg.AdminPassword, cfg.AdminPasswordHash, cfg.AdminTokenSecret)

	handlerBundle := &handlers.HandlerBundle{
		Booking:   handlers.NewBookingHandler(engine, shopLoc),
		Wizard:    handlers.NewWizardHandler(wizardService),
		Calendar:  handlers.NewCalendarHandler(wizardService, shopLoc, cfg.ShopLocation),
		Admin:     handlers.NewAdminHandler(adminService, gate, shopLoc),
		AdminGate: gate,
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	routes.RegisterRoutes(router, handlerBundle)

	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	utils.StartHealthMonitor(monitorCtx, healthChecks, 60*time.Second)

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("main: server forced to shutdown", zap.Error(err))
	}
	if mailWorker != nil {
		mailWorker.Shutdown()
	}
	if queueClient != nil {
		if err := queueClient.Close(); err != nil {
			logger.Warn("main: failed to close queue client", zap.Error(err))
		}
	}
	database.Close(ctx)

	logger.Sugar().Info("main: server stopped gracefully")
}
