package main

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"ecamp/config"
	"ecamp/middleware"
	"ecamp/services/camp/delivery"
	"ecamp/services/camp/repository"
	"ecamp/services/camp/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var log *logrus.Logger
var wg sync.WaitGroup

func main() {
	log = config.GetLogrusInstance()

	if err := config.LoadEnvFile(); err != nil {
		log.Fatalf("Error loading .env file: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	config.SetLogLevel(cfg.LogLevel)
	middleware.InitJWT(cfg.JWT.Secret, cfg.JWT.TTL)

	startHTTP(cfg)
}

func startHTTP(cfg *config.Config) {
	log.Info("Starting HTTP")
	app := fiber.New(config.GetFiberConfig(cfg))

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins:  cfg.AllowedOrigins(),
		AllowMethods:  "GET,POST,PUT,DELETE",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		ExposeHeaders: "Authorization",
	}))

	db, err := config.BootDB(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to boot DB: %v", err)
		return
	}

	registerRoutes(app, db, cfg)

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Infof("Starting HTTP server on %s (%s)", cfg.ListenAddress(), cfg.AppEnv)
		if err := app.Listen(cfg.ListenAddress()); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)

	<-signalChan

	log.Info("Shutting down the server...")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Errorf("Error during server shutdown: %v", err)
	}

	wg.Wait()

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	log.Info("Server shut down gracefully")
}

func registerRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	hasher := config.NewPasswordHasher(cfg.BcryptCost)

	// Regis repo
	parentRepo := repository.NewParentRepository(db)
	childRepo := repository.NewChildRepository(db)
	campRepo := repository.NewCampRepository(db)
	tripRepo := repository.NewTripRepository(db)
	registrationRepo := repository.NewRegistrationRepository(db)

	// Regis usecase
	parentUC := usecase.NewParentUseCase(parentRepo, hasher, cfg.Timeout)
	childUC := usecase.NewChildUseCase(childRepo, parentRepo, hasher, cfg.Timeout)
	campUC := usecase.NewCampUseCase(campRepo, cfg.Timeout)
	tripUC := usecase.NewTripUseCase(tripRepo, campRepo, cfg.Timeout)
	registrationUC := usecase.NewRegistrationUseCase(registrationRepo, childRepo, campRepo, tripRepo, cfg.Timeout)

	if sqlDB, err := db.DB(); err == nil {
		delivery.NewHealthDelivery(app, sqlDB)
	} else {
		log.Warnf("Health check disabled: %v", err)
	}

	if cfg.IsDeploy() {
		delivery.NewParentDeliveryDeploy(app, parentUC)
		delivery.NewChildDeliveryDeploy(app, childUC)
		delivery.NewCampDeliveryDeploy(app, campUC)
		delivery.NewTripDeliveryDeploy(app, tripUC)
		delivery.NewRegistrationDeliveryDeploy(app, registrationUC)
		return
	}

	log.Warn("Routes are open: APP_ENV is not deploy")
	delivery.NewParentDelivery(app, parentUC)
	delivery.NewChildDelivery(app, childUC)
	delivery.NewCampDelivery(app, campUC)
	delivery.NewTripDelivery(app, tripUC)
	delivery.NewRegistrationDelivery(app, registrationUC)
}
