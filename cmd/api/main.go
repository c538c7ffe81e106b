package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/frontdesk-go-api/internal/config"
	"github.com/noah-isme/frontdesk-go-api/internal/database"
	"github.com/noah-isme/frontdesk-go-api/internal/handler"
	"github.com/noah-isme/frontdesk-go-api/internal/middleware"
	"github.com/noah-isme/frontdesk-go-api/internal/models"
	"github.com/noah-isme/frontdesk-go-api/internal/repository"
	"github.com/noah-isme/frontdesk-go-api/internal/router"
	"github.com/noah-isme/frontdesk-go-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Recruiter{},
		&models.Registration{},
		&models.RegistrationStep{},
		&models.ExclusionEntry{},
		&models.NewHireOrientation{},
		&models.BadgeAppointment{},
		&models.FingerprintAppointment{},
		&models.TeamVisit{},
		&models.OrientationConfig{},
		&models.Announcement{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	redisClient, err := database.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	var publisher service.EventPublisher
	if cfg.NATSURL != "" {
		natsConn, err := database.ConnectNATS(cfg.NATSURL)
		if err != nil {
			log.Fatalf("failed to connect to nats: %v", err)
		}
		defer natsConn.Close()
		publisher = natsConn
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	recruiterRepo := repository.NewRecruiterRepository(db)
	registrationRepo := repository.NewRegistrationRepository(db)
	exclusionRepo := repository.NewExclusionRepository(db)
	visitRepo := repository.NewVisitRepository(db)
	orientationConfigRepo := repository.NewOrientationConfigRepository(db)
	announcementRepo := repository.NewAnnouncementRepository(db)

	recruiterService := service.NewRecruiterService(recruiterRepo, validate, logger)
	allocationService := service.NewAllocationService(recruiterRepo, registrationRepo, logger)
	screeningService := service.NewScreeningService(exclusionRepo, validate, logger)
	registrationService := service.NewRegistrationService(registrationRepo, recruiterRepo, recruiterService, allocationService, screeningService, validate, logger)
	visitService := service.NewVisitService(visitRepo, publisher, validate, logger)
	orientationConfigService := service.NewOrientationConfigService(orientationConfigRepo, redisClient, cfg.TimeSlotCacheTTL, validate, logger)
	announcementService := service.NewAnnouncementService(announcementRepo, validate, logger)

	if err := recruiterService.Bootstrap(context.Background()); err != nil {
		log.Fatalf("failed to seed recruiter roster: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		RegistrationHandler:      handler.NewRegistrationHandler(registrationService, logger),
		RecruiterHandler:         handler.NewRecruiterHandler(recruiterService, logger),
		ExclusionHandler:         handler.NewExclusionHandler(screeningService, logger),
		VisitHandler:             handler.NewVisitHandler(visitService, logger),
		OrientationConfigHandler: handler.NewOrientationConfigHandler(orientationConfigService, logger),
		AnnouncementHandler:      handler.NewAnnouncementHandler(announcementService, logger),
		StaffMiddleware:          middleware.StaffProtected(cfg.JWTSecret),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
