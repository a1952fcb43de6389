package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/noah-isme/siakad-go-api/internal/config"
	"github.com/noah-isme/siakad-go-api/internal/database"
	"github.com/noah-isme/siakad-go-api/internal/events"
	"github.com/noah-isme/siakad-go-api/internal/handler"
	"github.com/noah-isme/siakad-go-api/internal/middleware"
	"github.com/noah-isme/siakad-go-api/internal/observability"
	"github.com/noah-isme/siakad-go-api/internal/repository"
	"github.com/noah-isme/siakad-go-api/internal/router"
	"github.com/noah-isme/siakad-go-api/internal/service"
	"github.com/noah-isme/siakad-go-api/internal/store"
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

	documentStore, err := store.NewGormStore(db, logger)
	if err != nil {
		log.Fatalf("failed to initialise document store: %v", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
	}

	var publisher events.Publisher
	if cfg.NATSURL != "" {
		natsConn, err := nats.Connect(cfg.NATSURL)
		if err != nil {
			log.Fatalf("failed to connect to nats: %v", err)
		}
		defer natsConn.Drain()
		publisher = events.NewNATSPublisher(natsConn, "siakad.records", logger)
	}

	observability.RegisterMetrics()

	validate := service.NewValidator()

	studentRepo := repository.NewStudentRepository(documentStore)
	courseRepo := repository.NewCourseRepository(documentStore)
	programRepo := repository.NewProgramRepository(documentStore)
	recordRepo := repository.NewRecordRepository(documentStore)
	userRepo := repository.NewUserRepository(documentStore)

	studentService := service.NewStudentService(studentRepo, validate, logger)
	courseService := service.NewCourseService(courseRepo, validate, logger)
	programService := service.NewProgramService(programRepo, validate, logger)
	recordService := service.NewRecordService(recordRepo, studentRepo, validate, redisClient, publisher, cfg.YearFloor, logger)
	statsService := service.NewStatsService(recordRepo, studentRepo, courseRepo, programRepo, redisClient, cfg.StatsCacheTTL, cfg.PassingGrade, logger)
	userService := service.NewUserService(userRepo, validate, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		StudentHandler:   handler.NewStudentHandler(studentService, logger),
		CourseHandler:    handler.NewCourseHandler(courseService, logger),
		ProgramHandler:   handler.NewProgramHandler(programService, logger),
		RecordHandler:    handler.NewRecordHandler(recordService, logger),
		DashboardHandler: handler.NewDashboardHandler(studentService, statsService, logger),
		AdminUserHandler: handler.NewAdminUserHandler(userService, logger),
		JWTMiddleware:    middleware.JWTProtected(cfg.JWTSecret),
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
