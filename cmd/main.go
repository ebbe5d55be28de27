package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/nirapotta/sos-backend/internal/config"
	v1 "github.com/nirapotta/sos-backend/internal/handler/http/v1"
	"github.com/nirapotta/sos-backend/internal/notifier"
	"github.com/nirapotta/sos-backend/internal/recognition"
	"github.com/nirapotta/sos-backend/internal/repository"
	"github.com/nirapotta/sos-backend/internal/service"
	"github.com/nirapotta/sos-backend/internal/webhook"
	"github.com/nirapotta/sos-backend/pkg/logger"
	"github.com/nirapotta/sos-backend/pkg/postgres"
	redisclient "github.com/nirapotta/sos-backend/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/nirapotta/sos-backend/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Nirapotta SOS Backend API
// @version 1.0
// @description Personal safety coordination API: SOS alert lifecycle, notification fan-out and face recognition evidence pipeline.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Каталоги загрузок и снапшотов должны существовать до первого запроса
	if err := os.MkdirAll(filepath.Join(cfg.UploadsDir, "snapshots"), 0o755); err != nil {
		log.Fatalf("Failed to create uploads directory: %v", err)
	}

	// Инициализация движка распознавания лиц (модели dlib)
	engine, err := recognition.NewEngine(cfg.FaceModelsDir)
	if err != nil {
		log.Fatalf("Failed to initialize face recognition engine: %v", err)
	}
	defer engine.Close()
	log.Info("Face recognition engine initialized")

	// Инициализация издателя и воркера событий жизненного цикла тревог
	eventPublisher := webhook.NewRedisEventPublisher(redisClient)
	eventWorker := webhook.NewWorker(redisClient, log, cfg)
	eventWorker.Start(ctx)

	// Инициализация репозиториев
	alertRepo := repository.NewAlertRepository(dbpool, redisClient)
	userRepo := repository.NewUserRepository(dbpool)
	stationRepo := repository.NewStationRepository(dbpool)

	// Инициализация каналов уведомлений
	smsSender := notifier.NewTwilioSMSSender(cfg, log)
	pushSender, err := notifier.NewFCMPushSender(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to initialize push sender: %v", err)
	}
	emailSender := notifier.NewSMTPEmailSender(cfg, log)
	dispatcher := notifier.NewDispatcher(smsSender, pushSender, log)

	// Инициализация сервисов
	recognitionService := recognition.NewService(engine, cfg, log)
	alertService := service.NewAlertService(alertRepo, userRepo, stationRepo, dispatcher, eventPublisher, log, cfg)
	evidenceService := service.NewEvidenceService(userRepo, stationRepo, recognitionService, emailSender, log, cfg)

	// Инициализация хэндлеров
	handler := v1.NewHandler(alertService, evidenceService, recognitionService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	if len(cfg.APIKeys) > 0 {
		api.Use(v1.APIKeyAuthMiddleware(cfg, log))
	}
	handler.RegisterRoutes(api)

	// Раздача загруженных видео по ссылкам из отчетов
	router.Static("/uploads", cfg.UploadsDir)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
