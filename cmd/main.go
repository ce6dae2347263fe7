package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/sirupsen/logrus"
	"github.com/wcmap/toilet-map/internal/auth"
	"github.com/wcmap/toilet-map/internal/config"
	v1 "github.com/wcmap/toilet-map/internal/handler/http/v1"
	"github.com/wcmap/toilet-map/internal/repository"
	"github.com/wcmap/toilet-map/internal/service"
	"github.com/wcmap/toilet-map/internal/webhook"
	elasticclient "github.com/wcmap/toilet-map/pkg/elastic"
	"github.com/wcmap/toilet-map/pkg/logger"
	"github.com/wcmap/toilet-map/pkg/postgres"
	redisclient "github.com/wcmap/toilet-map/pkg/redis"

	_ "github.com/wcmap/toilet-map/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Public Toilet Map API
// @version 1.0
// @description Public toilet catalog with proximity search and moderated submissions.
// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
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

// newToiletRepository собирает хранилище записей для настроенного бэкенда.
// Реализации взаимозаменяемы, остальная часть приложения различий не видит.
func newToiletRepository(ctx context.Context, cfg *config.Config, log *logrus.Logger) (service.ToiletRepository, func(), error) {
	switch cfg.StorageBackend {
	case config.BackendElastic:
		esClient, err := elasticclient.NewClient(ctx, cfg.ElasticURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to Elasticsearch: %w", err)
		}
		log.Info("Successfully connected to Elasticsearch")

		repo, err := repository.NewElasticToiletRepository(ctx, esClient, cfg.ElasticIndex)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to initialize Elasticsearch repository: %w", err)
		}
		return repo, func() { esClient.Stop() }, nil

	default: // config.BackendPostgres
		if err := runMigrations(cfg, log); err != nil {
			return nil, nil, fmt.Errorf("failed to run database migrations: %w", err)
		}

		dbpool, err := postgres.NewPostgresDB(ctx, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		log.Info("Successfully connected to PostgreSQL")

		return repository.NewToiletRepository(dbpool), dbpool.Close, nil
	}
}

// requestLogger логирует каждый обработанный запрос
func requestLogger(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
		}).Info("Request handled")
	}
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

	// Инициализация хранилища записей (postgres или elasticsearch)
	toiletRepo, closeRepo, err := newToiletRepository(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to initialize toilet repository: %v", err)
	}
	defer closeRepo()

	// Инициализация Redis клиента (кэш, сессии, очередь событий)
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Инициализация издателя событий модерации
	eventPublisher := webhook.NewRedisPublisher(redisClient)

	// Инициализация и запуск воркера доставки вебхуков
	webhookWorker := webhook.NewWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	// Инициализация кэша и сервисов
	toiletCache := repository.NewRedisToiletCache(redisClient)
	authService := auth.NewService(redisClient, log, cfg)
	toiletService := service.NewToiletService(toiletRepo, toiletCache, log, cfg, eventPublisher)

	// Инициализация хэндлеров
	handler := v1.NewHandler(toiletService, authService, log, cfg)

	// Настройка Gin роутера
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(log))
	api := router.Group("/api")
	handler.RegisterRoutes(api)

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
