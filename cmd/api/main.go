package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/workout-api/internal/domain/ports"
	httphandlers "github.com/rafabene/workout-api/internal/handlers/http"
	"github.com/rafabene/workout-api/internal/infrastructure/config"
	"github.com/rafabene/workout-api/internal/infrastructure/i18n"
	"github.com/rafabene/workout-api/internal/infrastructure/logging"
	"github.com/rafabene/workout-api/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/workout-api/internal/services"
)

//	@title			WorkoutAPI
//	@version		1.0
//	@description	API de cadastro de atletas, categorias e centros de treinamento.
//	@BasePath		/
func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting workout api",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, cfg.Env, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := newI18nService(cfg.I18n, logger)
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Inicializar repositories
	athleteRepo := postgres.NewAthleteRepository(db)
	categoryRepo := postgres.NewCategoryRepository(db)
	trainingCenterRepo := postgres.NewTrainingCenterRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Inicializar services
	athleteService := services.NewAthleteService(athleteRepo, categoryRepo, trainingCenterRepo, uow, logger)
	categoryService := services.NewCategoryService(categoryRepo, logger)
	trainingCenterService := services.NewTrainingCenterService(trainingCenterRepo, logger)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := httphandlers.NewRouter(httphandlers.RouterConfig{
		Env:                cfg.Env,
		BaseURL:            cfg.Server.BaseURL,
		CORSAllowedOrigins: cfg.CORS.AllowedOrigins,
		SwaggerEnabled:     cfg.Swagger.Enabled,
		I18n:               i18nService,
		Athletes:           httphandlers.NewAthleteHandler(athleteService, logger),
		Categories:         httphandlers.NewCategoryHandler(categoryService, logger),
		TrainingCenters:    httphandlers.NewTrainingCenterHandler(trainingCenterService, logger),
	})

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Info("server exited")
}

// newI18nService usa o diretório configurado quando ele existe; senão, os catálogos embutidos
func newI18nService(cfg config.I18nConfig, logger ports.Logger) (*i18n.Service, error) {
	if cfg.LocalesDir != "" {
		if _, err := os.Stat(cfg.LocalesDir); err == nil {
			return i18n.NewService(cfg.LocalesDir, cfg.DefaultLanguage)
		}
		logger.Warn("locales dir not found, using embedded catalogs", "dir", cfg.LocalesDir)
	}
	return i18n.NewEmbeddedService(cfg.DefaultLanguage)
}
