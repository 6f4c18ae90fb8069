package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/Jagadeeshroc/backend-of-Achyuta/database"
	"github.com/Jagadeeshroc/backend-of-Achyuta/internal/config"
	"github.com/Jagadeeshroc/backend-of-Achyuta/internal/handlers"
	"github.com/Jagadeeshroc/backend-of-Achyuta/internal/logger"
	"github.com/Jagadeeshroc/backend-of-Achyuta/internal/middleware"
	"github.com/Jagadeeshroc/backend-of-Achyuta/internal/repositories"
	"github.com/Jagadeeshroc/backend-of-Achyuta/internal/routes"
	"github.com/Jagadeeshroc/backend-of-Achyuta/internal/services"
	"github.com/Jagadeeshroc/backend-of-Achyuta/internal/validator"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.Connect(cfg.Database.DSN)
	if err != nil {
		logger.Fatal("Failed to connect to GORM", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(gormDB); err != nil {
		logger.Fatal("AutoMigrate failed", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    address,
		Handler: ginRouter,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info(fmt.Sprintf("Server starting on %s", address))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Forced shutdown", "error", err)
	}

	// The db handle is scoped to Run and released on the way out.
	if err := sqlDB.Close(); err != nil {
		logger.Error("Failed to close database", "error", err)
	}
	logger.Info("Server stopped")
}

// SetupRouter wires repositories, services, handlers and routes onto a gin
// engine. The integration tests reuse it against their own db handle.
func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices()
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(cfg, gormDB)
	routes.RegisterRoutes(ginRouter, appHandlers, serviceContainer.AuthService)

	return ginRouter
}

func initializeServices() *services.ServiceContainer {
	userRepo := repositories.NewUserRepository()
	jobRepo := repositories.NewJobRepository()
	reviewRepo := repositories.NewReviewRepository()

	return &services.ServiceContainer{
		AuthService:   services.NewAuthService(userRepo),
		UserService:   services.NewUserService(userRepo, jobRepo),
		JobService:    services.NewJobService(jobRepo, userRepo),
		ReviewService: services.NewReviewService(reviewRepo, jobRepo),
	}
}

func initializeHandlers(container *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:   handlers.NewAuthHandler(baseHandler, container.AuthService),
		UserHandler:   handlers.NewUserHandler(baseHandler, container.UserService),
		JobHandler:    handlers.NewJobHandler(baseHandler, container.JobService),
		ReviewHandler: handlers.NewReviewHandler(baseHandler, container.ReviewService),
	}
}

func initializeGinRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORS.FrontendURL))
	router.Use(middleware.DBMiddleware(db))
	return router
}
