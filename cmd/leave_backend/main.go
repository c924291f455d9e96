package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/SscSPs/leave_tracker_app/internal/core/ports/repositories"
	"github.com/SscSPs/leave_tracker_app/internal/core/services"
	"github.com/SscSPs/leave_tracker_app/internal/handlers"
	"github.com/SscSPs/leave_tracker_app/internal/middleware"
	"github.com/SscSPs/leave_tracker_app/internal/platform/config"
	"github.com/SscSPs/leave_tracker_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/leave_tracker_app/internal/repositories/memory"
	"github.com/SscSPs/leave_tracker_app/migrations"
	"github.com/SscSPs/leave_tracker_app/pkg/database"
	"github.com/gin-gonic/gin"
)

// @title Leave Tracker API
// @version 1.0
// @description Team leave, overtime and leave-type tracking.

// @host localhost:8080
// @BasePath /api
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos, closeStore, err := openRepositories(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	serviceContainer := services.NewServiceContainer(cfg, repos)

	seedCtx, cancel := context.WithTimeout(middleware.WithLogger(context.Background(), logger), 30*time.Second)
	seeded, err := serviceContainer.Employee.SeedDefaultRoster(seedCtx)
	cancel()
	if err != nil {
		logger.Error("Failed to seed default roster", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Roster check complete", slog.Int("seeded", seeded))

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery(), middleware.CORS(cfg.CORSOrigins))

	err = r.SetTrustedProxies(cfg.TrustedProxies)
	if err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("storage", cfg.StorageBackend))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// openRepositories builds the configured storage backend, running migrations for PostgreSQL.
func openRepositories(cfg *config.Config, logger *slog.Logger) (repositories.RepositoryProvider, func(), error) {
	if cfg.StorageBackend == config.StorageMemory {
		return memory.NewRepositoryProvider(memory.NewStore()), func() {}, nil
	}

	ctx := context.Background()
	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, database.PoolOptions{
		Schema: cfg.DBSchema,
		Ping:   cfg.EnableDBCheck || cfg.RunMigrations,
	})
	if err != nil {
		return repositories.RepositoryProvider{}, nil, err
	}
	logger.Info("Database connection pool established.")

	if cfg.RunMigrations {
		logger.Info("Running database migrations...")
		if err := database.EnsureSchema(ctx, dbPool, cfg.DBSchema); err != nil {
			dbPool.Close()
			return repositories.RepositoryProvider{}, nil, err
		}
		if err := database.RunMigrations(dbPool, migrations.FS, cfg.DBSchema, logger); err != nil {
			dbPool.Close()
			return repositories.RepositoryProvider{}, nil, err
		}
	}

	return pgsql.NewRepositoryProvider(dbPool), func() { database.ClosePgxPool(dbPool) }, nil
}
