package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/benventuring/backend/docs"
	"github.com/benventuring/backend/internal/config"
	"github.com/benventuring/backend/internal/handlers"
	"github.com/benventuring/backend/internal/logger"
	loggerMiddleware "github.com/benventuring/backend/internal/logger/middleware"
	"github.com/benventuring/backend/internal/middlewares"
	"github.com/benventuring/backend/internal/models"
	"github.com/benventuring/backend/internal/services"
	"github.com/benventuring/backend/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

const (
	rootMessage    = "Ben Venturing API is running"
	maxRequestSize = 1 << 20 // 1MB
)

// documentStore is everything the services need from the storage layer
type documentStore interface {
	services.DocumentStore
	services.StoreProbe
}

// @title Ben Venturing API
// @version 1.0
// @description Courses, portfolio, inquiries and leads for the Ben Venturing site

// @contact.name API Support

// @host localhost:8000
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting Ben Venturing API")

	// Connect to the document store. A failed connection leaves the API up
	// with storage-backed endpoints answering 500.
	store := storage.Connect(context.Background(), storage.Options{
		URI:      cfg.Database.URL,
		Database: cfg.Database.Name,
		Timeout:  cfg.Database.Timeout,
	}, logger.Logger)

	ensureSeedIndexes(context.Background(), store, logger.Logger)

	r := newRouter(cfg, store, logger.Logger)

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// Start server
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := store.Close(ctx); err != nil {
		logger.Logger.Error("Failed to close storage client", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

// ensureSeedIndexes creates the unique seed-key indexes on the seeded
// collections. Failures are logged and startup continues.
func ensureSeedIndexes(ctx context.Context, store documentStore, zlog *zap.Logger) {
	if !store.Available() {
		return
	}
	seeder := services.NewSeeder(store, zlog)
	if err := seeder.EnsureIndexes(ctx, models.CollectionCourse, models.CollectionPortfolioItem); err != nil {
		zlog.Warn("Failed to create seed indexes", zap.Error(err))
	}
}

// newRouter wires services and handlers over store and applies the middleware chain
func newRouter(cfg *config.Config, store documentStore, zlog *zap.Logger) chi.Router {
	// Initialize services
	seeder := services.NewSeeder(store, zlog)
	coursesService := services.NewCoursesService(store, seeder, zlog)
	portfolioService := services.NewPortfolioService(store, seeder, zlog)
	inquiriesService := services.NewInquiriesService(store, zlog)
	leadsService := services.NewLeadsService(store, zlog)
	diagnosticsService := services.NewDiagnosticsService(store, cfg.DatabaseURLSet(), cfg.DatabaseNameSet(), zlog)
	schemaService := services.NewSchemaService()

	// Initialize handlers
	systemHandler := handlers.NewSystemHandler(diagnosticsService, schemaService, rootMessage, zlog)
	coursesHandler := handlers.NewCoursesHandler(coursesService, zlog)
	portfolioHandler := handlers.NewPortfolioHandler(portfolioService, zlog)
	inquiriesHandler := handlers.NewInquiriesHandler(inquiriesService, zlog)
	leadsHandler := handlers.NewLeadsHandler(leadsService, zlog)

	r := chi.NewRouter()

	// Apply middleware
	r.Use(middlewares.RequestIDMiddleware)
	r.Use(loggerMiddleware.LoggerMiddleware(zlog))
	r.Use(middlewares.RecoveryMiddleware(zlog))
	r.Use(middlewares.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(cfg.RateLimit.RequestsPerMinute, time.Minute))
	r.Use(middlewares.RequestSizeLimitMiddleware(maxRequestSize))

	systemHandler.RegisterRoutes(r)
	coursesHandler.RegisterRoutes(r)
	portfolioHandler.RegisterRoutes(r)
	inquiriesHandler.RegisterRoutes(r)
	leadsHandler.RegisterRoutes(r)

	return r
}
