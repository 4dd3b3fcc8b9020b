package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/courseatlas/backend/docs"
	"github.com/courseatlas/backend/internal/config"
	"github.com/courseatlas/backend/internal/handlers"
	"github.com/courseatlas/backend/internal/logger"
	"github.com/courseatlas/backend/internal/middleware"
	"github.com/courseatlas/backend/internal/models"
	"github.com/courseatlas/backend/internal/repositories"
	"github.com/courseatlas/backend/internal/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title CourseAtlas API
// @version 1.0
// @description API for managing courses, their modules, topics and tests

// @contact.name API Support

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
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

	logger.Logger.Info("Starting CourseAtlas API", zap.String("storage", cfg.Storage.Backend))

	// Initialize storage backend
	repo, cleanup, err := buildRepository(cfg)
	if err != nil {
		logger.Logger.Fatal("Failed to initialize storage", zap.Error(err))
	}
	defer cleanup()

	// Initialize identifier allocation past whatever the backend already holds
	ids := services.NewIDAllocator()
	if courses, err := repo.GetAll(context.Background()); err == nil {
		ids.ObserveCourses(courses)
	}

	// Initialize services
	courseService := services.NewCourseService(repo, ids, logger.Logger)
	moduleService := services.NewModuleService(repo, ids, logger.Logger)
	topicService := services.NewTopicService(repo, ids, logger.Logger)
	testService := services.NewTestService(repo, ids, logger.Logger)
	searchService := services.NewSearchService(repo, logger.Logger)

	// Initialize handlers
	courseHandler := handlers.NewCoursesHandler(courseService, logger.Logger)
	moduleHandler := handlers.NewModulesHandler(moduleService, logger.Logger)
	topicHandler := handlers.NewTopicsHandler(topicService, logger.Logger)
	testHandler := handlers.NewTestsHandler(testService, logger.Logger)
	searchHandler := handlers.NewSearchHandler(searchService, logger.Logger)
	healthHandler := handlers.NewHealthHandler(logger.Logger)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggerMiddleware(logger.Logger))
	r.Use(middleware.RecoveryMiddleware(logger.Logger))
	r.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(middleware.RequestSizeLimitMiddleware)

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// Scope router to /api
	r.Route("/api", func(r chi.Router) {
		healthHandler.RegisterRoutes(r)
		courseHandler.RegisterRoutes(r)
		moduleHandler.RegisterRoutes(r)
		topicHandler.RegisterRoutes(r)
		testHandler.RegisterRoutes(r)
		searchHandler.RegisterRoutes(r)
	})

	// Unknown routes get the same envelope as API errors
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"message":"Route not found"}`))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusMethodNotAllowed)
		w.Write([]byte(`{"success":false,"message":"Method not allowed"}`))
	})

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
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

	logger.Logger.Info("Server exited")
}

// buildRepository constructs the configured storage backend. The returned
// cleanup closes any resources the backend holds.
func buildRepository(cfg *config.Config) (services.CourseRepository, func(), error) {
	if cfg.Storage.Backend == config.StorageMemory {
		return repositories.NewMemoryCourseRepository(models.SeedCourses()), func() {}, nil
	}

	db, err := connectDB(cfg.DSN())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	repo := repositories.NewMySQLCourseRepository(db, logger.Logger)

	// First boot on an empty database gets the same seed catalog the
	// in-memory backend starts with.
	count, err := repo.Count(context.Background())
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to count courses: %w", err)
	}
	if count == 0 {
		if err := repo.ReplaceAll(context.Background(), models.SeedCourses()); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to seed catalog: %w", err)
		}
	}

	return repo, func() { db.Close() }, nil
}

// connectDB connects to the database
func connectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB) error {
	driver, err := mysql.WithInstance(db, &mysql.Config{
		MigrationsTable: "course_schema_migrations",
	})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	migrationPath := "file://migrations"
	if _, err := os.Stat("migrations"); os.IsNotExist(err) {
		// Try parent directory if running from cmd
		if _, err := os.Stat("../migrations"); err == nil {
			migrationPath = "file://../migrations"
		}
	}

	m, err := migrate.NewWithDatabaseInstance(
		migrationPath,
		"mysql",
		driver,
	)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
