// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"time"

	"github.com/opsdesk/taskboard/internal/auth"
	"github.com/opsdesk/taskboard/internal/config"
	"github.com/opsdesk/taskboard/internal/email"
	"github.com/opsdesk/taskboard/internal/handler"
	"github.com/opsdesk/taskboard/internal/legacy"
	"github.com/opsdesk/taskboard/internal/middleware"
	"github.com/opsdesk/taskboard/internal/repository"
	"github.com/opsdesk/taskboard/internal/service"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize structured logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(log)

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := setupDatabase(cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}

	// Initialize the legacy session store when configured
	var sessionStore service.LegacySessionStoreIface
	if cfg.Legacy.URL != "" {
		store, err := legacy.Connect(context.Background(), cfg.Legacy.URL)
		if err != nil {
			return fmt.Errorf("connecting legacy session store: %w", err)
		}
		defer store.Close()
		sessionStore = store
	} else {
		log.Warn("legacy session store not configured, external sessions disabled")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	divisionRepo := repository.NewDivisionRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	// Initialize auth services
	pinHasher := auth.NewPINHasher()
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)

	// Initialize email service when configured
	var emailService *email.Service
	if cfg.Sendgrid.APIKey != "" {
		emailService, err = email.NewEmailService(cfg, email.ProviderSendgrid)
		if err != nil {
			return fmt.Errorf("initializing email service: %w", err)
		}
	} else {
		log.Warn("email not configured, assignment notifications disabled")
	}

	// Initialize services
	activityService := service.NewActivityService(activityRepo)
	policy := service.NewTaskPolicy()
	identityService := service.NewIdentityService(userRepo, sessionStore, pinHasher, tokenManager)
	taskService := service.NewTaskService(taskRepo, divisionRepo, userRepo, activityService, policy, emailService, cfg)
	divisionService := service.NewDivisionService(divisionRepo, activityService)
	userService := service.NewUserService(userRepo, divisionRepo, activityService, pinHasher)
	dashboardService := service.NewDashboardService(taskRepo, activityService)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(identityService)
	taskHandler := handler.NewTaskHandler(taskService)
	divisionHandler := handler.NewDivisionHandler(divisionService)
	assigneeHandler := handler.NewAssigneeHandler(userService)
	timelineHandler := handler.NewTimelineHandler(activityService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	// Create router
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(loggingMiddleware(log))
	r.Use(recoveryMiddleware(log))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Every route sees the session middleware so an external session id
		// can bootstrap a local session anywhere.
		r.Use(middleware.Session(tokenManager, identityService))

		// Public routes
		r.Group(func(r chi.Router) {
			r.Use(chimw.AllowContentType("application/json"))
			r.Post("/login", authHandler.LoginHandler)
			r.Post("/logout", authHandler.LogoutHandler)
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireUser)

			r.Get("/me", authHandler.MeHandler)
			r.Get("/dashboard", dashboardHandler.IndexHandler)
			r.Get("/timeline", timelineHandler.IndexHandler)

			r.Route("/tasks", func(r chi.Router) {
				r.Get("/", taskHandler.IndexHandler)
				r.Post("/", taskHandler.StoreHandler)
				r.Get("/{id}", taskHandler.ShowHandler)
				r.Put("/{id}", taskHandler.UpdateHandler)
				r.Delete("/{id}", taskHandler.DestroyHandler)

				r.Post("/{id}/updates", taskHandler.StoreUpdateHandler)
				r.Put("/{id}/updates/{updateID}", taskHandler.EditUpdateHandler)
				r.Delete("/{id}/updates/{updateID}", taskHandler.DestroyUpdateHandler)
			})

			r.Route("/divisions", func(r chi.Router) {
				r.Get("/", divisionHandler.IndexHandler)
				r.Post("/", divisionHandler.StoreHandler)
				r.Put("/{id}", divisionHandler.UpdateHandler)
				r.Delete("/{id}", divisionHandler.DestroyHandler)
			})

			r.Route("/assignees", func(r chi.Router) {
				r.Get("/", assigneeHandler.IndexHandler)
				r.Post("/", assigneeHandler.StoreHandler)
				r.Put("/{id}", assigneeHandler.UpdateHandler)
				r.Delete("/{id}", assigneeHandler.DestroyHandler)
			})
		})
	})

	// Create server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Server error channel
	serverErrors := make(chan error, 1)

	// Start server
	go func() {
		log.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Shutdown channel
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)

	// Wait for shutdown or error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.Info("shutdown started", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Gracefully shutdown the server
		if err := srv.Shutdown(ctx); err != nil {
			// If shutdown times out, forcefully close
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func setupDatabase(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s search_path=%s",
		cfg.Database.Host,
		cfg.Database.Port,
		cfg.Database.User,
		cfg.Database.Password,
		cfg.Database.Name,
		cfg.Database.SSLMode,
		cfg.Database.SearchPath,
	)

	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(dsn), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

func loggingMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				log.Info("request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"duration", time.Since(start),
					"status", ww.Status(),
					"size", ww.BytesWritten(),
					"requestID", chimw.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func recoveryMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					err := errors.New("panic recovered")
					log.Error("panic recovered",
						"error", err,
						"panic", rvr,
						"stack", string(debug.Stack()),
						"requestID", chimw.GetReqID(r.Context()),
					)

					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte("{\"error\":\"error encountered\"}"))
					return
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
