package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"toystore/internal/config"
	"toystore/internal/handlers"
	"toystore/internal/middleware"
	"toystore/internal/service"
	"toystore/internal/store"
	"toystore/pkg/logger"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting toy store api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	// Connect to the document store. A missing configuration or failed
	// connection degrades the store instead of aborting startup: list
	// endpoints keep answering with empty results, writes answer 503.
	st := connectStore(cfg, log)
	if ms, ok := st.(*store.MongoStore); ok {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := ms.Disconnect(ctx); err != nil {
				log.Error("failed to disconnect from store", "error", err)
			}
		}()
	}

	// Initialize services
	toyService := service.NewToyService(st)
	orderService := service.NewOrderService(st)
	seedService := service.NewSeedService(st, log)

	// Initialize handlers
	rootHandler := handlers.NewRootHandler(log)
	diagHandler := handlers.NewDiagnosticsHandler(st, cfg.Database.URL != "", cfg.Database.Name != "", log)
	toyHandler := handlers.NewToyHandler(toyService, log)
	orderHandler := handlers.NewOrderHandler(orderService, log)
	seedHandler := handlers.NewSeedHandler(seedService, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Liveness and diagnostics endpoints
	r.Get("/", rootHandler.Root)
	r.Get("/test", diagHandler.Diagnostics)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/hello", rootHandler.Hello)

		// Toy endpoints
		r.Get("/toys", toyHandler.ListToys)
		r.Post("/toys", toyHandler.CreateToy)
		r.Get("/toys/{toyID}", toyHandler.GetToy)

		// Order endpoints
		r.Post("/orders", orderHandler.CreateOrder)

		// Sample data bootstrap
		r.Get("/seed", seedHandler.Seed)
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}

// connectStore builds the document store from configuration, falling back
// to a disabled store when the database is unconfigured or unreachable.
func connectStore(cfg *config.Config, log *slog.Logger) store.Store {
	if !cfg.Database.Configured() {
		log.Warn("DATABASE_URL or DATABASE_NAME not set, store disabled")
		return store.NewDisabled()
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	ms, err := store.Connect(ctx, cfg.Database.URL, cfg.Database.Name)
	if err != nil {
		log.Warn("failed to connect to store, continuing degraded", "error", err)
		return store.NewDisabled()
	}

	log.Info("connected to document store", "database", cfg.Database.Name)
	return ms
}
