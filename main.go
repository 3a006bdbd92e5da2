package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	gorilllaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"availabilityAPI/config"
	"availabilityAPI/handlers"
	"availabilityAPI/internal/store"
	"availabilityAPI/middleware"
	"availabilityAPI/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to parse database URL:", err)
	}

	poolConfig.MaxConns = 25
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	dbPool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Fatal("Failed to create connection pool:", err)
	}
	defer func() {
		log.Println("Closing database connection pool...")
		dbPool.Close()
	}()

	if err := dbPool.Ping(ctx); err != nil {
		log.Fatal("Failed to ping database:", err)
	}
	log.Println("Successfully connected to database")

	availabilityStore := store.NewAvailabilityStore(dbPool)
	if err := availabilityStore.InitSchema(ctx); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	middleware.InitPrometheus()

	availabilityService := services.NewAvailabilityService(availabilityStore, cfg.AdminPassword)
	sessions := middleware.NewSessionStore(middleware.AdminSessionTTL)

	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	adminHandler := handlers.NewAdminHandler(availabilityService, sessions, cfg.AdminSlug, cfg.IsProduction())

	r := mux.NewRouter()

	go middleware.CleanupVisitors()
	go sessions.CleanupSessions()

	r.Use(middleware.RateLimitMiddleware)
	r.Use(middleware.MonitorMiddleware)

	r.Handle("/metrics", middleware.BasicAuthMiddleware(promhttp.Handler(), cfg.MetricsUser, cfg.MetricsPass))

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := availabilityStore.Ping(ctx); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`{"status": "unhealthy", "error": "database connection failed"}`))
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy", "service": "availability-api"}`))
	}).Methods("GET")

	// -------------------------------------------------------------------------
	// PUBLIC API
	// -------------------------------------------------------------------------
	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/availability", availabilityHandler.GetMonthAvailability).Methods("GET")
	api.HandleFunc("/availability", availabilityHandler.UpdateDayStatus).Methods("PUT")
	api.HandleFunc("/admin/login", adminHandler.Login).Methods("POST")

	// -------------------------------------------------------------------------
	// ADMIN PAGES (SESSION COOKIE GATE)
	// -------------------------------------------------------------------------
	r.HandleFunc("/admin-login", adminHandler.LoginPage).Methods("GET")

	manage := r.PathPrefix("/manage/{slug}").Subrouter()
	manage.Use(middleware.AdminSessionMiddleware(sessions, cfg.AdminSlug))
	manage.HandleFunc("", adminHandler.ManagePage).Methods("GET")

	// CORS configuration
	corsHandler := gorilllaHandlers.CORS(
		gorilllaHandlers.AllowedOrigins([]string{"*"}),
		gorilllaHandlers.AllowedMethods([]string{"GET", "POST", "PUT", "OPTIONS"}),
		gorilllaHandlers.AllowedHeaders([]string{"Content-Type"}),
		gorilllaHandlers.ExposedHeaders([]string{"Content-Length"}),
	)

	server := http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      corsHandler(r),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Starting server on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Error starting server:", err)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)

	sig := <-sigChan
	log.Println("Got signal:", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}

	log.Println("Server shutdown complete")
}
