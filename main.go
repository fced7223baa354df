package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"ward_dashboard/config"
	"ward_dashboard/handlers"
	"ward_dashboard/middleware"
	"ward_dashboard/registry"
)

func main() {
	log.Println("Starting ward dashboard service...")

	cfg := config.Load()

	// Projection caches for leaderboard/search/stats responses
	config.InitCache()

	// Build the ward registry: synthetic data is regenerated fresh on every
	// start, nothing is persisted.
	reg := registry.NewSeeded(cfg.WardCount, cfg.Seed)
	reg.OnChange(config.ClearAllCaches)

	r := mux.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{
			"GET", "POST", "OPTIONS",
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			"Origin",
			"X-Requested-With",
		},
		ExposedHeaders: []string{
			"Content-Length",
			"Content-Type",
		},
		AllowCredentials: false,
		MaxAge:           86400,
	})

	// Apply middlewares in correct order
	r.Use(corsHandler.Handler)
	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.LoggingMiddleware)
	r.Use(middleware.CompressHandler)

	// API routes
	api := r.PathPrefix("/api/v1").Subrouter()
	handlers.New(reg, cfg.CacheEnabled).RegisterRoutes(api)
	log.Println("Routes registered successfully")

	// Periodic live updates: one random ward per tick, mirroring sensor
	// readings drifting in.
	stopUpdates := startLiveUpdates(reg, cfg.UpdateInterval)

	srv := &http.Server{
		Handler:           r,
		Addr:              ":" + cfg.Port,
		WriteTimeout:      15 * time.Second,
		ReadTimeout:       15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Printf("Starting server on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
			serverErrors <- err
		}
	}()

	log.Printf("Health check endpoint: http://localhost:%s/api/v1/health", cfg.Port)
	log.Printf("Ward list endpoint: http://localhost:%s/api/v1/wards", cfg.Port)

	// Handle graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("Shutdown signal received")
	case err := <-serverErrors:
		log.Printf("Server error received: %v", err)
	}

	log.Println("Shutting down server...")
	stopUpdates()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Error during server shutdown: %v", err)
	} else {
		log.Println("Server shutdown completed successfully")
	}
}

// startLiveUpdates perturbs one random ward's air reading every interval.
// The returned func stops the ticker.
func startLiveUpdates(reg *registry.Registry, interval time.Duration) func() {
	ticker := time.NewTicker(interval)
	done := make(chan struct{})

	go func() {
		for {
			select {
			case <-ticker.C:
				wardID := reg.UpdateRandomWard()
				log.Printf("Live update applied to ward %s", wardID)
			case <-done:
				return
			}
		}
	}()

	return func() {
		ticker.Stop()
		close(done)
	}
}
