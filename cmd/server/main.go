package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/spf13/pflag"

	"locshare/internal/app"
	"locshare/internal/config"
	"locshare/internal/directory"
	"locshare/internal/domain"
	"locshare/internal/handler"
	"locshare/internal/locationstore"
	"locshare/internal/service"
)

func main() {
	envFile := pflag.String("env-file", ".env", "dotenv file to load before reading the environment")
	pflag.Parse()

	if err := config.LoadFile(*envFile); err != nil {
		log.Fatalf("failed to load env file: %v", err)
	}

	// Load configuration.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic FIRST (before the store so we can instrument it).
	var nrApp *newrelic.Application
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			log.Printf("failed to initialize New Relic: %v", err)
		} else {
			log.Printf("New Relic enabled: app=%s", cfg.NewRelic.AppName)
		}
	}

	backend, err := app.NewBackend(ctx, cfg, nrApp)
	if err != nil {
		log.Fatalf("failed to open %s store: %v", cfg.Store.Backend, err)
	}
	defer backend.Close()

	locations := locationstore.NewStore(backend.Store, locationstore.WithKey(cfg.Store.Key))
	if err := locations.Initialize(ctx); err != nil {
		log.Fatalf("failed to initialize location table: %v", err)
	}

	var seed []domain.User
	if cfg.Store.SeedDirectory {
		seed = directory.SampleUsers()
		log.Printf("Seeded directory with %d sample users", len(seed))
	}
	users := directory.New(seed...)

	server := wireServer(locations, users, nrApp, cfg)

	// Start server in goroutine.
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("server forced to shutdown: %v", err)
	}
	if nrApp != nil {
		nrApp.Shutdown(5 * time.Second)
	}

	log.Println("Server exited")
}

// wireServer wires all dependencies and returns the HTTP server.
func wireServer(locations *locationstore.Store, users *directory.Directory, nrApp *newrelic.Application, cfg *config.Config) *http.Server {
	// Initialize services.
	authService := service.NewAuthService(users)
	directoryService := service.NewDirectoryService(users)
	locationService := service.NewLocationService(locations)

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		UserHandler:     handler.NewUserHandler(authService, directoryService),
		LocationHandler: handler.NewLocationHandler(locationService),
		AllowedOrigins:  cfg.Server.AllowedOrigins,
		NewRelicApp:     nrApp,
	})

	// Create HTTP server.
	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
}
