package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"easypark-backend/config"
	"easypark-backend/internal/api"
	"easypark-backend/internal/db"
	"easypark-backend/internal/lot"
	"easypark-backend/internal/notification"
	"easypark-backend/internal/store"

	"github.com/SherClockHolmes/webpush-go"
)

// eventLogger mirrors every engine event to the process log.
type eventLogger struct {
	logger *log.Logger
}

func (e *eventLogger) OnEvent(eventType lot.EventType, message string) {
	prefix := "SUCCESS"
	if eventType == lot.EventParkingFailed || eventType == lot.EventRemovalFailed {
		prefix = "FAILED"
	}
	e.logger.Printf("%s [%s] %s", prefix, eventType, message)
}

func main() {
	// Setup logger
	logger := log.New(os.Stdout, "parkd ", log.LstdFlags)

	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}
	logger.Printf("configuration loaded successfully from %s", configPath)

	// Initialize the event journal database
	gormDB, err := db.Init(&cfg.Journal)
	if err != nil {
		logger.Fatalf("failed to initialize journal database: %v", err)
	}
	journal := store.NewGormStore(gormDB)
	logger.Println("event journal initialized")

	// Create a context that can be cancelled
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Allocation engine plus its observers. The journal recorder and the
	// log mirror are always attached; push delivery only when configured.
	engine := lot.New()
	engine.AttachObserver(&eventLogger{logger: logger})
	engine.AttachObserver(store.NewRecorder(journal))

	registry := notification.NewRegistry()
	webpushOptions := &webpush.Options{
		VAPIDPublicKey:  cfg.Push.PublicKey,
		VAPIDPrivateKey: cfg.Push.PrivateKey,
		Subscriber:      cfg.Push.Subject,
		TTL:             cfg.Push.TTL,
	}

	if cfg.Push.Enabled {
		if cfg.Push.PublicKey == "" || cfg.Push.PrivateKey == "" {
			logger.Fatalf("push is enabled but VAPID keys are not configured")
		}
		workerPool := notification.NewWorkerPool(cfg.WorkerPool.Size, cfg.WorkerPool.QueueSize, registry, webpushOptions)
		workerPool.Start(ctx)
		engine.AttachObserver(workerPool)
		logger.Printf("push notifications enabled with %d workers", cfg.WorkerPool.Size)
	}

	if cfg.Lot.CreateOnStart {
		if err := engine.Create(cfg.Lot.RegularCapacity, cfg.Lot.EVCapacity, cfg.Lot.Level); err != nil {
			logger.Fatalf("failed to create parking lot: %v", err)
		}
	}

	// Initialize router
	handler := api.NewHandler(engine, journal, registry, webpushOptions)
	router := api.NewRouter(handler, &cfg.Server)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start the server in a goroutine
	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	// Setup signal handling for graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	// Block until a signal is received.
	<-stop
	logger.Println("Shutdown signal received, stopping services...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}

	logger.Println("Server gracefully stopped")
}
