package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/sm8ta/cep_cache_microservice/docs"
	"github.com/sm8ta/cep_cache_microservice/internal/adapter/logger"
	"github.com/sm8ta/cep_cache_microservice/internal/app"
	"github.com/sm8ta/cep_cache_microservice/internal/config"
)

const shutdownTimeout = 10 * time.Second

// @title CEP Cache Microservice API
// @version 1.0
// @description Resolves Brazilian postal codes, caching ViaCEP answers

// @host localhost:8080
// @BasePath /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Loading environment
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Set logger
	loggerAdapter := logger.NewLoggerAdapter(cfg.App.Env)
	loggerAdapter.Info("Starting the application", map[string]interface{}{
		"app":   cfg.App.Name,
		"env":   cfg.App.Env,
		"store": cfg.Store.Driver,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	application, err := app.New(ctx, cfg, loggerAdapter, nil)
	cancel()
	if err != nil {
		log.Fatalf("Error initializing application: %v", err)
	}

	go func() {
		if err := application.Run(); err != nil {
			log.Fatal("Error starting the HTTP server:", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)

	loggerAdapter.Info("Application is running", map[string]interface{}{
		"addr": application.Addr(),
	})

	<-stop

	loggerAdapter.Info("Shutting down", nil)
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	if err := application.Stop(shutdownCtx); err != nil {
		loggerAdapter.Error("Shutdown failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
	loggerAdapter.Info("Application stopped", nil)
}
