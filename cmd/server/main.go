package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/TSJean45/owewow/internal/config"
	"github.com/TSJean45/owewow/internal/handlers"
	"github.com/TSJean45/owewow/internal/logging"
	"github.com/TSJean45/owewow/pkg/server"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	logging.Init(cfg.LogLevel, config.GetEnvAsBool("LOG_JSON", false))

	// Initialize dependencies
	container, err := server.NewContainer(context.Background(), cfg)
	if err != nil {
		logrus.Fatalf("Failed to initialize container: %v", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := handlers.NewRouter(&handlers.RouterConfig{
		ReceiptService:    container.ReceiptService,
		ProxyService:      container.ProxyService,
		RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
		Burst:             cfg.RateLimit.Burst,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	logrus.WithFields(logrus.Fields{
		"port":    cfg.Port,
		"mode":    config.GetDeploymentMode(),
		"invoker": cfg.Invoker.Type,
		"region":  cfg.AWS.Region,
	}).Info("Server started")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exited")
}
