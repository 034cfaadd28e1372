package main

import (
	"context"
	"legacy-notes/config"
	"legacy-notes/config/setup"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	config.Load()

	logger := setup.NewLogger(os.Stdout, config.AppConfig.Env, config.AppConfig.LogLevel)
	slog.SetDefault(logger)

	db, err := setup.InitDatabase(config.AppConfig.DBDriver, config.AppConfig.DBPath, config.AppConfig.Locale, logger)
	if err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	application := setup.InitApp(db, logger)

	app := setup.NewFiberApp(config.AppConfig, logger)
	setup.ApplyMiddleware(app, config.AppConfig, logger)
	setup.RegisterRoutes(app, application)

	logger.Info("starting server", "port", config.AppConfig.Port, "env", config.AppConfig.Env)

	go func() {
		if err := app.Listen(":" + config.AppConfig.Port); err != nil {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server gracefully")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	setup.Shutdown(application, logger)
	logger.Info("server stopped")
}
