package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"marathon-submissions/core/cache"
	"marathon-submissions/core/config"
	"marathon-submissions/core/constants"
	"marathon-submissions/core/database"
	"marathon-submissions/core/logger"
	"marathon-submissions/core/middleware"
	"marathon-submissions/core/queue"
	"marathon-submissions/modules/availability"
	"marathon-submissions/modules/event"
	"marathon-submissions/modules/notification"
	"marathon-submissions/modules/profile"
	"marathon-submissions/modules/submission"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Run boots the HTTP server and the notification worker, and blocks until
// shutdown.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Init(cfg.Server.LogLevel)

	db, err := database.InitDB(database.DatabaseConfig{
		Host:     cfg.Database.Host,
		Port:     cfg.Database.Port,
		User:     cfg.Database.User,
		Password: cfg.Database.Password,
		DBName:   cfg.Database.DBName,
	})
	if err != nil {
		return err
	}

	if err := cache.Init(cfg.Redis); err != nil {
		return err
	}
	defer cache.Close()

	queueClient := queue.NewClient(cfg.Redis)
	defer queueClient.Close()
	worker, mux := queue.NewServer(cfg.Redis)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.CORS())

	mw := middleware.New()
	e.Use(mw.RequestIDMiddleware())

	// The event service doubles as the current-event resolver, so it is
	// wired into the middleware after init.
	eventService := event.Init(e, db, mw)
	mw.SetEventResolver(eventService)

	availabilityService := availability.Init(e, db, mw)
	profile.Init(e, db, mw, availabilityService)
	submission.Init(e, db, mw, availabilityService, queueClient)
	notification.Init(e, db, mw, mux)

	go func() {
		if err := worker.Run(mux); err != nil {
			logger.Error("Server:Worker", err)
		}
	}()

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Error("Server:Start", err)
		}
	}()
	logger.Info("Server started", "host", cfg.Server.Host, "port", cfg.Server.Port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down...")

	worker.Shutdown()

	ctx, cancel := context.WithTimeout(context.Background(), constants.DefaultRequestTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server:Shutdown", err)
		return err
	}
	return nil
}
