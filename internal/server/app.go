// Package server wires the userdesk backend together: a user repository
// (in-memory or PostgreSQL) behind the HTTP API, with graceful shutdown on
// OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"

	"github.com/dmitrijs2005/userdesk/internal/logging"
	"github.com/dmitrijs2005/userdesk/internal/server/config"
	"github.com/dmitrijs2005/userdesk/internal/server/db"
	"github.com/dmitrijs2005/userdesk/internal/server/httpapi"
	"github.com/dmitrijs2005/userdesk/internal/server/users"
)

type App struct {
	config *config.Config
	logger logging.Logger
	repo   users.Repository
	sqlDB  *sql.DB
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slogger)

	app := &App{config: cfg, logger: logger}

	if cfg.DatabaseDSN != "" {
		sqlDB, err := db.Open(ctx, cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}
		app.sqlDB = sqlDB
		app.repo = users.NewPostgresRepository(sqlDB)
	} else {
		app.repo = users.NewInMemoryRepository(nil)
	}

	return app, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "addr", app.config.Addr)

	app.initSignalHandler(cancelFunc)

	fiberApp := fiber.New(fiber.Config{DisableStartupMessage: true})
	httpapi.NewHandler(app.repo, app.logger).Register(fiberApp)

	go func() {
		<-ctx.Done()
		if err := fiberApp.Shutdown(); err != nil {
			app.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	if err := fiberApp.Listen(app.config.Addr); err != nil {
		app.logger.Error(ctx, err.Error())
	}

	if app.sqlDB != nil {
		if err := app.sqlDB.Close(); err != nil {
			app.logger.Error(ctx, "db close error", "error", err)
		}
	}

	app.logger.Info(ctx, "App stopped")
}
