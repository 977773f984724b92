// Package server initializes and runs the studyboard server: it opens
// the configured database backend, bootstraps the schema, wires the
// services, and serves the HTTP API until shutdown.
package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/studyboard/internal/common"
	"github.com/dmitrijs2005/studyboard/internal/logging"
	"github.com/dmitrijs2005/studyboard/internal/server/config"
	"github.com/dmitrijs2005/studyboard/internal/server/httpapi"
	"github.com/dmitrijs2005/studyboard/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/studyboard/internal/server/services"
	"github.com/dmitrijs2005/studyboard/internal/server/sessions"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *httpapi.Server
}

// NewApp wires the application. An unreachable database is fatal here:
// the error is returned to main, reported, and the process stops.
func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, repos, err := repomanager.Open(ctx, cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	if err := repos.EnsureSchema(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("schema init error: %w", err)
	}

	sm := sessions.NewManager()
	userService := services.NewUserService(db, repos, sm)
	profileService := services.NewProfileService(db, repos)
	studyLogService := services.NewStudyLogService(db, repos)
	chatService := services.NewChatService(db, repos)

	if cfg.BootstrapAdmin != "" {
		err := userService.PromoteToAdmin(ctx, cfg.BootstrapAdmin)
		if err != nil && !errors.Is(err, common.ErrorNotFound) {
			_ = db.Close()
			return nil, fmt.Errorf("admin bootstrap error: %w", err)
		}
		if errors.Is(err, common.ErrorNotFound) {
			logger.Warn(ctx, "bootstrap admin does not exist yet", "username", cfg.BootstrapAdmin)
		}
	}

	srv := httpapi.NewServer(cfg.EndpointAddr, logger, sm, userService, profileService, studyLogService, chatService)

	return &App{config: cfg, logger: logger, db: db, server: srv}, nil
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

	app.logger.Info(ctx, "Starting app...",
		"address", app.config.EndpointAddr,
		"driver", app.config.DatabaseDriver,
	)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
