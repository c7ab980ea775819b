// Package server initializes and runs the application: database, object
// storage, auth stack, and the HTTP endpoint, with graceful shutdown on
// OS signals.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/portfolio-backend/internal/logging"
	"github.com/dmitrijs2005/portfolio-backend/internal/server/auth"
	"github.com/dmitrijs2005/portfolio-backend/internal/server/config"
	hs "github.com/dmitrijs2005/portfolio-backend/internal/server/http"
	"github.com/dmitrijs2005/portfolio-backend/internal/server/mailer"
	"github.com/dmitrijs2005/portfolio-backend/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/portfolio-backend/internal/server/services"
	"github.com/dmitrijs2005/portfolio-backend/internal/server/storage"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *hs.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	store, err := storage.NewS3Store(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("object storage init error: %w", err)
	}

	codec := auth.NewCodec(cfg)
	gate := auth.NewGate(codec)
	renewer := auth.NewRenewer(codec)

	userService := services.NewUserService(db, rm, renewer)
	projectService := services.NewProjectService(db, rm, store, logger)

	server := hs.NewServer(
		cfg.EndpointAddr,
		logger,
		gate,
		renewer,
		userService,
		projectService,
		store,
		mailer.NewSMTPMailer(cfg),
	)

	return &App{config: cfg, logger: logger, db: db, server: server}, nil
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

	app.logger.Info(ctx, "Starting app...")

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
		app.logger.Error(ctx, "db close error", "error", err.Error())
	}
}
