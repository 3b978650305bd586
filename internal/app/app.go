package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"

	"github.com/mbelkin/newsnotes/config"
	"github.com/mbelkin/newsnotes/internal/auth"
	"github.com/mbelkin/newsnotes/internal/db"
	"github.com/mbelkin/newsnotes/internal/newsroom"
	"github.com/mbelkin/newsnotes/internal/notes"
	"github.com/mbelkin/newsnotes/internal/rest"
	"github.com/mbelkin/newsnotes/internal/rpc"
)

type App struct {
	DB     *db.Repository
	Logger *slog.Logger
	Echo   *echo.Echo
	Config *config.Config
}

func New(cfg *config.Config, dbConnect *pg.DB, logger *slog.Logger) *App {
	repo := db.New(dbConnect)

	newsManager := newsroom.NewManager(repo, cfg.News.HomePageSize, cfg.Moderation.BadWords)
	noteManager := notes.NewManager(repo)
	authManager := auth.NewManager(repo, cfg.Auth.Secret, cfg.Auth.TokenTTL.Duration)

	handler := rest.NewHandler(newsManager, noteManager, authManager, cfg.Auth.TokenTTL.Duration, logger)
	rpcServer := rpc.New(logger, newsManager)

	return &App{
		DB:     repo,
		Logger: logger,
		Echo:   handler.RegisterRoutes(rpcServer),
		Config: cfg,
	}
}

func (a *App) Run(ctx context.Context, port int) error {
	addr := fmt.Sprintf(":%d", port)
	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
