// Package main Pagekit Articles API
// @title Pagekit Articles API
// @version 1.0
// @description A paged browse API over a collection of written articles
// @license.name Apache 2.0
// @license.url https://opensource.org/licenses/Apache-2.0
// @BasePath /
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"
	"github.com/pagekit-go/pagekit/internal/router"
	"github.com/pagekit-go/pagekit/internal/seed"
	"github.com/pagekit-go/pagekit/internal/server"
	"github.com/pagekit-go/pagekit/internal/storage"
	"github.com/pagekit-go/pagekit/internal/storage/factory"
)

func main() {
	sCfg, err := server.LoadConfig()
	if err != nil {
		slog.Error("Failed to load server config", "error", err)
		os.Exit(1)
	}

	appCfg, err := NewAppConfig().Load()
	if err != nil {
		slog.Error("Failed to load app configuration", "error", err)
		os.Exit(1)
	}

	st, err := factory.New(context.Background(), appCfg.StorageConfig)
	if err != nil {
		slog.Error("Failed to create storage backend", "error", err)
		os.Exit(1)
	}

	if appCfg.StorageConfig.Type == storage.InMem && appCfg.SeedPath != "" {
		if err := seedInMem(appCfg.SeedPath, st); err != nil {
			slog.Error("Failed to seed in-memory storage", "error", err, "path", appCfg.SeedPath)
			os.Exit(1)
		}
	}

	s := server.New(sCfg, st.Health).
		SetupMiddlewares().
		SetupHealthChecks().
		SetupOpenApi()

	s.Echo.GET("/", func(c echo.Context) error {
		return c.String(200, "Pagekit Articles API is running")
	})

	articlesRouter := router.NewArticlesRouter(s.Echo, st.Reader)
	articlesRouter.Bind()

	go func() {
		<-s.ShutdownSignal()
		slog.Info("Shutdown started, cleaning up resources...")
		st.Close()
	}()

	if err := s.Start(); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}

func seedInMem(path string, st *factory.Storage) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	articles, err := seed.NewLoader(f).Load()
	if err != nil {
		return err
	}
	return st.Storer.SaveBulk(context.Background(), articles)
}
