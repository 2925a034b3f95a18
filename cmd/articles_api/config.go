package main

import (
	"log/slog"
	"os"

	"github.com/pagekit-go/pagekit/internal/storage/factory"
	"github.com/pagekit-go/pagekit/pkg/config/env"
)

type AppConfig struct {
	ENV string
}

func NewAppConfig() *AppConfig {
	return &AppConfig{
		ENV: os.Getenv("ENV"),
	}
}

type ArticlesApiConfig struct {
	StorageConfig *factory.StorageConfig
	SeedPath      string
}

func (ac *AppConfig) Load() (*ArticlesApiConfig, error) {
	if err := env.LoadDotEnv(ac.ENV, "cmd/articles_api/.env"); err != nil {
		slog.Info("Failed to load .env, continuing with existing environment variables", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		return nil, err
	}

	return &ArticlesApiConfig{
		StorageConfig: storageCfg,
		SeedPath:      os.Getenv("SEED_PATH"),
	}, nil
}
