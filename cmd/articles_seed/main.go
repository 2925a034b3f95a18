// Command articles_seed loads article fixtures from a YAML file into the
// configured storage backend.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/pagekit-go/pagekit/internal/seed"
	"github.com/pagekit-go/pagekit/internal/storage"
	"github.com/pagekit-go/pagekit/internal/storage/factory"
	"github.com/pagekit-go/pagekit/pkg/config/env"
)

const defaultSeedPath = "db/seed/articles.yaml"

func main() {
	if err := env.LoadDotEnv(os.Getenv("ENV"), "cmd/articles_seed/.env"); err != nil {
		slog.Info("Failed to load .env, continuing with existing environment variables", "error", err)
	}

	storageCfg, err := factory.LoadEnv()
	if err != nil {
		slog.Error("Failed to load storage configuration", "error", err)
		os.Exit(1)
	}
	if storageCfg.Type == storage.InMem {
		slog.Error("In-memory storage cannot be seeded from a separate process, set STORAGE_TYPE to pg or es")
		os.Exit(1)
	}

	path := os.Getenv("SEED_PATH")
	if path == "" {
		path = defaultSeedPath
	}

	ctx := context.Background()

	st, err := factory.New(ctx, storageCfg)
	if err != nil {
		slog.Error("Failed to create storage backend", "error", err)
		os.Exit(1)
	}
	defer st.Close()

	f, err := os.Open(path)
	if err != nil {
		slog.Error("Failed to open seed file", "error", err, "path", path)
		os.Exit(1)
	}
	defer f.Close()

	articles, err := seed.NewLoader(f).Load()
	if err != nil {
		slog.Error("Failed to load seed fixtures", "error", err, "path", path)
		os.Exit(1)
	}

	if err := st.Storer.SaveBulk(ctx, articles); err != nil {
		slog.Error("Failed to save articles", "error", err)
		os.Exit(1)
	}

	slog.Info("Seeded articles", "count", len(articles), "storage", storageCfg.Type)
}
