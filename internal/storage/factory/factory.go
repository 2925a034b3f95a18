package factory

import (
	"context"
	"fmt"

	"github.com/pagekit-go/pagekit/internal/storage"
	"github.com/pagekit-go/pagekit/internal/storage/es"
	"github.com/pagekit-go/pagekit/internal/storage/in_mem"
	"github.com/pagekit-go/pagekit/internal/storage/pg"
	pkgserver "github.com/pagekit-go/pagekit/pkg/server"
)

// Storage bundles the reader and storer for one configured backend so both
// sides of the same store share a connection pool.
type Storage struct {
	Reader storage.Reader
	Storer storage.Storer
	Health pkgserver.HealthChecker

	close func()
}

func (s *Storage) Close() {
	if s.close != nil {
		s.close()
	}
}

// New creates the storage backend selected by the config.
func New(ctx context.Context, cfg *StorageConfig) (*Storage, error) {
	switch cfg.Type {
	case storage.PG:
		pool, err := pg.NewConnectionPool(ctx, *cfg.Pg)
		if err != nil {
			return nil, fmt.Errorf("failed to create PostgreSQL connection pool: %w", err)
		}

		return &Storage{
			Reader: pg.NewReader(pool),
			Storer: pg.NewStorer(pool),
			Health: pg.NewHealthChecker(pool),
			close:  pool.Close,
		}, nil

	case storage.ES:
		reader, err := es.NewReader(*cfg.Es)
		if err != nil {
			return nil, err
		}
		storer, err := es.NewStorer(*cfg.Es)
		if err != nil {
			return nil, err
		}

		return &Storage{
			Reader: reader,
			Storer: storer,
			Health: pkgserver.NewOkHealthChecker(),
		}, nil

	case storage.InMem:
		store := in_mem.NewStore()
		return &Storage{
			Reader: store,
			Storer: store,
			Health: pkgserver.NewOkHealthChecker(),
		}, nil

	default:
		return nil, fmt.Errorf(string(storage.ErrUnsupportedStorer), cfg.Type)
	}
}
