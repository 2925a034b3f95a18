package storage

import (
	"context"

	"github.com/google/uuid"
	"github.com/pagekit-go/pagekit/internal/domain"
)

// Reader provides paged access to the stored article collection in the
// backend's stable order (newest first for pg and es, insertion order for
// the in-memory store). It is structurally a
// pagedlist.Source[domain.Article], so it plugs straight into
// pagedlist.FromSource.
type Reader interface {
	Count(ctx context.Context) (int64, error)
	Slice(ctx context.Context, offset, limit int) ([]domain.Article, error)
}

type Storer interface {
	Save(ctx context.Context, article domain.Article) (uuid.UUID, error)
	SaveBulk(ctx context.Context, articles []domain.Article) error
}

type Type string

const (
	PG    Type = "pg"
	ES    Type = "es"
	InMem Type = "in_mem"
)

type StorerError string

const (
	ErrUnsupportedStorer StorerError = "unsupported storage type: %s"
)

func (e StorerError) Error() string {
	return string(e)
}
