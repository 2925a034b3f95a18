package es

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/google/uuid"
	"github.com/pagekit-go/pagekit/internal/domain"
	"github.com/pagekit-go/pagekit/internal/storage"
)

type Storer struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewStorer(config ClientConfig) (*Storer, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	return &Storer{
		client:    client,
		indexName: config.IndexName,
	}, nil
}

func (s *Storer) Save(ctx context.Context, article domain.Article) (uuid.UUID, error) {
	article = withDefaults(article)

	_, err := s.client.Index(s.indexName).
		Id(article.ID.String()).
		Document(documentFromDomain(article)).
		Do(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to index article: %w", err)
	}
	return article.ID, nil
}

func (s *Storer) SaveBulk(ctx context.Context, articles []domain.Article) error {
	for _, article := range articles {
		if _, err := s.Save(ctx, article); err != nil {
			return err
		}
	}
	slog.Info("Indexed articles", "count", len(articles), "index", s.indexName)
	return nil
}

func withDefaults(article domain.Article) domain.Article {
	if article.ID == uuid.Nil {
		article.ID = uuid.New()
	}
	if article.Language == "" {
		article.Language = domain.ArticleDefaultLanguage
	}
	if article.CreatedAt.IsZero() {
		article.CreatedAt = time.Now().UTC()
	}
	return article
}

var _ storage.Storer = (*Storer)(nil)
