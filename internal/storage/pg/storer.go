package pg

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pagekit-go/pagekit/internal/domain"
	"github.com/pagekit-go/pagekit/internal/storage"
)

const insertArticleSQL = `
	INSERT INTO articles (id, title, author, description, language, url, created_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (id) DO UPDATE SET
		title = EXCLUDED.title,
		author = EXCLUDED.author,
		description = EXCLUDED.description,
		language = EXCLUDED.language,
		url = EXCLUDED.url,
		created_at = EXCLUDED.created_at
`

type Storer struct {
	db *pgxpool.Pool
}

func NewStorer(pool *ConnectionPool) *Storer {
	return &Storer{db: pool.GetConn()}
}

func (s *Storer) Save(ctx context.Context, article domain.Article) (uuid.UUID, error) {
	article = withDefaults(article)

	_, err := s.db.Exec(ctx, insertArticleSQL, insertArgs(article)...)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save article: %w", err)
	}
	return article.ID, nil
}

func (s *Storer) SaveBulk(ctx context.Context, articles []domain.Article) error {
	batch := &pgx.Batch{}
	for _, article := range articles {
		batch.Queue(insertArticleSQL, insertArgs(withDefaults(article))...)
	}

	results := s.db.SendBatch(ctx, batch)
	defer results.Close()

	for range articles {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to save article batch: %w", err)
		}
	}
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

func insertArgs(article domain.Article) []any {
	return []any{
		article.ID,
		article.Title,
		article.Author,
		article.Description,
		article.Language,
		article.URL,
		article.CreatedAt,
	}
}

var _ storage.Storer = (*Storer)(nil)
