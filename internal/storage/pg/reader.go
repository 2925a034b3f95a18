package pg

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pagekit-go/pagekit/internal/domain"
	"github.com/pagekit-go/pagekit/internal/storage"
)

// Reader pages over the articles table newest first. Count and Slice map
// one-to-one onto the pagedlist source contract, so a page costs exactly one
// COUNT and one LIMIT/OFFSET query.
type Reader struct {
	db *pgxpool.Pool
}

func NewReader(pool *ConnectionPool) *Reader {
	return &Reader{db: pool.GetConn()}
}

func (r *Reader) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM articles`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count articles: %w", err)
	}
	return count, nil
}

func (r *Reader) Slice(ctx context.Context, offset, limit int) ([]domain.Article, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, title, author, description, language, url, created_at
		FROM articles
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}
	defer rows.Close()

	articles := make([]domain.Article, 0)
	for rows.Next() {
		var a domain.Article
		if err := rows.Scan(
			&a.ID,
			&a.Title,
			&a.Author,
			&a.Description,
			&a.Language,
			&a.URL,
			&a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan article: %w", err)
		}
		articles = append(articles, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read article rows: %w", err)
	}

	return articles, nil
}

var _ storage.Reader = (*Reader)(nil)
