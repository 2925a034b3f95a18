package es

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pagekit-go/pagekit/internal/domain"
)

// ArticleDocument is the index representation of an article. IDs travel as
// strings because Elasticsearch has no native UUID type.
type ArticleDocument struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author,omitempty"`
	Description string    `json:"description,omitempty"`
	Language    string    `json:"language,omitempty"`
	URL         string    `json:"url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func documentFromDomain(article domain.Article) ArticleDocument {
	return ArticleDocument{
		ID:          article.ID.String(),
		Title:       article.Title,
		Author:      article.Author,
		Description: article.Description,
		Language:    article.Language,
		URL:         article.URL,
		CreatedAt:   article.CreatedAt,
	}
}

func (d ArticleDocument) toDomain() (domain.Article, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return domain.Article{}, fmt.Errorf("invalid document id %q: %w", d.ID, err)
	}

	return domain.Article{
		ID:          id,
		Title:       d.Title,
		Author:      d.Author,
		Description: d.Description,
		Language:    d.Language,
		URL:         d.URL,
		CreatedAt:   d.CreatedAt,
	}, nil
}
