package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/pagekit-go/pagekit/internal/domain"
)

type Article struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author,omitempty"`
	Description string    `json:"description,omitempty"`
	Language    string    `json:"language,omitempty"`
	URL         string    `json:"url,omitempty" swaggertype:"string" format:"string"`
	CreatedAt   time.Time `json:"createdAt"`
}

func ArticleFromDomain(article domain.Article) Article {
	return Article{
		ID:          article.ID,
		Title:       article.Title,
		Author:      article.Author,
		Description: article.Description,
		Language:    article.Language,
		URL:         article.URL,
		CreatedAt:   article.CreatedAt,
	}
}
