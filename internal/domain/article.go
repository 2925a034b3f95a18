package domain

import (
	"time"

	"github.com/google/uuid"
)

const ArticleDefaultLanguage = "english"

// Article is one entry of the browsable collection. The collection is
// ordered newest first; CreatedAt with ID as tiebreaker defines that order.
type Article struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Author      string    `json:"author,omitempty"`
	Description string    `json:"description,omitempty"`
	Language    string    `json:"language,omitempty"`
	URL         string    `json:"url,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
