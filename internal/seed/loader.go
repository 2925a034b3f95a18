package seed

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/pagekit-go/pagekit/internal/domain"
	"gopkg.in/yaml.v3"
)

// Fixture is one article as written in a seed file. IDs and timestamps are
// optional; missing ones are filled in at load time.
type Fixture struct {
	ID          string    `yaml:"id"`
	Title       string    `yaml:"title"`
	Author      string    `yaml:"author"`
	Description string    `yaml:"description"`
	Language    string    `yaml:"language"`
	URL         string    `yaml:"url"`
	CreatedAt   time.Time `yaml:"createdAt"`
}

type Loader struct {
	reader io.Reader
}

func NewLoader(reader io.Reader) *Loader {
	return &Loader{
		reader: reader,
	}
}

func (l *Loader) Load() ([]domain.Article, error) {
	decoder := yaml.NewDecoder(l.reader)

	var fixtures []Fixture
	if err := decoder.Decode(&fixtures); err != nil {
		return nil, fmt.Errorf("failed to decode seed file: %w", err)
	}

	articles := make([]domain.Article, 0, len(fixtures))
	for i, f := range fixtures {
		article, err := f.toDomain()
		if err != nil {
			return nil, fmt.Errorf("invalid fixture at index %d: %w", i, err)
		}
		articles = append(articles, article)
	}
	return articles, nil
}

func (f Fixture) toDomain() (domain.Article, error) {
	if f.Title == "" {
		return domain.Article{}, fmt.Errorf("title is required")
	}

	id := uuid.New()
	if f.ID != "" {
		parsed, err := uuid.Parse(f.ID)
		if err != nil {
			return domain.Article{}, fmt.Errorf("invalid id %q: %w", f.ID, err)
		}
		id = parsed
	}

	language := f.Language
	if language == "" {
		language = domain.ArticleDefaultLanguage
	}

	createdAt := f.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	return domain.Article{
		ID:          id,
		Title:       f.Title,
		Author:      f.Author,
		Description: f.Description,
		Language:    language,
		URL:         f.URL,
		CreatedAt:   createdAt,
	}, nil
}
