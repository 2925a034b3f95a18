package in_mem

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/google/uuid"
	"github.com/pagekit-go/pagekit/internal/domain"
	"github.com/pagekit-go/pagekit/internal/storage"
)

// Store keeps articles in insertion order so paging over it is stable.
// It implements both storage.Reader and storage.Storer and doubles as the
// test double for the HTTP layer.
type Store struct {
	mu       sync.RWMutex
	articles []domain.Article
	index    map[uuid.UUID]int
}

func NewStore() *Store {
	return &Store{
		index: make(map[uuid.UUID]int),
	}
}

func (s *Store) Save(_ context.Context, article domain.Article) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.put(article)
	return article.ID, nil
}

func (s *Store) SaveBulk(_ context.Context, articles []domain.Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, article := range articles {
		s.put(article)
	}
	slog.Info("Saved articles to in-memory storage", "count", len(articles))
	return nil
}

// put assumes the caller holds the write lock.
func (s *Store) put(article domain.Article) {
	if article.ID == uuid.Nil {
		article.ID = uuid.New()
	}
	if i, ok := s.index[article.ID]; ok {
		s.articles[i] = article
		return
	}
	s.index[article.ID] = len(s.articles)
	s.articles = append(s.articles, article)
}

func (s *Store) Count(_ context.Context) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(len(s.articles)), nil
}

func (s *Store) Slice(_ context.Context, offset, limit int) ([]domain.Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if offset < 0 || offset >= len(s.articles) || limit <= 0 {
		return []domain.Article{}, nil
	}
	end := offset + limit
	if end > len(s.articles) {
		end = len(s.articles)
	}
	return slices.Clone(s.articles[offset:end]), nil
}

var (
	_ storage.Reader = (*Store)(nil)
	_ storage.Storer = (*Store)(nil)
)
