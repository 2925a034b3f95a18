package es

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types"
	"github.com/elastic/go-elasticsearch/v8/typedapi/types/enums/sortorder"
	"github.com/pagekit-go/pagekit/internal/domain"
	"github.com/pagekit-go/pagekit/internal/storage"
)

// Reader pages over the article index newest first using from/size windows,
// matching the pagedlist source contract.
type Reader struct {
	client    *elasticsearch.TypedClient
	indexName string
}

func NewReader(config ClientConfig) (*Reader, error) {
	client, err := newClient(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Elasticsearch client: %w", err)
	}

	return &Reader{
		client:    client,
		indexName: config.IndexName,
	}, nil
}

func (r *Reader) Count(ctx context.Context) (int64, error) {
	res, err := r.client.Count().Index(r.indexName).Do(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count documents: %w", err)
	}
	return res.Count, nil
}

func (r *Reader) Slice(ctx context.Context, offset, limit int) ([]domain.Article, error) {
	sortDesc := sortorder.Desc

	res, err := r.client.Search().
		Index(r.indexName).
		From(offset).
		Size(limit).
		Sort(
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"created_at": {Order: &sortDesc},
				},
			},
			&types.SortOptions{
				SortOptions: map[string]types.FieldSort{
					"id.keyword": {Order: &sortDesc},
				},
			},
		).
		Do(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}

	articles := make([]domain.Article, 0, len(res.Hits.Hits))
	for _, hit := range res.Hits.Hits {
		var doc ArticleDocument
		if err := json.Unmarshal(hit.Source_, &doc); err != nil {
			return nil, fmt.Errorf("failed to unmarshal document: %w", err)
		}

		article, err := doc.toDomain()
		if err != nil {
			return nil, fmt.Errorf("failed to map document: %w", err)
		}
		articles = append(articles, article)
	}

	return articles, nil
}

var _ storage.Reader = (*Reader)(nil)
