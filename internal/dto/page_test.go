package dto

import (
	"fmt"
	"testing"
	"time"

	"github.com/pagekit-go/pagekit/internal/domain"
	"github.com/pagekit-go/pagekit/pkg/pagedlist"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newArticleList(t *testing.T, total, page, size int) *pagedlist.PagedList[domain.Article] {
	t.Helper()

	articles := make([]domain.Article, 0, total)
	for i := 0; i < total; i++ {
		articles = append(articles, domain.Article{
			Title:     fmt.Sprintf("Article %d", i),
			CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		})
	}
	list, err := pagedlist.FromItems(articles, page, size)
	require.NoError(t, err)
	return list
}

func pageResolver(page int) string {
	return fmt.Sprintf("/articles?page=%d", page)
}

// The link renderer takes the narrow Pager interface, not the concrete list,
// so any paged type can feed it.
func TestNewPageLinks_RendersFromPagerContract(t *testing.T) {
	list := newArticleList(t, 55, 2, 20)
	list.SetLocatorResolver(pageResolver)

	var p pagedlist.Pager = list
	links, err := NewPageLinks(p)

	require.NoError(t, err)
	assert.Equal(t, "/articles?page=2", links.Self)
	assert.Equal(t, "/articles?page=1", links.First)
	assert.Equal(t, "/articles?page=3", links.Last)
	assert.Equal(t, "/articles?page=1", links.Prev)
	assert.Equal(t, "/articles?page=3", links.Next)
}

func TestNewPageLinks_OmitsPrevNextAtBoundaries(t *testing.T) {
	first := newArticleList(t, 30, 1, 10)
	first.SetLocatorResolver(pageResolver)

	links, err := NewPageLinks(first)
	require.NoError(t, err)
	assert.Empty(t, links.Prev)
	assert.Equal(t, "/articles?page=2", links.Next)

	last := newArticleList(t, 30, 3, 10)
	last.SetLocatorResolver(pageResolver)

	links, err = NewPageLinks(last)
	require.NoError(t, err)
	assert.Equal(t, "/articles?page=2", links.Prev)
	assert.Empty(t, links.Next)
}

func TestNewPageLinks_FailsWithoutResolver(t *testing.T) {
	list := newArticleList(t, 10, 1, 5)

	links, err := NewPageLinks(list)

	assert.ErrorIs(t, err, pagedlist.ErrResolverNotSet)
	assert.Nil(t, links)
}

func TestNewArticlePage_MapsItemsAndMetadata(t *testing.T) {
	list := newArticleList(t, 55, 3, 20)
	list.SetLocatorResolver(pageResolver)

	page, err := NewArticlePage(list)

	require.NoError(t, err)
	assert.Equal(t, 3, page.Page)
	assert.Equal(t, 20, page.Size)
	assert.Equal(t, int64(55), page.TotalItems)
	assert.Equal(t, 3, page.TotalPages)
	require.Len(t, page.Items, 15)
	assert.Equal(t, "Article 40", page.Items[0].Title)
	require.NotNil(t, page.Links)
	assert.Equal(t, "/articles?page=3", page.Links.Self)
}

func TestNewArticlePage_FailsWithoutResolver(t *testing.T) {
	list := newArticleList(t, 10, 1, 5)

	page, err := NewArticlePage(list)

	assert.ErrorIs(t, err, pagedlist.ErrResolverNotSet)
	assert.Nil(t, page)
}
