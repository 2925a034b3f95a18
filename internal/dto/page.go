package dto

import (
	"github.com/pagekit-go/pagekit/internal/domain"
	"github.com/pagekit-go/pagekit/pkg/pagedlist"
)

// PageLinks carries the navigation locators for a page. Prev and Next are
// omitted at the boundaries instead of pointing back at the current page.
type PageLinks struct {
	Self  string `json:"self"`
	First string `json:"first"`
	Last  string `json:"last"`
	Prev  string `json:"prev,omitempty"`
	Next  string `json:"next,omitempty"`
}

// NewPageLinks renders links from the narrow pager contract, so it works for
// any paged type, not just articles. An unwired locator resolver surfaces as
// an error on the first link.
func NewPageLinks(p pagedlist.Pager) (*PageLinks, error) {
	self, err := p.Locator(p.Page())
	if err != nil {
		return nil, err
	}
	first, err := p.Locator(1)
	if err != nil {
		return nil, err
	}
	last, err := p.Locator(p.TotalPages())
	if err != nil {
		return nil, err
	}

	links := &PageLinks{
		Self:  self,
		First: first,
		Last:  last,
	}
	if !p.IsFirstPage() {
		if links.Prev, err = p.Locator(p.PreviousPage()); err != nil {
			return nil, err
		}
	}
	if !p.IsLastPage() {
		if links.Next, err = p.Locator(p.NextPage()); err != nil {
			return nil, err
		}
	}
	return links, nil
}

// ArticlePage is the wire shape of one page of the article collection.
type ArticlePage struct {
	Items      []Article  `json:"items"`
	Page       int        `json:"page"`
	Size       int        `json:"size,omitempty"`
	TotalItems int64      `json:"total_items"`
	TotalPages int        `json:"total_pages"`
	Links      *PageLinks `json:"links,omitempty"`
}

func NewArticlePage(list pagedlist.ItemPager[domain.Article]) (*ArticlePage, error) {
	links, err := NewPageLinks(list)
	if err != nil {
		return nil, err
	}

	items := make([]Article, 0, len(list.Items()))
	for _, article := range list.Items() {
		items = append(items, ArticleFromDomain(article))
	}

	return &ArticlePage{
		Items:      items,
		Page:       list.Page(),
		Size:       list.PageSize(),
		TotalItems: list.TotalItems(),
		TotalPages: list.TotalPages(),
		Links:      links,
	}, nil
}
