package pagedlist

// Pager is the narrow read contract a generic pagination-control renderer
// needs: paging metadata plus locator resolution, no element access. Write
// the renderer once against Pager and reuse it across every paged type.
type Pager interface {
	Page() int
	PageSize() int
	TotalItems() int64
	TotalPages() int
	NextPage() int
	PreviousPage() int
	IsFirstPage() bool
	IsLastPage() bool
	Locator(page int) (string, error)
}

// ItemPager extends Pager with access to the current page's items, for
// content-specific consumers.
type ItemPager[T any] interface {
	Pager
	Items() []T
}

var _ ItemPager[int] = (*PagedList[int])(nil)
