package pagedlist

import (
	"context"
	"slices"
)

// PagedList is a snapshot of one page of a larger item collection, together
// with the paging metadata needed to render navigation controls.
// Generic type T allows reuse across different entity types.
//
// A PagedList is built once per request and discarded; changing page means
// building a new one. It is immutable after construction except for the
// one-time assignment of the locator resolver, which must happen before any
// Locator call.
type PagedList[T any] struct {
	items      []T
	pageNumber int
	pageSize   int
	totalItems int64
	totalPages int

	resolver LocatorResolver
}

// FromSource builds a page by asking the source for its total count and then
// materializing only the requested slice. Use it when the source can count
// and skip/take efficiently without loading everything into memory.
func FromSource[T any](ctx context.Context, src Source[T], page, size int) (*PagedList[T], error) {
	if size <= 0 {
		return nil, ErrInvalidPageSize
	}

	total, err := src.Count(ctx)
	if err != nil {
		return nil, err
	}
	if total < 0 {
		total = 0
	}

	totalPages := totalPagesFor(total, size)
	page = clampPage(page, totalPages)

	items, err := src.Slice(ctx, (page-1)*size, size)
	if err != nil {
		return nil, err
	}

	return &PagedList[T]{
		items:      items,
		pageNumber: page,
		pageSize:   size,
		totalItems: total,
		totalPages: totalPages,
	}, nil
}

// FromItems builds a page from a fully materialized sequence, counting and
// slicing it in memory.
func FromItems[T any](items []T, page, size int) (*PagedList[T], error) {
	return FromSource(context.Background(), SliceSource[T](items), page, size)
}

// FromPage builds a page from an already-fetched slice plus a total the
// caller computed separately. The slice is trusted verbatim as the current
// page; only the metadata is derived from the supplied total. This avoids a
// double count when the caller already knows the total from a prior query.
func FromPage[T any](items []T, total int64, page, size int) (*PagedList[T], error) {
	if size <= 0 {
		return nil, ErrInvalidPageSize
	}
	if total < 0 {
		total = 0
	}

	totalPages := totalPagesFor(total, size)

	return &PagedList[T]{
		items:      slices.Clone(items),
		pageNumber: clampPage(page, totalPages),
		pageSize:   size,
		totalItems: total,
		totalPages: totalPages,
	}, nil
}

// FromSingleList wraps a complete sequence as one unpaged page, for call
// sites that sometimes need to show everything through the same read
// contract as the paged case. PageSize reports 0 for such lists.
func FromSingleList[T any](items []T) *PagedList[T] {
	return &PagedList[T]{
		items:      slices.Clone(items),
		pageNumber: 1,
		totalItems: int64(len(items)),
		totalPages: 1,
	}
}

// Items returns the current page's items, at most PageSize of them.
func (l *PagedList[T]) Items() []T { return l.items }

// Page returns the current page number, always in [1, TotalPages].
func (l *PagedList[T]) Page() int { return l.pageNumber }

// PageSize returns the page size, or 0 for a single-list wrapper.
func (l *PagedList[T]) PageSize() int { return l.pageSize }

// TotalItems returns the logical item count across all pages.
func (l *PagedList[T]) TotalItems() int64 { return l.totalItems }

// TotalPages returns the number of pages. An empty collection still has one
// (empty) page, so this is never below 1.
func (l *PagedList[T]) TotalPages() int { return l.totalPages }

// NextPage returns the following page number, clamped to the last page.
// Requesting next while already on the last page yields the last page.
func (l *PagedList[T]) NextPage() int {
	if l.pageNumber < l.totalPages {
		return l.pageNumber + 1
	}
	return l.totalPages
}

// PreviousPage returns the preceding page number, clamped to 1.
func (l *PagedList[T]) PreviousPage() int {
	if l.pageNumber > 1 {
		return l.pageNumber - 1
	}
	return 1
}

// IsFirstPage reports whether the current page is the first one.
func (l *PagedList[T]) IsFirstPage() bool { return l.PreviousPage() >= l.pageNumber }

// IsLastPage reports whether the current page is the last one.
func (l *PagedList[T]) IsLastPage() bool { return l.NextPage() <= l.pageNumber }

// totalPagesFor special-cases the empty set: an empty collection still
// presents as "page 1 of 1", never "page 1 of 0". Integer-division rounding
// must not be trusted for total == 0.
func totalPagesFor(total int64, size int) int {
	if total <= 0 {
		return 1
	}
	return int((total-1)/int64(size)) + 1
}

// clampPage silently constrains an out-of-range requested page to the
// nearest valid boundary. Stale bookmarks and tampered query strings land on
// a real page instead of failing.
func clampPage(page, totalPages int) int {
	if page > totalPages {
		return totalPages
	}
	if page <= 0 {
		return 1
	}
	return page
}
