package pagedlist

import (
	"context"
	"slices"
)

// Source is any capability that can report its total item count and produce
// a bounded slice of items. Storage readers implement it; FromSource drives
// it with one Count and one Slice per constructed page.
type Source[T any] interface {
	Count(ctx context.Context) (int64, error)
	Slice(ctx context.Context, offset, limit int) ([]T, error)
}

// SliceSource adapts a fully materialized slice to the Source interface, so
// in-memory construction funnels through the same path as queryable sources.
type SliceSource[T any] []T

func (s SliceSource[T]) Count(_ context.Context) (int64, error) {
	return int64(len(s)), nil
}

func (s SliceSource[T]) Slice(_ context.Context, offset, limit int) ([]T, error) {
	if offset < 0 || offset >= len(s) || limit <= 0 {
		return []T{}, nil
	}
	end := offset + limit
	if end > len(s) {
		end = len(s)
	}
	return slices.Clone(s[offset:end]), nil
}
