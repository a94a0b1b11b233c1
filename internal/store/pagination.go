package store

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Pagination defaults and cap.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PageParams contains skip/limit pagination request parameters.
type PageParams struct {
	Page     int
	PageSize int
}

// DefaultPageParams returns sensible defaults (page 1, 20 items).
func DefaultPageParams() PageParams {
	return PageParams{
		Page:     1,
		PageSize: DefaultPageSize,
	}
}

// Normalize checks and corrects pagination parameters. Pages below 1 are
// clamped to 1 so the skip can never go negative.
func (p *PageParams) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}

	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
}

// Skip returns the zero-based document offset for the page window.
func (p PageParams) Skip() int64 {
	return int64(p.Page-1) * int64(p.PageSize)
}

// Page contains one page of results plus the total match count.
type Page[T any] struct {
	Items    []T   `json:"items"`
	Page     int   `json:"page"`
	PageSize int   `json:"page_size"`
	Total    int64 `json:"total"`
}

// paginate runs a windowed find plus an independent count over the same
// filter. The count must run against the filter, never the windowed cursor:
// counting the limited result would report at most PageSize.
func paginate[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, sort bson.D, p PageParams) (*Page[T], error) {
	p.Normalize()

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	opts := options.Find().
		SetSkip(p.Skip()).
		SetLimit(int64(p.PageSize))
	if len(sort) > 0 {
		opts.SetSort(sort)
	}

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}

	items := []T{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}

	return &Page[T]{
		Items:    items,
		Page:     p.Page,
		PageSize: p.PageSize,
		Total:    total,
	}, nil
}

// pageSlice windows an already-materialized list in memory. Used by the tag
// listing, whose joined set is small enough to load fully.
func pageSlice[T any](items []T, p PageParams) *Page[T] {
	p.Normalize()

	total := int64(len(items))
	start := int(p.Skip())
	if start > len(items) {
		start = len(items)
	}
	end := start + p.PageSize
	if end > len(items) {
		end = len(items)
	}

	return &Page[T]{
		Items:    items[start:end],
		Page:     p.Page,
		PageSize: p.PageSize,
		Total:    total,
	}
}
