package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestPageParamsNormalize tests clamping of page and page size.
func TestPageParamsNormalize(t *testing.T) {
	tests := []struct {
		name     string
		in       PageParams
		wantPage int
		wantSize int
	}{
		{"defaults preserved", PageParams{Page: 1, PageSize: 20}, 1, 20},
		{"zero page clamped", PageParams{Page: 0, PageSize: 20}, 1, 20},
		{"negative page clamped", PageParams{Page: -3, PageSize: 20}, 1, 20},
		{"zero size defaulted", PageParams{Page: 2, PageSize: 0}, 2, DefaultPageSize},
		{"oversize capped", PageParams{Page: 2, PageSize: 500}, 2, MaxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Normalize()
			assert.Equal(t, tt.wantPage, tt.in.Page)
			assert.Equal(t, tt.wantSize, tt.in.PageSize)
		})
	}
}

// TestPageParamsSkip tests the zero-based page arithmetic.
func TestPageParamsSkip(t *testing.T) {
	assert.Equal(t, int64(0), PageParams{Page: 1, PageSize: 20}.Skip())
	assert.Equal(t, int64(20), PageParams{Page: 2, PageSize: 20}.Skip())
	assert.Equal(t, int64(250), PageParams{Page: 6, PageSize: 50}.Skip())
}

// TestPageSlice tests the in-memory pagination used by the tag listing.
func TestPageSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	page := pageSlice(items, PageParams{Page: 2, PageSize: 3})
	assert.Equal(t, []int{4, 5, 6}, page.Items)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 3, page.PageSize)
	assert.Equal(t, int64(7), page.Total)

	// Last partial page.
	page = pageSlice(items, PageParams{Page: 3, PageSize: 3})
	assert.Equal(t, []int{7}, page.Items)
	assert.Equal(t, int64(7), page.Total)

	// Window past the end is empty but total is unaffected.
	page = pageSlice(items, PageParams{Page: 9, PageSize: 3})
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(7), page.Total)
}
