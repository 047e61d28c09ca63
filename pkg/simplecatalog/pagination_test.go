package simplecatalog

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePagination(t *testing.T) {
	tests := []struct {
		name      string
		page      int
		limit     int
		wantPage  int
		wantLimit int
	}{
		{"positive values pass through", 3, 25, 3, 25},
		{"zero page defaults", 0, 5, DefaultPage, 5},
		{"zero limit defaults", 2, 0, 2, DefaultLimit},
		{"negative values default", -1, -10, DefaultPage, DefaultLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, limit := normalizePagination(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{"exact division", 10, 5, 2},
		{"partial last page", 11, 5, 3},
		{"single item", 1, 10, 1},
		{"empty set", 0, 10, 0},
		{"zero limit", 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, totalPages(tt.total, tt.limit))
		})
	}
}

func TestPageBounds(t *testing.T) {
	tests := []struct {
		name   string
		page   int
		limit  int
		n      int
		wantLo int
		wantHi int
	}{
		{"first page", 1, 2, 5, 0, 2},
		{"middle page", 2, 2, 5, 2, 4},
		{"clamped last page", 3, 2, 5, 4, 5},
		{"page past the end", 4, 2, 5, 5, 5},
		{"empty set", 1, 10, 0, 0, 0},
		{"huge page does not overflow", math.MaxInt, 2, 5, 5, 5},
		{"huge limit on small set", 2, math.MaxInt, 5, 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lo, hi := pageBounds(tt.page, tt.limit, tt.n)
			assert.Equal(t, tt.wantLo, lo)
			assert.Equal(t, tt.wantHi, hi)
		})
	}
}

func TestSortByTitle(t *testing.T) {
	items := []*ContentItem{
		{Title: "cherry"},
		{Title: "Banana"},
		{Title: "apple"},
	}

	sortByTitle(items)

	assert.Equal(t, "apple", items[0].Title)
	assert.Equal(t, "Banana", items[1].Title)
	assert.Equal(t, "cherry", items[2].Title)
}
