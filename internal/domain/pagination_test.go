package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	testCases := []struct {
		name       string
		page       int
		limit      int
		total      int
		totalPages int
		hasNext    bool
		hasPrev    bool
	}{
		{name: "empty result set", page: 1, limit: 20, total: 0, totalPages: 0, hasNext: false, hasPrev: false},
		{name: "single partial page", page: 1, limit: 20, total: 5, totalPages: 1, hasNext: false, hasPrev: false},
		{name: "exactly one full page", page: 1, limit: 20, total: 20, totalPages: 1, hasNext: false, hasPrev: false},
		{name: "first of several pages", page: 1, limit: 20, total: 45, totalPages: 3, hasNext: true, hasPrev: false},
		{name: "middle page", page: 2, limit: 20, total: 45, totalPages: 3, hasNext: true, hasPrev: true},
		{name: "last page", page: 3, limit: 20, total: 45, totalPages: 3, hasNext: false, hasPrev: true},
		{name: "page beyond total", page: 5, limit: 20, total: 45, totalPages: 3, hasNext: false, hasPrev: true},
		{name: "limit one", page: 3, limit: 1, total: 3, totalPages: 3, hasNext: false, hasPrev: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPagination(tc.page, tc.limit, tc.total)
			assert.Equal(t, tc.page, p.Page)
			assert.Equal(t, tc.limit, p.Limit)
			assert.Equal(t, tc.total, p.Total)
			assert.Equal(t, tc.totalPages, p.TotalPages)
			assert.Equal(t, tc.hasNext, p.HasNext)
			assert.Equal(t, tc.hasPrev, p.HasPrev)
		})
	}
}
