// internal/repository/repository_test.go
package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		page     int
		perPage  int
		expected Pagination
	}{
		{
			name:     "exact pages",
			total:    30,
			page:     2,
			perPage:  15,
			expected: Pagination{CurrentPage: 2, LastPage: 2, PerPage: 15, Total: 30},
		},
		{
			name:     "partial last page rounds up",
			total:    31,
			page:     1,
			perPage:  15,
			expected: Pagination{CurrentPage: 1, LastPage: 3, PerPage: 15, Total: 31},
		},
		{
			name:     "page past the end clamps to last",
			total:    20,
			page:     99,
			perPage:  15,
			expected: Pagination{CurrentPage: 2, LastPage: 2, PerPage: 15, Total: 20},
		},
		{
			name:     "page below one clamps to first",
			total:    20,
			page:     0,
			perPage:  15,
			expected: Pagination{CurrentPage: 1, LastPage: 2, PerPage: 15, Total: 20},
		},
		{
			name:     "empty set still has one page",
			total:    0,
			page:     5,
			perPage:  15,
			expected: Pagination{CurrentPage: 1, LastPage: 1, PerPage: 15, Total: 0},
		},
		{
			name:     "per page below one is corrected",
			total:    3,
			page:     1,
			perPage:  0,
			expected: Pagination{CurrentPage: 1, LastPage: 3, PerPage: 1, Total: 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NewPagination(tt.total, tt.page, tt.perPage))
		})
	}
}

func TestPaginationOffset(t *testing.T) {
	assert.Equal(t, 0, Pagination{CurrentPage: 1, PerPage: 15}.Offset())
	assert.Equal(t, 15, Pagination{CurrentPage: 2, PerPage: 15}.Offset())
	assert.Equal(t, 45, Pagination{CurrentPage: 4, PerPage: 15}.Offset())
}

func TestNormalizeOrder(t *testing.T) {
	assert.Equal(t, "desc", NormalizeOrder("desc"))
	assert.Equal(t, "asc", NormalizeOrder("asc"))
	assert.Equal(t, "asc", NormalizeOrder(""))
	assert.Equal(t, "asc", NormalizeOrder("DESC"))
	assert.Equal(t, "asc", NormalizeOrder("evil; DROP TABLE tasks"))
}
