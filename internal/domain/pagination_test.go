package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationParamsValidate(t *testing.T) {
	p := PaginationParams{Page: 0, Limit: 0}
	p.Validate()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.Limit)

	p = PaginationParams{Page: -3, Limit: 500}
	p.Validate()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 100, p.Limit)

	p = PaginationParams{Page: 4, Limit: 25}
	p.Validate()
	assert.Equal(t, 4, p.Page)
	assert.Equal(t, 25, p.Limit)
	assert.Equal(t, 75, p.Offset())
}

func TestNewPaginatedResponse(t *testing.T) {
	resp := NewPaginatedResponse([]int{1, 2, 3}, 1, 20, 43)
	assert.Equal(t, int64(43), resp.TotalItems)
	assert.Equal(t, 3, resp.TotalPages)
	assert.Len(t, resp.Data, 3)
}
