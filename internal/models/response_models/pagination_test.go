package response_models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	p := NewPagination(2, 10, 25)
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, int64(25), p.TotalItems)
	assert.Equal(t, 3, p.TotalPages)

	p = NewPagination(1, 10, 30)
	assert.Equal(t, 3, p.TotalPages)

	p = NewPagination(1, 10, 0)
	assert.Equal(t, 0, p.TotalPages)
}

func TestNewPaginationClampsBadInput(t *testing.T) {
	p := NewPagination(1, 0, 3)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, 1, p.TotalPages)

	p = NewPagination(0, -5, 3)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, 1, p.TotalPages)

	p = NewPagination(2, 1000, 3)
	assert.Equal(t, 10, p.Limit)
}
