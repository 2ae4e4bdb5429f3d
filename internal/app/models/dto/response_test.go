package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(25, 2, 10)

	assert.Equal(t, 2, info.CurrentPage)
	assert.Equal(t, 3, info.TotalPages)
	assert.Equal(t, 10, info.PageSize)
	assert.Equal(t, int64(25), info.TotalItems)
}

func TestNewPaginationInfo_EmptyFirstPage(t *testing.T) {
	info := NewPaginationInfo(0, 1, 10)

	assert.Equal(t, 1, info.CurrentPage)
	assert.Equal(t, 1, info.TotalPages)
	assert.Equal(t, int64(0), info.TotalItems)
}

func TestNewPaginationInfo_PageBeyondEnd(t *testing.T) {
	info := NewPaginationInfo(15, 9, 10)

	// CurrentPage is clamped to the last page that has items
	assert.Equal(t, 2, info.CurrentPage)
	assert.Equal(t, 2, info.TotalPages)
}

func TestNewPaginationInfo_DefaultsOnBadInput(t *testing.T) {
	info := NewPaginationInfo(5, 0, -3)

	assert.Equal(t, 1, info.CurrentPage)
	assert.Equal(t, 10, info.PageSize)
	assert.Equal(t, 1, info.TotalPages)
}
