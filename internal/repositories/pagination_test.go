package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageParamsNormalized(t *testing.T) {
	p := PageParams{}.Normalized()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPerPage, p.PerPage)

	p = PageParams{Page: -3, PerPage: 0}.Normalized()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPerPage, p.PerPage)

	p = PageParams{Page: 4, PerPage: 25}.Normalized()
	assert.Equal(t, 4, p.Page)
	assert.Equal(t, 25, p.PerPage)
}

func TestPageParamsOffset(t *testing.T) {
	assert.Equal(t, 0, PageParams{Page: 1, PerPage: 10}.Offset())
	assert.Equal(t, 20, PageParams{Page: 3, PerPage: 10}.Offset())
	assert.Equal(t, 4, PageParams{Page: 3, PerPage: 2}.Offset())
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 3, TotalPages(5, 2))
}
