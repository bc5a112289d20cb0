package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPage(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	page, meta := Page(items, Params{Page: 1, PageSize: 2})
	assert.Equal(t, []int{1, 2}, page)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 5, meta.TotalItems)

	page, _ = Page(items, Params{Page: 3, PageSize: 2})
	assert.Equal(t, []int{5}, page)

	page, _ = Page(items, Params{Page: 4, PageSize: 2})
	assert.Empty(t, page)

	// Zero page size means no pagination.
	page, meta = Page(items, Params{Page: 1})
	assert.Equal(t, items, page)
	assert.Equal(t, 0, meta.TotalPages)
}
