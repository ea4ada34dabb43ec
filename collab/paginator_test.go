package collab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huichen/tfsearch/types"
)

func fiveDocs() []types.Document {
	return []types.Document{
		{ID: 0}, {ID: 1}, {ID: 2}, {ID: 3}, {ID: 4},
	}
}

func TestPaginatorChunksIntoFixedPages(t *testing.T) {
	p := NewPaginator(fiveDocs(), 3)

	page, ok := p.NextPage()
	require.True(t, ok)
	assert.Len(t, page, 3)

	page, ok = p.NextPage()
	require.True(t, ok)
	assert.Len(t, page, 2)

	_, ok = p.NextPage()
	assert.False(t, ok)
}

func TestPaginatorSinglePageWhenSizeCoversAll(t *testing.T) {
	p := NewPaginator(fiveDocs(), 5)

	page, ok := p.NextPage()
	require.True(t, ok)
	assert.Len(t, page, 5)

	_, ok = p.NextPage()
	assert.False(t, ok)
}
