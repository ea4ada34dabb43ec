package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huichen/tfsearch/types"
)

func buildRankerIndex(t *testing.T) *Index {
	idx, err := NewIndex([]string{"and", "in", "on", "of", "a"})
	require.NoError(t, err)

	docs := []struct {
		id     int
		text   string
		status types.DocumentStatus
		rating []int
	}{
		{0, "white cat and fashionable collar", types.StatusActual, []int{8, -3}},
		{1, "fluffy cat fluffy tail", types.StatusActual, []int{7}},
		{2, "groomed dog expressive eyes", types.StatusActual, []int{5}},
		{3, "groomed starling eugene", types.StatusBanned, []int{9}},
	}
	for _, d := range docs {
		require.NoError(t, idx.AddDocument(d.id, d.text, d.status, d.rating))
	}
	return idx
}

func TestFindTopDocumentsRanksByRelevance(t *testing.T) {
	idx := buildRankerIndex(t)

	docs, err := FindTopDocuments(idx, "fluffy groomed cat", types.StatusPredicate(types.StatusActual))
	require.NoError(t, err)
	require.NotEmpty(t, docs)

	for i := 1; i < len(docs); i++ {
		assert.GreaterOrEqual(t, docs[i-1].Relevance, docs[i].Relevance)
	}
}

func TestFindTopDocumentsExcludesMinusWords(t *testing.T) {
	idx := buildRankerIndex(t)

	docs, err := FindTopDocuments(idx, "fluffy groomed cat -dog", types.StatusPredicate(types.StatusActual))
	require.NoError(t, err)
	for _, d := range docs {
		assert.NotEqual(t, 2, d.ID)
	}
}

func TestFindTopDocumentsRespectsPredicate(t *testing.T) {
	idx := buildRankerIndex(t)

	docs, err := FindTopDocuments(idx, "groomed starling", func(id int, status types.DocumentStatus, rating int) bool {
		return status == types.StatusBanned
	})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, 3, docs[0].ID)
}

func TestFindTopDocumentsCapsAtFive(t *testing.T) {
	idx, err := NewIndex(nil)
	require.NoError(t, err)
	for i := 0; i < 9; i++ {
		require.NoError(t, idx.AddDocument(i, "cat", types.StatusActual, []int{i}))
	}

	docs, err := FindTopDocuments(idx, "cat", types.StatusPredicate(types.StatusActual))
	require.NoError(t, err)
	assert.Len(t, docs, maxResultDocuments)
}

func TestFindTopDocumentsTiesBreakOnRating(t *testing.T) {
	idx, err := NewIndex(nil)
	require.NoError(t, err)
	require.NoError(t, idx.AddDocument(0, "cat", types.StatusActual, []int{1}))
	require.NoError(t, idx.AddDocument(1, "cat", types.StatusActual, []int{9}))

	docs, err := FindTopDocuments(idx, "cat", types.StatusPredicate(types.StatusActual))
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, 1, docs[0].ID)
	assert.Equal(t, 0, docs[1].ID)
}

func TestFindTopDocumentsFullTieBreaksOnID(t *testing.T) {
	idx, err := NewIndex(nil)
	require.NoError(t, err)
	require.NoError(t, idx.AddDocument(9, "cat", types.StatusActual, nil))
	require.NoError(t, idx.AddDocument(4, "cat", types.StatusActual, nil))
	require.NoError(t, idx.AddDocument(7, "cat", types.StatusActual, nil))

	for i := 0; i < 20; i++ {
		docs, err := FindTopDocuments(idx, "cat", types.StatusPredicate(types.StatusActual))
		require.NoError(t, err)
		require.Len(t, docs, 3)
		assert.Equal(t, []int{4, 7, 9}, []int{docs[0].ID, docs[1].ID, docs[2].ID})
	}
}

func TestFindTopDocumentsEmptyIndex(t *testing.T) {
	idx, err := NewIndex(nil)
	require.NoError(t, err)

	docs, err := FindTopDocuments(idx, "cat", types.StatusPredicate(types.StatusActual))
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestFindTopDocumentsParallelMatchesSequential(t *testing.T) {
	idx := buildRankerIndex(t)

	seq, err := FindTopDocuments(idx, "fluffy groomed cat -dog", types.StatusPredicate(types.StatusActual))
	require.NoError(t, err)
	par, err := FindTopDocumentsParallel(idx, "fluffy groomed cat -dog", types.StatusPredicate(types.StatusActual))
	require.NoError(t, err)
	assert.Equal(t, seq, par)
}

func TestFindTopDocumentsPropagatesBadQuery(t *testing.T) {
	idx := buildRankerIndex(t)
	_, err := FindTopDocuments(idx, "cat --dog", types.StatusPredicate(types.StatusActual))
	assert.Error(t, err)
}
