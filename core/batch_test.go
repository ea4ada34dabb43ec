package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huichen/tfsearch/types"
)

func TestProcessQueriesPreservesOrder(t *testing.T) {
	idx := buildRankerIndex(t)

	queries := []string{"cat", "groomed", "starling"}
	results, err := ProcessQueries(idx, queries, types.StatusPredicate(types.StatusActual))
	require.NoError(t, err)
	require.Len(t, results, 3)

	for _, d := range results[0] {
		found := false
		for _, w := range []int{0, 1} {
			if d.ID == w {
				found = true
			}
		}
		assert.True(t, found)
	}
	assert.Empty(t, results[2]) // starling's only document is banned
}

func TestProcessQueriesJoinedConcatenates(t *testing.T) {
	idx := buildRankerIndex(t)

	queries := []string{"cat", "dog"}
	results, err := ProcessQueries(idx, queries, types.StatusPredicate(types.StatusActual))
	require.NoError(t, err)

	joined, err := ProcessQueriesJoined(idx, queries, types.StatusPredicate(types.StatusActual))
	require.NoError(t, err)

	assert.Equal(t, len(results[0])+len(results[1]), len(joined))
}

func TestProcessQueriesPropagatesFirstError(t *testing.T) {
	idx := buildRankerIndex(t)

	_, err := ProcessQueries(idx, []string{"cat", "dog --bad"}, types.StatusPredicate(types.StatusActual))
	assert.Error(t, err)
}
