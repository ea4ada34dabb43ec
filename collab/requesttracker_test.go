package collab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huichen/tfsearch/types"
)

type fakeFinder struct {
	byQuery map[string][]types.Document
}

func (f *fakeFinder) FindTopDocuments(query string) ([]types.Document, error) {
	return f.byQuery[query], nil
}

func TestRequestTrackerSlidingWindow(t *testing.T) {
	finder := &fakeFinder{byQuery: map[string][]types.Document{
		"fluffy dog": {{ID: 1}},
		"big collar": {{ID: 3}},
		"starling":   {{ID: 4}},
	}}
	tracker := NewRequestTracker(finder)

	for i := 0; i < requestWindow-1; i++ {
		_, err := tracker.AddFindRequest("empty request")
		require.NoError(t, err)
	}
	assert.Equal(t, requestWindow-1, tracker.NoResultCount())

	// window still has room for one more: the non-empty "fluffy dog" request.
	_, err := tracker.AddFindRequest("fluffy dog")
	require.NoError(t, err)
	assert.Equal(t, requestWindow-1, tracker.NoResultCount())

	// window is full; this push evicts the oldest (empty) request.
	_, err = tracker.AddFindRequest("big collar")
	require.NoError(t, err)
	assert.Equal(t, requestWindow-2, tracker.NoResultCount())

	_, err = tracker.AddFindRequest("starling")
	require.NoError(t, err)
	assert.Equal(t, requestWindow-3, tracker.NoResultCount())
}
