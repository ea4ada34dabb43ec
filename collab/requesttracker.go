package collab

import "github.com/huichen/tfsearch/types"

// requestWindow is the sliding window size, matching RequestQueue's
// min_in_day_ (1,440 minutes in a day) in request_queue.h.
const requestWindow = 1440

// QueryRunner is the minimal capability RequestTracker needs from a search
// engine. tfsearch.Engine's FindTopDocuments satisfies it as-is.
type QueryRunner interface {
	FindTopDocuments(query string) ([]types.Document, error)
}

// RequestTracker wraps a QueryRunner and keeps a sliding window of the last
// requestWindow requests, reporting how many of them returned no results.
// Implemented as a Go slice used as a FIFO queue: once full, each new
// request drops the oldest one from the front.
type RequestTracker struct {
	finder  QueryRunner
	window  []bool // true = request returned no results
	noMatch int
}

// NewRequestTracker wraps finder.
func NewRequestTracker(finder QueryRunner) *RequestTracker {
	return &RequestTracker{finder: finder}
}

// AddFindRequest runs query through the wrapped finder, records whether it
// returned no results, and returns the finder's result as-is.
func (t *RequestTracker) AddFindRequest(query string) ([]types.Document, error) {
	docs, err := t.finder.FindTopDocuments(query)
	if err != nil {
		return nil, err
	}
	t.push(len(docs) == 0)
	return docs, nil
}

func (t *RequestTracker) push(empty bool) {
	if len(t.window) == requestWindow {
		if t.window[0] {
			t.noMatch--
		}
		t.window = t.window[1:]
	}
	t.window = append(t.window, empty)
	if empty {
		t.noMatch++
	}
}

// NoResultCount returns how many requests in the current window returned no
// results.
func (t *RequestTracker) NoResultCount() int {
	return t.noMatch
}
