package core

import (
	"fmt"

	"github.com/huichen/tfsearch/types"
)

// StopWords is the set of words silently dropped from both documents and
// queries, matching search_server.cpp's stop_words_ set.
type StopWords struct {
	set map[string]struct{}
}

// NewStopWords validates and builds a StopWords set from individual words.
func NewStopWords(words []string) (StopWords, error) {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		if !IsValidWord(w) {
			return StopWords{}, fmt.Errorf("stop word %q: %w", w, types.ErrBadWord)
		}
		if w == "" {
			continue
		}
		set[w] = struct{}{}
	}
	return StopWords{set: set}, nil
}

// NewStopWordsFromText builds a StopWords set from a single space
// separated line, the same shape AddDocument's text argument takes.
func NewStopWordsFromText(text string) (StopWords, error) {
	return NewStopWords(SplitWords(text))
}

// Contains reports whether word is in the stop-word set. The zero value of
// StopWords contains nothing.
func (s StopWords) Contains(word string) bool {
	if s.set == nil {
		return false
	}
	_, ok := s.set[word]
	return ok
}
