package core

import (
	"fmt"
	"sort"

	"github.com/huichen/tfsearch/types"
)

// ParsedQuery holds the disjoint-by-construction plus and minus term sets a
// raw query string decomposes into. Both slices are deduplicated and sorted
// for deterministic iteration; minus words take precedence at match time
// regardless of whether the same word also appears as a plus word.
type ParsedQuery struct {
	Plus  []string
	Minus []string
}

// ParseQuery splits raw on spaces, classifies each token as a plus or
// minus term, drops stop words, and validates every token. A bare "-", a
// "--" prefix, or a control character anywhere in a token is a malformed
// query. Translated from SearchServer::ParseQuery/ParseQueryWord.
func ParseQuery(raw string, stop StopWords) (*ParsedQuery, error) {
	plusSet := make(map[string]struct{})
	minusSet := make(map[string]struct{})

	it := NewWordIter(raw)
	for {
		word, ok := it.Next()
		if !ok {
			break
		}
		if len(word) > 0 && word[0] == '-' {
			term := word[1:]
			if term == "" {
				return nil, fmt.Errorf("query %q: bare \"-\": %w", raw, types.ErrBadQuery)
			}
			if term[0] == '-' {
				return nil, fmt.Errorf("query %q: double minus %q: %w", raw, word, types.ErrBadQuery)
			}
			if !IsValidWord(term) {
				return nil, fmt.Errorf("query %q: invalid word %q: %w", raw, term, types.ErrBadQuery)
			}
			if stop.Contains(term) {
				continue
			}
			minusSet[term] = struct{}{}
			continue
		}
		if !IsValidWord(word) {
			return nil, fmt.Errorf("query %q: invalid word %q: %w", raw, word, types.ErrBadQuery)
		}
		if stop.Contains(word) {
			continue
		}
		plusSet[word] = struct{}{}
	}

	return &ParsedQuery{
		Plus:  sortedKeys(plusSet),
		Minus: sortedKeys(minusSet),
	}, nil
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
