package core

import (
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/huichen/tfsearch/types"
)

// MatchDocument returns the subset of raw's plus words id actually contains,
// and id's status. If id contains any of raw's minus words the match is
// empty, even if plus words also matched — translated from
// SearchServer::MatchDocument's sequenced overload.
func MatchDocument(idx *Index, raw string, id int) ([]string, types.DocumentStatus, error) {
	return matchDocument(idx, raw, id, false)
}

// MatchDocumentParallel is MatchDocument with the minus-word short-circuit
// check and the plus-word filter both fanned out across goroutines bounded
// by GOMAXPROCS, standing in for std::execution::par's any_of/copy_if.
func MatchDocumentParallel(idx *Index, raw string, id int) ([]string, types.DocumentStatus, error) {
	return matchDocument(idx, raw, id, true)
}

func matchDocument(idx *Index, raw string, id int, parallel bool) ([]string, types.DocumentStatus, error) {
	query, err := ParseQuery(raw, idx.stop)
	if err != nil {
		return nil, 0, err
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	m, ok := idx.docMetaLocked(id)
	if !ok {
		return nil, types.StatusActual, nil
	}
	byWord := idx.wordsOfLocked(id)

	contains := func(word string) bool {
		h, ok := idx.resolve(word)
		if !ok {
			return false
		}
		_, present := byWord[h]
		return present
	}

	hasMinus := false
	if parallel {
		var mu sync.Mutex
		var g errgroup.Group
		g.SetLimit(runtime.GOMAXPROCS(0))
		for _, w := range query.Minus {
			w := w
			g.Go(func() error {
				if contains(w) {
					mu.Lock()
					hasMinus = true
					mu.Unlock()
				}
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for _, w := range query.Minus {
			if contains(w) {
				hasMinus = true
				break
			}
		}
	}
	if hasMinus {
		return nil, m.status, nil
	}

	var matched []string
	if parallel {
		var mu sync.Mutex
		var g errgroup.Group
		g.SetLimit(runtime.GOMAXPROCS(0))
		for _, w := range query.Plus {
			w := w
			g.Go(func() error {
				if contains(w) {
					mu.Lock()
					matched = append(matched, w)
					mu.Unlock()
				}
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for _, w := range query.Plus {
			if contains(w) {
				matched = append(matched, w)
			}
		}
	}
	sort.Strings(matched)
	return matched, m.status, nil
}
