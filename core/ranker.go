package core

import (
	"math"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/huichen/tfsearch/types"
)

// maxResultDocuments caps FindTopDocuments output, matching
// MAX_RESULT_DOCUMENT_COUNT in search_server.h.
const maxResultDocuments = 5

// relevanceEpsilon is the tolerance two relevance scores are considered
// equal within before falling back to the rating tiebreak.
const relevanceEpsilon = 1e-6

// FindTopDocuments ranks every document matching pred against raw by
// TF-IDF relevance, returning at most maxResultDocuments results sorted by
// descending relevance with descending rating as a tiebreak.
func FindTopDocuments(idx *Index, raw string, pred types.Predicate) ([]types.Document, error) {
	return findTopDocuments(idx, raw, pred, false)
}

// FindTopDocumentsParallel is FindTopDocuments with the plus/minus word
// fan-out spread across goroutines bounded by GOMAXPROCS.
func FindTopDocumentsParallel(idx *Index, raw string, pred types.Predicate) ([]types.Document, error) {
	return findTopDocuments(idx, raw, pred, true)
}

func findTopDocuments(idx *Index, raw string, pred types.Predicate, parallel bool) ([]types.Document, error) {
	query, err := ParseQuery(raw, idx.stop)
	if err != nil {
		return nil, err
	}

	idx.mu.RLock()
	defer idx.mu.RUnlock()

	n := len(idx.meta)
	if n == 0 {
		return nil, nil
	}

	acc := NewAccumulator()
	accumulate := func(word string) {
		h, ok := idx.resolve(word)
		if !ok {
			return
		}
		postings := idx.postingsFor(h)
		df := len(postings)
		if df == 0 {
			return
		}
		idf := math.Log(float64(n) / float64(df))
		for docID, tf := range postings {
			m, ok := idx.docMetaLocked(docID)
			if !ok || !pred(docID, m.status, m.rating) {
				continue
			}
			access := acc.At(docID)
			access.Add(tf * idf)
			access.Release()
		}
	}

	if parallel {
		var g errgroup.Group
		g.SetLimit(runtime.GOMAXPROCS(0))
		for _, w := range query.Plus {
			w := w
			g.Go(func() error { accumulate(w); return nil })
		}
		_ = g.Wait()
	} else {
		for _, w := range query.Plus {
			accumulate(w)
		}
	}

	scores := acc.Drain()

	removeMinus := func(word string) {
		h, ok := idx.resolve(word)
		if !ok {
			return
		}
		for docID := range idx.postingsFor(h) {
			delete(scores, docID)
		}
	}

	if parallel {
		var mu sync.Mutex
		var g errgroup.Group
		g.SetLimit(runtime.GOMAXPROCS(0))
		for _, w := range query.Minus {
			w := w
			g.Go(func() error {
				h, ok := idx.resolve(w)
				if !ok {
					return nil
				}
				postings := idx.postingsFor(h)
				mu.Lock()
				for docID := range postings {
					delete(scores, docID)
				}
				mu.Unlock()
				return nil
			})
		}
		_ = g.Wait()
	} else {
		for _, w := range query.Minus {
			removeMinus(w)
		}
	}

	docs := make([]types.Document, 0, len(scores))
	for docID, rel := range scores {
		m, _ := idx.docMetaLocked(docID)
		docs = append(docs, types.Document{ID: docID, Relevance: rel, Rating: m.rating})
	}

	sort.Slice(docs, func(i, j int) bool {
		if math.Abs(docs[i].Relevance-docs[j].Relevance) >= relevanceEpsilon {
			return docs[i].Relevance > docs[j].Relevance
		}
		if docs[i].Rating != docs[j].Rating {
			return docs[i].Rating > docs[j].Rating
		}
		// scores is a map; iteration order (and so the order docs was built
		// in) is randomized per run. A true tie on both relevance and rating
		// still needs one fixed answer, so fall back to ascending doc id.
		return docs[i].ID < docs[j].ID
	})

	if len(docs) > maxResultDocuments {
		docs = docs[:maxResultDocuments]
	}
	return docs, nil
}
