package core

import (
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/huichen/tfsearch/types"
)

// ProcessQueries runs every query against idx concurrently, preserving
// input order in the returned slice: results[i] corresponds to queries[i].
// The first query to fail parsing aborts the batch; there is no partial
// result or retry. Each query gets its own goroutine, fanned out into a
// pre-sized slice so result order matches input order regardless of
// completion order.
func ProcessQueries(idx *Index, queries []string, pred types.Predicate) ([][]types.Document, error) {
	results := make([][]types.Document, len(queries))

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			docs, err := FindTopDocuments(idx, q, pred)
			if err != nil {
				return err
			}
			results[i] = docs
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ProcessQueriesJoined is ProcessQueries with every query's results
// concatenated into a single flat slice, translated from
// ProcessQueriesJoined's transform_reduce over ProcessQueries' output.
func ProcessQueriesJoined(idx *Index, queries []string, pred types.Predicate) ([]types.Document, error) {
	results, err := ProcessQueries(idx, queries, pred)
	if err != nil {
		return nil, err
	}
	var joined []types.Document
	for _, docs := range results {
		joined = append(joined, docs...)
	}
	return joined, nil
}
