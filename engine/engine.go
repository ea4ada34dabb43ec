// Package engine wires core's indexing and retrieval primitives into the
// library's public-facing type, Engine — the same layering wukong uses to
// keep core free of logging and option handling.
package engine

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/huichen/tfsearch/collab"
	"github.com/huichen/tfsearch/core"
	"github.com/huichen/tfsearch/types"
)

// Engine is the public entry point to the library: it owns one core.Index
// plus the logging and duplicate-reporting concerns core stays free of.
type Engine struct {
	index    *core.Index
	logger   *logrus.Entry
	reporter core.DuplicateReporter
}

// EngineOption customizes an Engine at construction time.
type EngineOption func(*Engine)

// WithLogger overrides the default logrus.Entry.
func WithLogger(logger *logrus.Entry) EngineOption {
	return func(e *Engine) { e.logger = logger }
}

// WithDuplicateReporter overrides the default stdout-backed reporter
// RemoveDuplicates reports through.
func WithDuplicateReporter(reporter core.DuplicateReporter) EngineOption {
	return func(e *Engine) { e.reporter = reporter }
}

func defaultLogger() *logrus.Entry {
	return logrus.New().WithField("component", "tfsearch")
}

// New constructs an Engine with the given stop words. Fails with
// types.ErrBadWord wrapped if any stop word contains a control character.
func New(stopWords []string, opts ...EngineOption) (*Engine, error) {
	idx, err := core.NewIndex(stopWords)
	if err != nil {
		return nil, err
	}
	return newEngine(idx, opts...), nil
}

// NewFromText constructs an Engine whose stop words are the
// space-separated tokens of stopWordsText.
func NewFromText(stopWordsText string, opts ...EngineOption) (*Engine, error) {
	idx, err := core.NewIndexFromText(stopWordsText)
	if err != nil {
		return nil, err
	}
	return newEngine(idx, opts...), nil
}

func newEngine(idx *core.Index, opts ...EngineOption) *Engine {
	e := &Engine{
		index:    idx,
		logger:   defaultLogger(),
		reporter: collab.NewDuplicateReporter(os.Stdout),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AddDocument indexes text under id with the given status and ratings.
func (e *Engine) AddDocument(id int, text string, status types.DocumentStatus, ratings []int) error {
	if err := e.index.AddDocument(id, text, status, ratings); err != nil {
		e.logger.WithField("doc_id", id).WithError(err).Debug("add document failed")
		return err
	}
	e.logger.WithField("doc_id", id).Debug("document added")
	return nil
}

// RemoveDocument deletes id, a no-op if id is absent.
func (e *Engine) RemoveDocument(id int) {
	e.index.RemoveDocument(id)
	e.logger.WithField("doc_id", id).Debug("document removed")
}

// RemoveDocumentParallel is RemoveDocument with the per-word erasure fanned
// out across goroutines.
func (e *Engine) RemoveDocumentParallel(id int) {
	e.index.RemoveDocumentParallel(id)
	e.logger.WithField("doc_id", id).Debug("document removed (parallel)")
}

// FindTopDocuments ranks against raw with the default ACTUAL-status filter.
func (e *Engine) FindTopDocuments(query string) ([]types.Document, error) {
	return e.FindTopDocumentsPredicate(query, types.StatusPredicate(types.StatusActual))
}

// FindTopDocumentsStatus ranks against query, keeping only documents whose
// status equals status.
func (e *Engine) FindTopDocumentsStatus(query string, status types.DocumentStatus) ([]types.Document, error) {
	return e.FindTopDocumentsPredicate(query, types.StatusPredicate(status))
}

// FindTopDocumentsPredicate ranks against query, keeping only documents pred
// accepts.
func (e *Engine) FindTopDocumentsPredicate(query string, pred types.Predicate) ([]types.Document, error) {
	docs, err := core.FindTopDocuments(e.index, query, pred)
	if err != nil {
		return nil, fmt.Errorf("tfsearch: %w", err)
	}
	return docs, nil
}

// FindTopDocumentsParallel is FindTopDocuments with the fan-out spread
// across goroutines bounded by GOMAXPROCS.
func (e *Engine) FindTopDocumentsParallel(query string) ([]types.Document, error) {
	return e.FindTopDocumentsPredicateParallel(query, types.StatusPredicate(types.StatusActual))
}

// FindTopDocumentsStatusParallel is FindTopDocumentsStatus, parallel mode.
func (e *Engine) FindTopDocumentsStatusParallel(query string, status types.DocumentStatus) ([]types.Document, error) {
	return e.FindTopDocumentsPredicateParallel(query, types.StatusPredicate(status))
}

// FindTopDocumentsPredicateParallel is FindTopDocumentsPredicate, parallel mode.
func (e *Engine) FindTopDocumentsPredicateParallel(query string, pred types.Predicate) ([]types.Document, error) {
	docs, err := core.FindTopDocumentsParallel(e.index, query, pred)
	if err != nil {
		return nil, fmt.Errorf("tfsearch: %w", err)
	}
	return docs, nil
}

// MatchDocument reports which of query's plus words id contains, and id's
// status.
func (e *Engine) MatchDocument(query string, id int) ([]string, types.DocumentStatus, error) {
	words, status, err := core.MatchDocument(e.index, query, id)
	if err != nil {
		return nil, 0, fmt.Errorf("tfsearch: %w", err)
	}
	return words, status, nil
}

// MatchDocumentParallel is MatchDocument, parallel mode.
func (e *Engine) MatchDocumentParallel(query string, id int) ([]string, types.DocumentStatus, error) {
	words, status, err := core.MatchDocumentParallel(e.index, query, id)
	if err != nil {
		return nil, 0, fmt.Errorf("tfsearch: %w", err)
	}
	return words, status, nil
}

// GetWordFrequencies returns id's word frequencies sorted by word, or nil if
// id is absent.
func (e *Engine) GetWordFrequencies(id int) []types.WordFrequency {
	return e.index.GetWordFrequencies(id)
}

// DocumentCount returns how many documents are currently indexed.
func (e *Engine) DocumentCount() int {
	return e.index.DocumentCount()
}

// DocIDs returns every indexed document id in ascending order.
func (e *Engine) DocIDs() []int {
	return e.index.DocIDs()
}

// RemoveDuplicates removes every document whose indexed word set exactly
// matches a smaller-id document's, reporting each through the Engine's
// configured DuplicateReporter, and returns the removed ids.
func (e *Engine) RemoveDuplicates() []int {
	removed := core.RemoveDuplicates(e.index, e.reporter)
	for _, id := range removed {
		e.logger.WithField("doc_id", id).Warn("dropped duplicate document")
	}
	e.logger.WithField("count", len(removed)).Info("removed duplicate documents")
	return removed
}

// ProcessQueries runs every query concurrently against the default
// ACTUAL-status filter, preserving input order.
func (e *Engine) ProcessQueries(queries []string) ([][]types.Document, error) {
	results, err := core.ProcessQueries(e.index, queries, types.StatusPredicate(types.StatusActual))
	if err != nil {
		return nil, fmt.Errorf("tfsearch: %w", err)
	}
	return results, nil
}

// ProcessQueriesJoined is ProcessQueries with every query's results
// concatenated into one slice.
func (e *Engine) ProcessQueriesJoined(queries []string) ([]types.Document, error) {
	joined, err := core.ProcessQueriesJoined(e.index, queries, types.StatusPredicate(types.StatusActual))
	if err != nil {
		return nil, fmt.Errorf("tfsearch: %w", err)
	}
	return joined, nil
}
