package core

import (
	"fmt"
	"runtime"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/huichen/tfsearch/types"
)

type docMeta struct {
	status types.DocumentStatus
	rating int
}

// Index is the two cross-linked maps a document collection resolves to: word
// handle to the set of documents containing it with their term frequency,
// and document to the set of word handles it contains with their term
// frequency. One RWMutex guards both maps together, since they are always
// mutated in lockstep. Callers are expected to serialize AddDocument/
// RemoveDocument calls against each other (the single-writer contract);
// RLock is held for the duration of any read-side traversal (ranking,
// matching, iteration).
type Index struct {
	mu    sync.RWMutex
	vocab *vocabulary
	stop  StopWords

	wordToDoc map[wordHandle]map[int]float64
	docToWord map[int]map[wordHandle]float64
	meta      map[int]docMeta
	docIDs    []int // ascending
}

// NewIndex builds an empty Index with the given stop words.
func NewIndex(stopWords []string) (*Index, error) {
	stop, err := NewStopWords(stopWords)
	if err != nil {
		return nil, err
	}
	return newIndex(stop), nil
}

// NewIndexFromText builds an empty Index whose stop words are the
// space-separated tokens of text.
func NewIndexFromText(stopWordsText string) (*Index, error) {
	stop, err := NewStopWordsFromText(stopWordsText)
	if err != nil {
		return nil, err
	}
	return newIndex(stop), nil
}

func newIndex(stop StopWords) *Index {
	return &Index{
		vocab:     newVocabulary(),
		stop:      stop,
		wordToDoc: make(map[wordHandle]map[int]float64),
		docToWord: make(map[int]map[wordHandle]float64),
		meta:      make(map[int]docMeta),
	}
}

// AddDocument tokenizes text, computes each surviving word's term frequency,
// and inserts id into both cross-linked maps. Returns ErrInvalidID wrapped
// if id is negative or already present, ErrBadWord wrapped if any token
// (after stop-word filtering) contains a control character.
func (idx *Index) AddDocument(id int, text string, status types.DocumentStatus, ratings []int) error {
	if id < 0 {
		return fmt.Errorf("document id %d: %w", id, types.ErrInvalidID)
	}

	words := make([]string, 0, 16)
	it := NewWordIter(text)
	for {
		w, ok := it.Next()
		if !ok {
			break
		}
		if idx.stop.Contains(w) {
			continue
		}
		if !IsValidWord(w) {
			return fmt.Errorf("document %d word %q: %w", id, w, types.ErrBadWord)
		}
		words = append(words, w)
	}

	idx.mu.Lock()
	defer idx.mu.Unlock()

	if _, exists := idx.meta[id]; exists {
		return fmt.Errorf("document id %d: %w", id, types.ErrInvalidID)
	}

	counts := make(map[wordHandle]int, len(words))
	for _, w := range words {
		counts[idx.vocab.intern(w)]++
	}

	inv := 1.0 / float64(len(words))
	if len(words) == 0 {
		inv = 0
	}
	byWord := make(map[wordHandle]float64, len(counts))
	for h, c := range counts {
		tf := float64(c) * inv
		byWord[h] = tf
		bucket, ok := idx.wordToDoc[h]
		if !ok {
			bucket = make(map[int]float64)
			idx.wordToDoc[h] = bucket
		}
		bucket[id] = tf
	}
	idx.docToWord[id] = byWord
	idx.meta[id] = docMeta{status: status, rating: averageRating(ratings)}
	idx.insertDocID(id)
	return nil
}

func averageRating(ratings []int) int {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return sum / len(ratings)
}

func (idx *Index) insertDocID(id int) {
	i := sort.SearchInts(idx.docIDs, id)
	idx.docIDs = append(idx.docIDs, 0)
	copy(idx.docIDs[i+1:], idx.docIDs[i:])
	idx.docIDs[i] = id
}

func (idx *Index) removeDocID(id int) {
	i := sort.SearchInts(idx.docIDs, id)
	if i < len(idx.docIDs) && idx.docIDs[i] == id {
		idx.docIDs = append(idx.docIDs[:i], idx.docIDs[i+1:]...)
	}
}

// RemoveDocument deletes id from both cross-linked maps sequentially.
// Removing an id that was never added, or was already removed, is a no-op.
func (idx *Index) RemoveDocument(id int) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.removeDocumentLocked(id)
}

// RemoveDocumentParallel removes id, fanning the per-word erasure out across
// goroutines bounded by GOMAXPROCS.
func (idx *Index) RemoveDocumentParallel(id int) {
	idx.mu.Lock()
	defer idx.mu.Unlock()

	byWord, ok := idx.docToWord[id]
	if !ok {
		return
	}
	handles := make([]wordHandle, 0, len(byWord))
	for h := range byWord {
		handles = append(handles, h)
	}

	emptied := make([]bool, len(handles))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, h := range handles {
		i, h := i, h
		g.Go(func() error {
			// Only the inner per-word map is touched concurrently here; it
			// belongs to exactly one handle per goroutine. The outer
			// wordToDoc map itself is not safe for concurrent writes, so
			// any now-empty entries are deleted from it below, after Wait.
			delete(idx.wordToDoc[h], id)
			emptied[i] = len(idx.wordToDoc[h]) == 0
			return nil
		})
	}
	_ = g.Wait()
	for i, h := range handles {
		if emptied[i] {
			delete(idx.wordToDoc, h)
		}
	}

	delete(idx.docToWord, id)
	delete(idx.meta, id)
	idx.removeDocID(id)
}

func (idx *Index) removeDocumentLocked(id int) {
	byWord, ok := idx.docToWord[id]
	if !ok {
		return
	}
	for h := range byWord {
		delete(idx.wordToDoc[h], id)
		if len(idx.wordToDoc[h]) == 0 {
			delete(idx.wordToDoc, h)
		}
	}
	delete(idx.docToWord, id)
	delete(idx.meta, id)
	idx.removeDocID(id)
}

// DocumentCount returns the number of documents currently indexed.
func (idx *Index) DocumentCount() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.meta)
}

// DocIDs returns every indexed document id in ascending order.
func (idx *Index) DocIDs() []int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	out := make([]int, len(idx.docIDs))
	copy(out, idx.docIDs)
	return out
}

// GetWordFrequencies returns id's word-to-term-frequency pairs sorted
// ascending by word, the deterministic stand-in for an "ordered map".
func (idx *Index) GetWordFrequencies(id int) []types.WordFrequency {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	byWord, ok := idx.docToWord[id]
	if !ok {
		return nil
	}
	out := make([]types.WordFrequency, 0, len(byWord))
	for h, tf := range byWord {
		out = append(out, types.WordFrequency{Word: idx.vocab.text(h), TF: tf})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Word < out[j].Word })
	return out
}

// resolve looks up word's handle without interning it. A word the index has
// never seen has no postings and so is not found.
func (idx *Index) resolve(word string) (wordHandle, bool) {
	return idx.vocab.lookup(word)
}

// postingsFor returns the doc-id -> tf postings for a handle; its length is
// the word's document frequency. Callers must hold idx.mu (RLock is
// sufficient) for the duration of any use of the returned map.
func (idx *Index) postingsFor(h wordHandle) map[int]float64 {
	return idx.wordToDoc[h]
}

func (idx *Index) docMetaLocked(id int) (docMeta, bool) {
	m, ok := idx.meta[id]
	return m, ok
}

func (idx *Index) wordsOfLocked(id int) map[wordHandle]float64 {
	return idx.docToWord[id]
}

// wordHandlesSorted returns id's indexed word handles in ascending order, a
// cheap-to-compare fingerprint basis for duplicate detection.
func (idx *Index) wordHandlesSorted(id int) []wordHandle {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	byWord := idx.docToWord[id]
	out := make([]wordHandle, 0, len(byWord))
	for h := range byWord {
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
