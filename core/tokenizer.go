package core

// WordIter splits a line of text into space-separated tokens (only the
// byte 0x20 separates; tabs and newlines are part of a token) without
// allocating a slice for the whole line. It borrows substrings of the
// original text, mirroring SplitWords in search_server.cpp.
type WordIter struct {
	text string
	pos  int
}

// NewWordIter returns an iterator over the space-separated tokens of text.
func NewWordIter(text string) *WordIter {
	return &WordIter{text: text}
}

// Next returns the next token and true, or "" and false once the input is
// exhausted. Runs of more than one space collapse, matching SplitIntoWords'
// behavior of trimming any number of separating spaces.
func (it *WordIter) Next() (string, bool) {
	n := len(it.text)
	for it.pos < n && it.text[it.pos] == ' ' {
		it.pos++
	}
	if it.pos >= n {
		return "", false
	}
	start := it.pos
	for it.pos < n && it.text[it.pos] != ' ' {
		it.pos++
	}
	return it.text[start:it.pos], true
}

// SplitWords collects every token of text into a slice. Most callers should
// prefer WordIter directly; this exists for the few call sites that need the
// whole line at once (stop-word construction, test fixtures).
func SplitWords(text string) []string {
	it := NewWordIter(text)
	var words []string
	for {
		w, ok := it.Next()
		if !ok {
			break
		}
		words = append(words, w)
	}
	return words
}
