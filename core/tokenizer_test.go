package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWordIterSplitsOnSpaces(t *testing.T) {
	it := NewWordIter("the quick  brown   fox")
	var got []string
	for {
		w, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, w)
	}
	assert.Equal(t, []string{"the", "quick", "brown", "fox"}, got)
}

func TestWordIterEmpty(t *testing.T) {
	it := NewWordIter("   ")
	_, ok := it.Next()
	assert.False(t, ok)
}

func TestSplitWords(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SplitWords(" a b  c "))
	assert.Nil(t, SplitWords(""))
}
