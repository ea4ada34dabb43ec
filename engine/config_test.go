package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huichen/tfsearch/tfsearchcfg"
	"github.com/huichen/tfsearch/types"
)

func TestNewFromConfigWiresStopWords(t *testing.T) {
	cfg := tfsearchcfg.Default()
	cfg.StopWords = []string{"and"}

	e, err := NewFromConfig(cfg)
	require.NoError(t, err)
	require.NoError(t, e.AddDocument(0, "cat and dog", types.StatusActual, nil))

	freqs := e.GetWordFrequencies(0)
	assert.Len(t, freqs, 2)
}

func TestNewFromConfigFallsBackOnBadLogLevel(t *testing.T) {
	cfg := tfsearchcfg.Default()
	cfg.LogLevel = "not-a-level"

	_, err := NewFromConfig(cfg)
	require.NoError(t, err)
}
