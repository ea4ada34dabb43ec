package engine

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/huichen/tfsearch/tfsearchcfg"
)

// NewFromConfig builds an Engine from a tfsearchcfg.Config, the file-driven
// alternative to New/NewFromText.
func NewFromConfig(cfg *tfsearchcfg.Config, opts ...EngineOption) (*Engine, error) {
	stopWords, err := cfg.ResolveStopWords()
	if err != nil {
		return nil, fmt.Errorf("tfsearch: %w", err)
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger := logrus.New()
	logger.SetLevel(level)
	opts = append([]EngineOption{WithLogger(logger.WithField("component", "tfsearch"))}, opts...)

	return New(stopWords, opts...)
}
