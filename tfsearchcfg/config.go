// Package tfsearchcfg loads tfsearch.Engine construction settings from a
// YAML file, grounded in the Adithya platform's pkg/config — trimmed to the
// fields a no-network, no-persistence search library actually has.
package tfsearchcfg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds everything tfsearch.NewFromConfig needs to build an Engine.
type Config struct {
	StopWords     []string `yaml:"stopWords"`
	StopWordsFile string   `yaml:"stopWordsFile"`
	LogLevel      string   `yaml:"logLevel"`
}

// Default returns a Config with no stop words and info-level logging.
func Default() *Config {
	return &Config{
		LogLevel: "info",
	}
}

// Load reads a YAML config file and applies it over Default's values. An
// empty path returns Default() unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("tfsearchcfg: reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("tfsearchcfg: parsing %s: %w", path, err)
	}
	if v := os.Getenv("TFSEARCH_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	return cfg, nil
}

// ResolveStopWords returns StopWords as-is, or, if StopWordsFile is set and
// StopWords is empty, the whitespace-separated tokens of that file's
// contents.
func (c *Config) ResolveStopWords() ([]string, error) {
	if len(c.StopWords) > 0 || c.StopWordsFile == "" {
		return c.StopWords, nil
	}
	data, err := os.ReadFile(c.StopWordsFile)
	if err != nil {
		return nil, fmt.Errorf("tfsearchcfg: reading stop words file %s: %w", c.StopWordsFile, err)
	}
	return splitFields(string(data)), nil
}

func splitFields(text string) []string {
	var words []string
	start := -1
	for i := 0; i <= len(text); i++ {
		if i < len(text) && text[i] != ' ' && text[i] != '\n' && text[i] != '\t' && text[i] != '\r' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			words = append(words, text[start:i])
			start = -1
		}
	}
	return words
}
