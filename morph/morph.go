// Package morph provides morphological analyzers for single words.
package morph

import (
	"context"
)

// Analysis is the result of analyzing a word. Tags is in the tag set of the
// analyzer. The zero value means the word is unknown.
type Analysis struct {
	Lemma string
	Tags  string
}

// IsZero reports whether the analyzer did not recognize the word.
func (a Analysis) IsZero() bool {
	return a == Analysis{}
}

// Analyzer returns the most probable analysis of a word.
type Analyzer interface {
	Analyze(ctx context.Context, word string) (Analysis, error)
}

// BatchAnalyzer analyzes many words with a single call. The result has an
// entry for every requested word; unknown words map to the zero Analysis.
type BatchAnalyzer interface {
	Analyzer
	AnalyzeBatch(ctx context.Context, words []string) (map[string]Analysis, error)
}
