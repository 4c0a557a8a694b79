package morph

import (
	"context"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cached memoizes the analyses of an Analyzer. Failed analyses are not
// cached.
type Cached struct {
	analyzer Analyzer
	cache    *lru.Cache[string, Analysis]
}

var _ BatchAnalyzer = (*Cached)(nil)

// NewCached wraps a with a LRU cache of size words.
func NewCached(a Analyzer, size int) (*Cached, error) {
	cache, err := lru.New[string, Analysis](size)
	if err != nil {
		return nil, fmt.Errorf("could not create analysis cache: %w", err)
	}

	return &Cached{analyzer: a, cache: cache}, nil
}

func (c *Cached) Analyze(ctx context.Context, word string) (Analysis, error) {
	if a, ok := c.cache.Get(word); ok {
		return a, nil
	}

	a, err := c.analyzer.Analyze(ctx, word)
	if err != nil {
		return Analysis{}, err
	}

	c.cache.Add(word, a)
	return a, nil
}

// AnalyzeBatch returns the cached analyses and analyzes the missing words
// with one call if the wrapped analyzer is a BatchAnalyzer, word by word
// otherwise.
func (c *Cached) AnalyzeBatch(ctx context.Context, words []string) (map[string]Analysis, error) {
	result := make(map[string]Analysis, len(words))
	var missing []string
	for _, w := range words {
		if _, ok := result[w]; ok {
			continue
		}
		if a, ok := c.cache.Get(w); ok {
			result[w] = a
			continue
		}
		result[w] = Analysis{}
		missing = append(missing, w)
	}

	if len(missing) == 0 {
		return result, nil
	}

	if b, ok := c.analyzer.(BatchAnalyzer); ok {
		analyses, err := b.AnalyzeBatch(ctx, missing)
		if err != nil {
			return nil, err
		}
		for _, w := range missing {
			result[w] = analyses[w]
			c.cache.Add(w, analyses[w])
		}
		return result, nil
	}

	for _, w := range missing {
		a, err := c.Analyze(ctx, w)
		if err != nil {
			return nil, err
		}
		result[w] = a
	}

	return result, nil
}
