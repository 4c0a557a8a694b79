package stat

import (
	"github.com/revelaction/morphpipe/article"
	sent "github.com/revelaction/morphpipe/sentence"
)

// UnknownPOS is the tag counted in Stats.NumUnknown.
const UnknownPOS = "X"

type Handler struct {
	stats Stats
}

type Stats struct {
	NumSentences int
	NumTokens    int

	// TokensPerSentenceMean is 0 if there are no sentences
	TokensPerSentenceMean float64

	// TokensPerSentenceDis counts sentences by number of tokens
	TokensPerSentenceDis map[int]int

	NumAnnotated int
	NumUnknown   int
}

func (h *Handler) Get() Stats {
	return h.stats
}

func NewHandler() *Handler {
	return &Handler{stats: Stats{TokensPerSentenceDis: map[int]int{}}}
}

// AggregateArticle adds the sentences of a.
func (h *Handler) AggregateArticle(a *article.Article) {
	h.Aggregate(a.Sentences()...)
}

// Aggregate adds sentences to the stats.
func (h *Handler) Aggregate(sentences ...sent.Sentence) {
	for _, s := range sentences {
		tokens := s.Tokens()
		h.stats.NumSentences++
		h.stats.NumTokens += len(tokens)
		h.stats.TokensPerSentenceDis[len(tokens)]++

		for _, t := range tokens {
			p := t.MorphologicalParameters()
			if p.IsZero() {
				continue
			}
			h.stats.NumAnnotated++
			if p.POS == UnknownPOS {
				h.stats.NumUnknown++
			}
		}
	}

	if h.stats.NumSentences > 0 {
		h.stats.TokensPerSentenceMean = float64(h.stats.NumTokens) / float64(h.stats.NumSentences)
	}
}
