package render

import (
	"encoding/json"
	"io"

	sent "github.com/revelaction/morphpipe/sentence"
	"github.com/revelaction/morphpipe/storage"
)

// JSONRenderer writes sentences as JSON to a writer.
type JSONRenderer struct {
	W io.Writer
}

// NewJSONRenderer creates a JSONRenderer writing to w.
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	return &JSONRenderer{W: w}
}

// Sentence serializes s with its tokens.
func (r *JSONRenderer) Sentence(s sent.Sentence) error {
	return json.NewEncoder(r.W).Encode(s)
}

type candidateJSON struct {
	ArticleID    int           `json:"article_id"`
	ArticleTitle string        `json:"article_title"`
	Sentence     sent.Sentence `json:"sentence"`
}

// Candidates serializes lemma query results as a JSON array.
func (r *JSONRenderer) Candidates(results []storage.SentenceResult) error {
	out := make([]candidateJSON, 0, len(results))
	for _, res := range results {
		out = append(out, candidateJSON{
			ArticleID:    res.ArticleID,
			ArticleTitle: res.ArticleTitle,
			Sentence:     res.Sentence,
		})
	}

	return json.NewEncoder(r.W).Encode(out)
}
