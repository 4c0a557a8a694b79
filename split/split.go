// Package split divides a text into sentences.
package split

import (
	"fmt"
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/spf13/afero"
)

// Splitter divides text into sentences, in order.
type Splitter interface {
	Split(text string) []string
}

type tokenizer interface {
	Tokenize(text string) []*sentences.Sentence
}

// Punkt splits text with the Punkt algorithm. The trained parameters
// (abbreviations, collocations, sentence starters) come from a model file
// in the NLTK JSON format, f.ex. a russian.json training.
type Punkt struct {
	tokenizer tokenizer
}

var _ Splitter = (*Punkt)(nil)

// NewPunkt returns a splitter with the trained parameters of storage.
func NewPunkt(storage *sentences.Storage) *Punkt {
	return &Punkt{tokenizer: sentences.NewSentenceTokenizer(storage)}
}

// LoadPunkt reads the training model at path. If path is empty, an untrained
// splitter is returned, which only knows sentence ending punctuation.
func LoadPunkt(fs afero.Fs, path string) (*Punkt, error) {
	if path == "" {
		return NewPunkt(sentences.NewStorage()), nil
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("could not read punkt model: %w", err)
	}

	storage, err := sentences.LoadTraining(data)
	if err != nil {
		return nil, fmt.Errorf("could not load punkt model %s: %w", path, err)
	}

	return NewPunkt(storage), nil
}

// Split returns the non blank sentences of text, trimmed.
func (p *Punkt) Split(text string) []string {
	var out []string
	for _, s := range p.tokenizer.Tokenize(text) {
		if t := strings.TrimSpace(s.Text); t != "" {
			out = append(out, t)
		}
	}

	return out
}
