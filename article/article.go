package article

import (
	"strings"

	sent "github.com/revelaction/morphpipe/sentence"
)

// Meta is the content of the {id}_meta.json file of an article.
type Meta struct {
	Id     int      `json:"id"`
	URL    string   `json:"url"`
	Title  string   `json:"title"`
	Date   string   `json:"date"`
	Author []string `json:"author,omitempty"`
	Topics []string `json:"topics,omitempty"`
}

// Article is a fetched article of the corpus.
type Article struct {
	Id int

	// Meta is nil if the metadata was not loaded
	Meta *Meta

	text string

	sentences []sent.Sentence
}

// New creates an Article with its raw text.
func New(id int, text string) *Article {
	return &Article{Id: id, text: text}
}

// Text returns the raw text of the article.
func (a *Article) Text() string {
	return a.text
}

// Title returns the title in the metadata, if any.
func (a *Article) Title() string {
	if a.Meta == nil {
		return ""
	}
	return a.Meta.Title
}

// SetSentences attaches the processed sentences, replacing those of a
// previous run.
func (a *Article) SetSentences(sentences []sent.Sentence) {
	a.sentences = sentences
}

func (a *Article) Sentences() []sent.Sentence {
	return a.sentences
}

// CleanedText returns one cleaned sentence per line.
func (a *Article) CleanedText() string {
	lines := make([]string, 0, len(a.sentences))
	for _, s := range a.sentences {
		lines = append(lines, s.CleanedSentence())
	}

	return strings.Join(lines, "\n")
}

// ConlluText returns the CONLL-U representation of the article. Sentence
// blocks are separated by a blank line.
func (a *Article) ConlluText(includeTags bool) string {
	var b strings.Builder
	for _, s := range a.sentences {
		b.WriteString(s.Render(includeTags))
		b.WriteString("\n")
	}

	return b.String()
}
