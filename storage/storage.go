package storage

import (
	"github.com/revelaction/morphpipe/article"
	sent "github.com/revelaction/morphpipe/sentence"
)

// ArticleReader defines read operations for the fetched assets
type ArticleReader interface {
	// ReadRaw returns the raw text of the article id
	ReadRaw(id int) (string, error)

	// ReadMeta returns the metadata of the article id
	ReadMeta(id int) (article.Meta, error)
}

// ArticleWriter defines write operations for the pipeline outputs
type ArticleWriter interface {
	// WriteCleaned persists the cleaned sentences of the article
	WriteCleaned(a *article.Article) error

	// WriteConllu persists the CONLL-U representation of the article
	WriteConllu(a *article.Article) error
}

// Cursor for paginated lemma-based queries
type Cursor int64

// SentenceResult is a sentence returned by a lemma query
type SentenceResult struct {
	RowID        int64
	ArticleID    int
	ArticleTitle string
	Sentence     sent.Sentence
}

// DocReader defines read operations for the annotated corpus database
type DocReader interface {
	// List returns the stored articles with their metadata. Sentences are
	// not loaded.
	List() ([]*article.Article, error)

	// Read returns an article with its sentences
	Read(id int) (*article.Article, error)

	// FindCandidates returns sentences containing the lemma, resuming after
	// the given cursor. It calls onCandidate for each result.
	// Returns the new cursor and any error.
	FindCandidates(lemma string, after Cursor, limit int, onCandidate func(SentenceResult) error) (Cursor, error)
}

// DocWriter defines write operations for the annotated corpus database
type DocWriter interface {
	// Write persists an article and its sentences/lemmas, replacing a
	// previous version with the same id.
	Write(a *article.Article) error
}

// DocRepository combines read and write operations
type DocRepository interface {
	DocReader
	DocWriter
}
