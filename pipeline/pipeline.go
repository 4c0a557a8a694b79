// Package pipeline turns the articles of a corpus into cleaned text and
// CONLL-U files.
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/revelaction/morphpipe/article"
	"github.com/revelaction/morphpipe/logger"
	sent "github.com/revelaction/morphpipe/sentence"
	"github.com/revelaction/morphpipe/split"
	"github.com/revelaction/morphpipe/storage"
)

// Pipeline processes texts into sentences and runs over a whole corpus.
type Pipeline interface {
	// Process splits text into tokenized sentences
	Process(ctx context.Context, text string) []sent.Sentence

	// Run processes and writes every article of the corpus
	Run(ctx context.Context) error
}

// Corpus is the source of articles, f.ex. a *corpus.Manager.
type Corpus interface {
	Articles() map[int]*article.Article
	IDs() []int
}

// ProgressFunc is called after each article is written. current starts at 1.
type ProgressFunc func(current, total, id int)

// Summary counts the work of a run.
type Summary struct {
	Articles  int
	Sentences int
	Tokens    int

	// Degraded is the number of tokens left unannotated after an analyzer
	// failure
	Degraded int

	// NotStored is the number of articles the Sink failed to store
	NotStored int
}

// Basic splits and tokenizes the articles and writes their cleaned text.
type Basic struct {
	corpus   Corpus
	splitter split.Splitter
	writer   storage.ArticleWriter
	log      logger.Logger

	// Sink, if set, receives each article after its files are written
	Sink storage.DocWriter

	// OnArticle, if set, is called after each article
	OnArticle ProgressFunc

	summary Summary
}

var _ Pipeline = (*Basic)(nil)

func NewBasic(c Corpus, s split.Splitter, w storage.ArticleWriter, log logger.Logger) *Basic {
	if log == nil {
		log = logger.Discard()
	}

	return &Basic{corpus: c, splitter: s, writer: w, log: log}
}

// Process splits text into sentences and tokenizes them by whitespace.
// Blank sentences are skipped, the remaining ones are numbered from 0.
func (b *Basic) Process(_ context.Context, text string) []sent.Sentence {
	var sentences []sent.Sentence
	for _, s := range b.splitter.Split(text) {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		sentences = append(sentences, sent.New(len(sentences), s))
	}

	return sentences
}

// Run processes the articles in ascending id order. Errors of the writer
// are returned unchanged.
func (b *Basic) Run(ctx context.Context) error {
	return b.run(ctx, b.Process, b.writeCleaned)
}

// Summary returns the counts of the last run.
func (b *Basic) Summary() Summary {
	return b.summary
}

func (b *Basic) writeCleaned(a *article.Article) error {
	return b.writer.WriteCleaned(a)
}

type processFunc func(ctx context.Context, text string) []sent.Sentence

type writeFunc func(a *article.Article) error

func (b *Basic) run(ctx context.Context, process processFunc, write writeFunc) error {
	b.summary = Summary{}

	ids := b.corpus.IDs()
	articles := b.corpus.Articles()

	for i, id := range ids {
		if err := ctx.Err(); err != nil {
			return err
		}

		a := articles[id]
		sentences := process(ctx, a.Text())

		// a canceled analysis leaves the article half annotated
		if err := ctx.Err(); err != nil {
			return err
		}

		a.SetSentences(sentences)

		if err := write(a); err != nil {
			return err
		}

		numTokens := countTokens(sentences)
		b.summary.Articles++
		b.summary.Sentences += len(sentences)
		b.summary.Tokens += numTokens

		if b.Sink != nil {
			if err := b.Sink.Write(a); err != nil {
				b.summary.NotStored++
				b.log.Error("could not store article", "article_id", id, "err", err)
			}
		}

		b.log.Info("processed article", "article_id", id, "sentences", len(sentences), "tokens", numTokens)

		if b.OnArticle != nil {
			b.OnArticle(i+1, len(ids), id)
		}
	}

	if b.summary.NotStored > 0 {
		return fmt.Errorf("%d of %d articles could not be stored", b.summary.NotStored, len(ids))
	}

	return nil
}

func countTokens(sentences []sent.Sentence) int {
	n := 0
	for _, s := range sentences {
		n += len(s.Tokens())
	}
	return n
}
