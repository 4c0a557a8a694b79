package pipeline

import (
	"context"

	"github.com/revelaction/morphpipe/article"
	"github.com/revelaction/morphpipe/convert"
	"github.com/revelaction/morphpipe/logger"
	"github.com/revelaction/morphpipe/morph"
	sent "github.com/revelaction/morphpipe/sentence"
	"github.com/revelaction/morphpipe/split"
	"github.com/revelaction/morphpipe/storage"
)

// PunctPOS is the UD tag of punctuation only tokens.
const PunctPOS = "PUNCT"

// Advanced is a Basic pipeline that also annotates every token and writes
// the CONLL-U representation.
type Advanced struct {
	*Basic
	analyzer  morph.Analyzer
	converter convert.TagConverter
}

var _ Pipeline = (*Advanced)(nil)

func NewAdvanced(c Corpus, s split.Splitter, w storage.ArticleWriter, a morph.Analyzer, tc convert.TagConverter, log logger.Logger) *Advanced {
	return &Advanced{
		Basic:     NewBasic(c, s, w, log),
		analyzer:  a,
		converter: tc,
	}
}

// Process splits and tokenizes text like Basic and annotates each token.
// A token whose analysis fails keeps empty morphological parameters.
//
// If the analyzer is a morph.BatchAnalyzer, the distinct words of text are
// analyzed with one call. When that call fails, the words are analyzed one
// by one.
func (p *Advanced) Process(ctx context.Context, text string) []sent.Sentence {
	sentences := p.Basic.Process(ctx, text)
	analyses := p.analyzeBatch(ctx, sentences)
	for _, s := range sentences {
		tokens := s.Tokens()
		for i := range tokens {
			p.annotate(ctx, &tokens[i], analyses)
		}
	}

	return sentences
}

func (p *Advanced) analyzeBatch(ctx context.Context, sentences []sent.Sentence) map[string]morph.Analysis {
	b, ok := p.analyzer.(morph.BatchAnalyzer)
	if !ok {
		return nil
	}

	var words []string
	seen := map[string]bool{}
	for _, s := range sentences {
		for _, t := range s.Tokens() {
			if sent.IsPunctOnly(t.Text()) {
				continue
			}
			w := t.Cleaned()
			if !seen[w] {
				seen[w] = true
				words = append(words, w)
			}
		}
	}

	if len(words) == 0 {
		return nil
	}

	analyses, err := b.AnalyzeBatch(ctx, words)
	if err != nil {
		p.log.Warn("batch analysis failed, analyzing words one by one", "words", len(words), "err", err)
		return nil
	}

	return analyses
}

func (p *Advanced) annotate(ctx context.Context, t *sent.Token, analyses map[string]morph.Analysis) {
	if sent.IsPunctOnly(t.Text()) {
		t.SetMorphologicalParameters(sent.MorphologicalParameters{Lemma: t.Text(), POS: PunctPOS})
		return
	}

	word := t.Cleaned()
	a, ok := analyses[word]
	if !ok {
		var err error
		a, err = p.analyzer.Analyze(ctx, word)
		if err != nil {
			p.summary.Degraded++
			p.log.Warn("could not analyze token", "word", word, "err", err)
			return
		}
	}

	if a.IsZero() {
		t.SetMorphologicalParameters(sent.MorphologicalParameters{Lemma: word, POS: convert.UnknownPOS})
		return
	}

	t.SetMorphologicalParameters(sent.MorphologicalParameters{
		Lemma: a.Lemma,
		POS:   p.converter.ConvertPOS(a.Tags),
		Tags:  p.converter.ConvertMorphologicalTags(a.Tags),
	})
}

// Run annotates the articles in ascending id order and writes the cleaned
// and CONLL-U files. Errors of the writer are returned unchanged.
func (p *Advanced) Run(ctx context.Context) error {
	return p.run(ctx, p.Process, p.write)
}

func (p *Advanced) write(a *article.Article) error {
	if err := p.writer.WriteCleaned(a); err != nil {
		return err
	}

	return p.writer.WriteConllu(a)
}
