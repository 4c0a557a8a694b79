package render

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/revelaction/morphpipe/article"
	sent "github.com/revelaction/morphpipe/sentence"
	"github.com/revelaction/morphpipe/stat"
	"github.com/revelaction/morphpipe/storage"
)

const titleWidth = 20

var (
	Grey256  = "\033[1;38;5;145m"
	Green256 = "\033[1;38;5;70m"
	Off      = "\033[0m"
)

// Renderer writes sentences, token tables and stats for a terminal.
type Renderer struct {
	W io.Writer

	HasColor bool

	// HasPrefix adds the article and sentence ids before each candidate
	HasPrefix bool

	ArticleTitles map[int]string
}

func NewRenderer(w io.Writer) *Renderer {
	if w == nil {
		w = os.Stdout
	}

	return &Renderer{W: w, HasPrefix: true, ArticleTitles: map[int]string{}}
}

func (r *Renderer) AddArticleTitle(id int, title string) {
	r.ArticleTitles[id] = title
}

// Sentence writes the tokens of s, separated by a space, after prefix.
func (r *Renderer) Sentence(s sent.Sentence, prefix string) {
	fmt.Fprintf(r.W, "%s%s\n", prefix, r.SentenceString(s, ""))
}

// SentenceString returns the tokens of s separated by a space. Tokens with
// lemma are highlighted.
func (r *Renderer) SentenceString(s sent.Sentence, lemma string) string {
	words := make([]string, 0, len(s.Tokens()))
	for _, t := range s.Tokens() {
		words = append(words, r.colorToken(t, lemma))
	}

	return strings.Join(words, " ")
}

// Tokens writes one line per token with its annotation.
func (r *Renderer) Tokens(s sent.Sentence) {
	for _, t := range s.Tokens() {
		p := t.MorphologicalParameters()
		fmt.Fprintf(r.W, "%6d %20q %20q %6s %s\n", t.Position(), t.Text(), p.Lemma, p.POS, p.Tags)
	}
}

// Conllu writes the annotated CONLL-U block of s.
func (r *Renderer) Conllu(s sent.Sentence) {
	fmt.Fprint(r.W, s.Render(true))
}

// Candidate writes a sentence found by a lemma query, highlighting the
// tokens of lemma.
func (r *Renderer) Candidate(res storage.SentenceResult, lemma string) {
	prefix := ""
	if r.HasPrefix {
		prefix = fmt.Sprintf("[%s %3d %4d] ✍  ", r.title(res.ArticleID), res.ArticleID, res.Sentence.Position())
	}

	fmt.Fprintf(r.W, "%s%s\n", prefix, r.SentenceString(res.Sentence, lemma))
}

// Articles writes the id and title of each article.
func (r *Renderer) Articles(articles []*article.Article) {
	for _, a := range articles {
		fmt.Fprintf(r.W, "📖 %d %s\n", a.Id, a.Title())
	}
}

// Stats writes the counts and the distribution of sentence lengths.
func (r *Renderer) Stats(s stat.Stats) {
	fmt.Fprintf(r.W, "Num sentences %d, num tokens %d, num tokens per sentence %.2f\n", s.NumSentences, s.NumTokens, s.TokensPerSentenceMean)
	fmt.Fprintf(r.W, "Annotated tokens %d, unknown POS %d\n", s.NumAnnotated, s.NumUnknown)

	lengths := make([]int, 0, len(s.TokensPerSentenceDis))
	for l := range s.TokensPerSentenceDis {
		lengths = append(lengths, l)
	}
	sort.Ints(lengths)

	for _, l := range lengths {
		fmt.Fprintf(r.W, "%5d tokens: %d\n", l, s.TokensPerSentenceDis[l])
	}
}

// NextPrefix toggles the candidate prefix.
func (r *Renderer) NextPrefix() {
	r.HasPrefix = !r.HasPrefix
}

func (r *Renderer) colorToken(t sent.Token, lemma string) string {
	if !r.HasColor || lemma == "" {
		return t.Text()
	}

	if t.MorphologicalParameters().Lemma == lemma {
		return Green256 + t.Text() + Off
	}

	return t.Text()
}

// title returns the article title cut or padded to titleWidth runes.
func (r *Renderer) title(id int) string {
	runes := []rune(r.ArticleTitles[id])
	var part string
	if len(runes) <= titleWidth {
		part = fmt.Sprintf("%-*s", titleWidth, string(runes))
	} else {
		part = string(runes[:titleWidth])
	}

	if !r.HasColor {
		return part
	}

	return Grey256 + part + Off
}
