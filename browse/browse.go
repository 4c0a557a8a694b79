// Package browse is an interactive prompt over the annotated corpus database.
package browse

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/c-bata/go-prompt"
	"github.com/revelaction/morphpipe/render"
	"github.com/revelaction/morphpipe/storage"
)

const (
	// batchSize is the number of candidates fetched per query
	batchSize = 500

	// DefaultLimit is the maximum number of sentences shown for a lemma
	DefaultLimit = 200
)

var errUsage = errors.New("usage: ls | show <articleId> <sentenceId> | <lemma> | quit")

type Handler struct {
	DocRepo  storage.DocReader
	Renderer *render.Renderer
	Out      io.Writer

	// Limit is the maximum number of sentences shown for a lemma
	Limit int

	titles map[int]string
}

func NewHandler(dr storage.DocReader, r *render.Renderer, out io.Writer) *Handler {
	return &Handler{
		DocRepo:  dr,
		Renderer: r,
		Out:      out,
		Limit:    DefaultLimit,
	}
}

// Run reads commands from the prompt until quit.
func (h *Handler) Run() error {
	if err := h.loadTitles(); err != nil {
		return err
	}

	fmt.Fprintln(h.Out, "🔑 Ctrl+X: Toggle prefix, 🔧 quit")

	history := []string{}

	for {
		in := prompt.Input("      🔖 ", h.completer,
			prompt.OptionTitle("morphpipe browse"),
			prompt.OptionPrefixTextColor(prompt.Yellow),
			prompt.OptionPreviewSuggestionTextColor(prompt.Blue),
			prompt.OptionSelectedSuggestionBGColor(prompt.LightGray),
			prompt.OptionMaxSuggestion(12),
			prompt.OptionSuggestionBGColor(prompt.DarkGray),
			prompt.OptionHistory(history),
			prompt.OptionAddKeyBind(prompt.KeyBind{
				Key: prompt.ControlX,
				Fn: func(buf *prompt.Buffer) {
					h.Renderer.NextPrefix()
					fmt.Fprintf(h.Out, "Prefix set to %t\n", h.Renderer.HasPrefix)
				}}),
		)

		history = append(history, in)

		quit, err := h.Exec(in)
		if err != nil {
			fmt.Fprintf(h.Out, "Error: %v\n", err)
			continue
		}

		if quit {
			return nil
		}
	}
}

// Exec runs one command line. It returns true if the line is quit.
func (h *Handler) Exec(in string) (bool, error) {
	if h.titles == nil {
		if err := h.loadTitles(); err != nil {
			return false, err
		}
	}

	fields := strings.Fields(in)
	if len(fields) == 0 {
		return false, nil
	}

	switch fields[0] {
	case "quit":
		return true, nil
	case "ls":
		return false, h.list()
	case "show":
		if len(fields) != 3 {
			return false, errUsage
		}
		return false, h.show(fields[1], fields[2])
	}

	if len(fields) != 1 {
		return false, errUsage
	}

	return false, h.find(strings.ToLower(fields[0]))
}

func (h *Handler) loadTitles() error {
	articles, err := h.DocRepo.List()
	if err != nil {
		return fmt.Errorf("could not list articles: %w", err)
	}

	h.titles = make(map[int]string, len(articles))
	for _, a := range articles {
		h.titles[a.Id] = a.Title()
		h.Renderer.AddArticleTitle(a.Id, a.Title())
	}

	return nil
}

func (h *Handler) list() error {
	articles, err := h.DocRepo.List()
	if err != nil {
		return err
	}

	h.Renderer.Articles(articles)
	return nil
}

func (h *Handler) show(articleArg, sentenceArg string) error {
	articleID, err := strconv.Atoi(articleArg)
	if err != nil {
		return fmt.Errorf("invalid article id %q", articleArg)
	}

	sentenceID, err := strconv.Atoi(sentenceArg)
	if err != nil {
		return fmt.Errorf("invalid sentence id %q", sentenceArg)
	}

	a, err := h.DocRepo.Read(articleID)
	if err != nil {
		return err
	}

	sentences := a.Sentences()
	if sentenceID < 0 || sentenceID >= len(sentences) {
		return fmt.Errorf("sentence index %d out of bounds (article has %d sentences)", sentenceID, len(sentences))
	}

	s := sentences[sentenceID]
	h.Renderer.Sentence(s, fmt.Sprintf("✍  %d ", sentenceID))
	h.Renderer.Tokens(s)
	return nil
}

// find renders the sentences containing lemma, in database order, up to
// Limit.
func (h *Handler) find(lemma string) error {
	shown, err := Find(h.DocRepo, lemma, h.Limit, func(res storage.SentenceResult) error {
		h.Renderer.Candidate(res, lemma)
		return nil
	})
	if err != nil {
		return err
	}

	if shown == 0 {
		fmt.Fprintf(h.Out, "No sentences for lemma %q\n", lemma)
	}

	return nil
}

// Find calls cb for the sentences containing lemma, in database order, up to
// limit sentences. It returns the number of sentences found.
func Find(repo storage.DocReader, lemma string, limit int, cb func(storage.SentenceResult) error) (int, error) {
	cursor := storage.Cursor(0)
	found := 0

	for found < limit {
		newCursor, err := repo.FindCandidates(lemma, cursor, min(batchSize, limit-found), func(res storage.SentenceResult) error {
			found++
			return cb(res)
		})
		if err != nil {
			return found, fmt.Errorf("could not fetch candidates: %w", err)
		}

		// no more progress
		if newCursor == cursor {
			break
		}
		cursor = newCursor
	}

	return found, nil
}

func (h *Handler) completer(in prompt.Document) []prompt.Suggest {
	s := []prompt.Suggest{}
	befCursor := in.TextBeforeCursor()
	if befCursor == "" {
		return s
	}

	tokens := strings.Split(befCursor, " ")

	if len(tokens) == 1 {
		for _, cmd := range []prompt.Suggest{
			{Text: "ls", Description: "list articles"},
			{Text: "show", Description: "show a sentence: show <articleId> <sentenceId>"},
			{Text: "quit", Description: "exit"},
		} {
			if strings.HasPrefix(cmd.Text, tokens[0]) {
				s = append(s, cmd)
			}
		}
		return s
	}

	if tokens[0] == "show" && len(tokens) == 2 {
		return h.articleSuggestions(tokens[1])
	}

	return s
}

// articleSuggestions returns the article ids starting with prefix, in
// ascending order.
func (h *Handler) articleSuggestions(prefix string) []prompt.Suggest {
	s := []prompt.Suggest{}
	for _, id := range slices.Sorted(maps.Keys(h.titles)) {
		text := strconv.Itoa(id)
		if strings.HasPrefix(text, prefix) {
			s = append(s, prompt.Suggest{Text: text, Description: "📖 " + h.titles[id]})
		}
	}

	return s
}
