package main

import (
	"fmt"
	"strconv"

	"github.com/revelaction/morphpipe/render"
	sent "github.com/revelaction/morphpipe/sentence"
	"github.com/revelaction/morphpipe/storage"
	"github.com/urfave/cli/v2"
)

type SentenceOptions struct {
	JSON   bool
	Conllu bool
}

func parseSentenceArgs(c *cli.Context) (int, int, error) {
	if c.Args().Len() != 2 {
		return 0, 0, fmt.Errorf("sentence needs <articleId> <sentenceId>")
	}

	articleID, err := strconv.Atoi(c.Args().Get(0))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid article id: %s", c.Args().Get(0))
	}

	sentenceID, err := strconv.Atoi(c.Args().Get(1))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid sentence id: %s", c.Args().Get(1))
	}

	return articleID, sentenceID, nil
}

// readSentence returns the sentence at index sentenceID of the article.
func readSentence(repo storage.DocReader, articleID, sentenceID int) (sent.Sentence, error) {
	a, err := repo.Read(articleID)
	if err != nil {
		return sent.Sentence{}, err
	}

	sentences := a.Sentences()
	if sentenceID < 0 || sentenceID >= len(sentences) {
		return sent.Sentence{}, fmt.Errorf("sentence index %d out of bounds (article has %d sentences)", sentenceID, len(sentences))
	}

	return sentences[sentenceID], nil
}

func sentenceCommand(repo storage.DocReader, opts SentenceOptions, articleID, sentenceID int, ui UI) error {
	s, err := readSentence(repo, articleID, sentenceID)
	if err != nil {
		return err
	}

	if opts.JSON {
		return render.NewJSONRenderer(ui.Out).Sentence(s)
	}

	r := render.NewRenderer(ui.Out)
	if opts.Conllu {
		r.Conllu(s)
		return nil
	}

	r.Sentence(s, fmt.Sprintf("✍  %d ", sentenceID))
	fmt.Fprintln(ui.Out)
	r.Tokens(s)
	return nil
}
