package main

import (
	"fmt"
	"strings"

	"github.com/revelaction/morphpipe/browse"
	"github.com/revelaction/morphpipe/render"
	"github.com/revelaction/morphpipe/storage"
	"github.com/urfave/cli/v2"
)

type FindOptions struct {
	JSON    bool
	NoColor bool
	Limit   int
}

func parseFindArgs(c *cli.Context) (string, error) {
	if c.Args().Len() != 1 {
		return "", fmt.Errorf("find needs <lemma>")
	}

	return strings.ToLower(c.Args().Get(0)), nil
}

func findCommand(repo storage.DocReader, opts FindOptions, lemma string, ui UI) error {
	if opts.Limit < 1 {
		return fmt.Errorf("invalid limit: %d", opts.Limit)
	}

	if opts.JSON {
		results := []storage.SentenceResult{}
		if _, err := browse.Find(repo, lemma, opts.Limit, func(res storage.SentenceResult) error {
			results = append(results, res)
			return nil
		}); err != nil {
			return err
		}
		return render.NewJSONRenderer(ui.Out).Candidates(results)
	}

	articles, err := repo.List()
	if err != nil {
		return fmt.Errorf("could not list articles: %w", err)
	}

	r := render.NewRenderer(ui.Out)
	r.HasColor = !opts.NoColor
	for _, a := range articles {
		r.AddArticleTitle(a.Id, a.Title())
	}

	n, err := browse.Find(repo, lemma, opts.Limit, func(res storage.SentenceResult) error {
		r.Candidate(res, lemma)
		return nil
	})
	if err != nil {
		return err
	}

	if n == 0 {
		fmt.Fprintf(ui.Out, "No sentences for lemma %q\n", lemma)
	}

	return nil
}
