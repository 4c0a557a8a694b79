package main

import (
	"fmt"
	"strconv"

	"github.com/revelaction/morphpipe/render"
	"github.com/revelaction/morphpipe/stat"
	"github.com/revelaction/morphpipe/storage"
	"github.com/urfave/cli/v2"
)

func parseStatArgs(c *cli.Context) (int, *int, error) {
	if c.Args().Len() < 1 || c.Args().Len() > 2 {
		return 0, nil, fmt.Errorf("stat needs <articleId> [sentenceId]")
	}

	articleID, err := strconv.Atoi(c.Args().Get(0))
	if err != nil {
		return 0, nil, fmt.Errorf("invalid article id: %s", c.Args().Get(0))
	}

	if c.Args().Len() == 1 {
		return articleID, nil, nil
	}

	sentenceID, err := strconv.Atoi(c.Args().Get(1))
	if err != nil {
		return 0, nil, fmt.Errorf("invalid sentence id: %s", c.Args().Get(1))
	}

	return articleID, &sentenceID, nil
}

func statCommand(repo storage.DocReader, articleID int, sentenceID *int, ui UI) error {
	hdl := stat.NewHandler()

	if sentenceID != nil {
		s, err := readSentence(repo, articleID, *sentenceID)
		if err != nil {
			return err
		}
		hdl.Aggregate(s)
	} else {
		a, err := repo.Read(articleID)
		if err != nil {
			return err
		}
		hdl.AggregateArticle(a)
	}

	render.NewRenderer(ui.Out).Stats(hdl.Get())
	return nil
}
