package main

import (
	"github.com/revelaction/morphpipe/render"
	"github.com/revelaction/morphpipe/storage"
)

func lsCommand(repo storage.DocReader, ui UI) error {
	articles, err := repo.List()
	if err != nil {
		return err
	}

	render.NewRenderer(ui.Out).Articles(articles)
	return nil
}
