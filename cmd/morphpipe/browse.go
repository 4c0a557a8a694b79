package main

import (
	"github.com/revelaction/morphpipe/browse"
	"github.com/revelaction/morphpipe/render"
	"github.com/revelaction/morphpipe/storage"
)

func browseCommand(repo storage.DocReader, noColor bool, ui UI) error {
	r := render.NewRenderer(ui.Out)
	r.HasColor = !noColor

	return browse.NewHandler(repo, r, ui.Out).Run()
}
