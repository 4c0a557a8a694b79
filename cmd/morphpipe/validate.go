package main

import (
	"fmt"

	"github.com/revelaction/morphpipe/config"
	"github.com/revelaction/morphpipe/corpus"
	"github.com/spf13/afero"
)

func validateCommand(cfg *config.Config, fs afero.Fs, ui UI) error {
	n, err := corpus.Validate(fs, layout(cfg))
	if err != nil {
		return err
	}

	fmt.Fprintf(ui.Out, "✔ %s: %d articles\n", cfg.AssetsPath, n)
	return nil
}
