package main

import (
	"context"
	"fmt"

	"github.com/gosuri/uiprogress"
	"github.com/revelaction/morphpipe/config"
	"github.com/revelaction/morphpipe/pipeline"
	"github.com/revelaction/morphpipe/storage/sqlite/zombiezen"
	"github.com/spf13/afero"
)

type RunOptions struct {
	Quiet bool
}

func runCommand(ctx context.Context, cfg *config.Config, fs afero.Fs, opts RunOptions, ui UI) error {
	basic, p, err := newPipeline(cfg, fs, cfg.Mode, ui)
	if err != nil {
		return err
	}

	if err := runWithProgress(ctx, basic, p, opts); err != nil {
		return err
	}

	printSummary(cfg.Mode, basic.Summary(), ui)
	return nil
}

// exportCommand runs the advanced pipeline and stores every article in the
// database.
func exportCommand(ctx context.Context, cfg *config.Config, fs afero.Fs, opts RunOptions, ui UI) error {
	basic, p, err := newPipeline(cfg, fs, config.ModeAdvanced, ui)
	if err != nil {
		return err
	}

	pool, err := zombiezen.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer pool.Close()

	basic.Sink = zombiezen.NewDocStore(pool)

	if err := runWithProgress(ctx, basic, p, opts); err != nil {
		return err
	}

	printSummary(config.ModeAdvanced, basic.Summary(), ui)
	fmt.Fprintf(ui.Out, "Successfully exported %d articles to %s\n", basic.Summary().Articles, cfg.DBPath)
	return nil
}

func runWithProgress(ctx context.Context, basic *pipeline.Basic, p pipeline.Pipeline, opts RunOptions) error {
	if opts.Quiet {
		return p.Run(ctx)
	}

	var bar *uiprogress.Bar
	uiprogress.Start()
	defer uiprogress.Stop()

	basic.OnArticle = func(current, total, id int) {
		if bar == nil {
			bar = uiprogress.AddBar(total)
			bar.AppendCompleted()
			bar.PrependElapsed()
		}
		bar.Incr()
	}

	return p.Run(ctx)
}

func printSummary(mode string, s pipeline.Summary, ui UI) {
	fmt.Fprintf(ui.Out, "%s: %d articles, %d sentences, %d tokens\n", mode, s.Articles, s.Sentences, s.Tokens)
	if s.Degraded > 0 {
		fmt.Fprintf(ui.Out, "%d tokens could not be analyzed\n", s.Degraded)
	}
}
