package main

import (
	"fmt"

	"github.com/revelaction/morphpipe/config"
	"github.com/revelaction/morphpipe/convert"
	"github.com/revelaction/morphpipe/corpus"
	"github.com/revelaction/morphpipe/logger"
	"github.com/revelaction/morphpipe/morph"
	"github.com/revelaction/morphpipe/pipeline"
	"github.com/revelaction/morphpipe/split"
	"github.com/revelaction/morphpipe/storage/filesystem"
	"github.com/spf13/afero"
)

func newLogger(cfg *config.Config, ui UI) logger.Logger {
	return logger.NewLogger(&logger.Config{
		Level:      logger.LogLevel(cfg.LogLevel),
		Output:     ui.Err,
		JSON:       cfg.LogJSON,
		TimeFormat: "15:04:05",
	})
}

func layout(cfg *config.Config) corpus.Layout {
	return corpus.Layout{Dir: cfg.AssetsPath, RequireMeta: cfg.RequireMeta}
}

// newCorpus validates the assets directory and reads the articles.
func newCorpus(cfg *config.Config, fs afero.Fs) (*corpus.Manager, *filesystem.AssetStore, error) {
	store := filesystem.NewAssetStore(fs, cfg.AssetsPath, cfg.OutputPath)

	m, err := corpus.NewManager(fs, store, layout(cfg))
	if err != nil {
		return nil, nil, err
	}

	return m, store, nil
}

// newAnalyzer returns the cached analyzer of cfg and the converter of its
// tag set.
func newAnalyzer(cfg *config.Config, fs afero.Fs) (morph.Analyzer, convert.TagConverter, error) {
	var a morph.Analyzer
	kind := convert.Kind(cfg.Analyzer)

	switch kind {
	case convert.Mystem:
		a = morph.NewMystem(cfg.MystemPath)
	case convert.OpenCorpora:
		lex, err := morph.LoadLexicon(fs, cfg.LexiconPath)
		if err != nil {
			return nil, nil, err
		}
		a = lex
	default:
		return nil, nil, fmt.Errorf("unknown analyzer: %q", cfg.Analyzer)
	}

	conv, err := convert.New(kind)
	if err != nil {
		return nil, nil, err
	}

	cached, err := morph.NewCached(a, cfg.CacheSize)
	if err != nil {
		return nil, nil, err
	}

	return cached, conv, nil
}

// newPipeline builds the pipeline of mode over the corpus.
func newPipeline(cfg *config.Config, fs afero.Fs, mode string, ui UI) (*pipeline.Basic, pipeline.Pipeline, error) {
	m, store, err := newCorpus(cfg, fs)
	if err != nil {
		return nil, nil, err
	}

	splitter, err := split.LoadPunkt(fs, cfg.PunktPath)
	if err != nil {
		return nil, nil, err
	}

	log := newLogger(cfg, ui)

	if mode == config.ModeBasic {
		p := pipeline.NewBasic(m, splitter, store, log)
		return p, p, nil
	}

	analyzer, conv, err := newAnalyzer(cfg, fs)
	if err != nil {
		return nil, nil, err
	}

	p := pipeline.NewAdvanced(m, splitter, store, analyzer, conv, log)
	return p.Basic, p, nil
}
