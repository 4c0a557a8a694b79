package main

import (
	"github.com/revelaction/morphpipe/config"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"
)

// flagKeys maps the flags that override config values to their config key.
var flagKeys = map[string]string{
	"assets-path":  "assets_path",
	"output-path":  "output_path",
	"require-meta": "require_meta",
	"punkt-path":   "punkt_path",
	"log-level":    "log_level",
	"log-json":     "log_json",
	"mode":         "mode",
	"analyzer":     "analyzer",
	"mystem-path":  "mystem_path",
	"lexicon-path": "lexicon_path",
	"cache-size":   "cache_size",
	"db-path":      "db_path",
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "YAML config file"},
		&cli.StringFlag{Name: "env-file", Value: config.DefaultEnvFile, Usage: "dotenv file with MORPHPIPE_ variables"},
		&cli.StringFlag{Name: "assets-path", Aliases: []string{"a"}, Usage: "directory of the {id}_raw.txt and {id}_meta.json files"},
		&cli.StringFlag{Name: "output-path", Aliases: []string{"o"}, Usage: "directory of the produced files (default: assets path)"},
		&cli.BoolFlag{Name: "require-meta", Usage: "validate and read the {id}_meta.json files"},
		&cli.StringFlag{Name: "punkt-path", Usage: "punkt sentence splitter model (JSON)"},
		&cli.StringFlag{Name: "log-level", Usage: "debug, info, warn or error"},
		&cli.BoolFlag{Name: "log-json", Usage: "log in JSON"},
	}
}

func annotationFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "analyzer", Usage: "morphological analyzer: mystem or opencorpora"},
		&cli.StringFlag{Name: "mystem-path", Usage: "mystem binary"},
		&cli.StringFlag{Name: "lexicon-path", Usage: "OpenCorpora lexicon (form, lemma, tags TSV)"},
		&cli.IntFlag{Name: "cache-size", Usage: "number of cached word analyses"},
	}
}

func modeFlag() cli.Flag {
	return &cli.StringFlag{Name: "mode", Aliases: []string{"m"}, Usage: "basic (cleaned text) or advanced (cleaned text and CONLL-U)"}
}

func dbFlag() cli.Flag {
	return &cli.StringFlag{Name: "db-path", Aliases: []string{"db"}, Usage: "SQLite database of annotated articles"}
}

func quietFlag() cli.Flag {
	return &cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}, Usage: "do not show the progress bar"}
}

// loadConfig loads the configuration, with the flags set in the command
// line taking precedence.
func loadConfig(c *cli.Context, fs afero.Fs) (*config.Config, error) {
	overrides := map[string]any{}
	for flag, key := range flagKeys {
		if c.IsSet(flag) {
			overrides[key] = c.Value(flag)
		}
	}

	return config.Load(fs, config.Options{
		File:      c.String("config"),
		EnvFile:   c.String("env-file"),
		Overrides: overrides,
	})
}
