package main

import (
	"fmt"
	"io"
	"os"

	"github.com/revelaction/morphpipe/browse"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v2"
)

// UI contains the output streams for the application.
// Used for injecting buffers during testing.
type UI struct {
	Out io.Writer
	Err io.Writer
}

func main() {
	ui := UI{Out: os.Stdout, Err: os.Stderr}

	app := newApp(ui, afero.NewOsFs())
	if err := app.Run(os.Args); err != nil {
		fprintErr(ui.Err, err)
		os.Exit(1)
	}
}

func fprintErr(w io.Writer, err error) {
	_, _ = fmt.Fprintf(w, "morphpipe: %v\n", err)
}

func newApp(ui UI, fs afero.Fs) *cli.App {
	return &cli.App{
		Name:                 "morphpipe",
		Usage:                "validate a directory of articles and annotate it in CONLL-U",
		Version:              BuildTag,
		EnableBashCompletion: true,
		HideVersion:          true,
		Writer:               ui.Out,
		ErrWriter:            ui.Err,
		Flags:                globalFlags(),
		Commands: []*cli.Command{
			{
				Name:      "validate",
				Usage:     "check the structure of the assets directory",
				ArgsUsage: " ",
				Action: func(c *cli.Context) error {
					cfg, err := loadConfig(c, fs)
					if err != nil {
						return err
					}
					return validateCommand(cfg, fs, ui)
				},
			},
			{
				Name:      "run",
				Usage:     "clean (basic) or annotate (advanced) every article",
				ArgsUsage: " ",
				Flags:     append(annotationFlags(), modeFlag(), quietFlag()),
				Action: func(c *cli.Context) error {
					cfg, err := loadConfig(c, fs)
					if err != nil {
						return err
					}
					return runCommand(c.Context, cfg, fs, RunOptions{Quiet: c.Bool("quiet")}, ui)
				},
			},
			{
				Name:      "export",
				Usage:     "annotate every article and store it in the database",
				ArgsUsage: " ",
				Flags:     append(annotationFlags(), dbFlag(), quietFlag()),
				Action: func(c *cli.Context) error {
					cfg, err := loadConfig(c, fs)
					if err != nil {
						return err
					}
					return exportCommand(c.Context, cfg, fs, RunOptions{Quiet: c.Bool("quiet")}, ui)
				},
			},
			{
				Name:      "ls",
				Usage:     "list the articles of the database",
				ArgsUsage: " ",
				Flags:     []cli.Flag{dbFlag()},
				Action: func(c *cli.Context) error {
					return withRepository(c, fs, func(repo *repository) error {
						return lsCommand(repo, ui)
					})
				},
			},
			{
				Name:      "sentence",
				Usage:     "show a stored sentence and its tokens",
				ArgsUsage: "<articleId> <sentenceId>",
				Flags: []cli.Flag{
					dbFlag(),
					&cli.BoolFlag{Name: "json", Usage: "print the sentence as JSON"},
					&cli.BoolFlag{Name: "conllu", Usage: "print the sentence as CONLL-U"},
				},
				Action: func(c *cli.Context) error {
					articleID, sentenceID, err := parseSentenceArgs(c)
					if err != nil {
						return err
					}
					opts := SentenceOptions{JSON: c.Bool("json"), Conllu: c.Bool("conllu")}
					return withRepository(c, fs, func(repo *repository) error {
						return sentenceCommand(repo, opts, articleID, sentenceID, ui)
					})
				},
			},
			{
				Name:      "stat",
				Usage:     "show sentence and token statistics of a stored article",
				ArgsUsage: "<articleId> [sentenceId]",
				Flags:     []cli.Flag{dbFlag()},
				Action: func(c *cli.Context) error {
					articleID, sentenceID, err := parseStatArgs(c)
					if err != nil {
						return err
					}
					return withRepository(c, fs, func(repo *repository) error {
						return statCommand(repo, articleID, sentenceID, ui)
					})
				},
			},
			{
				Name:      "find",
				Usage:     "print the stored sentences containing a lemma",
				ArgsUsage: "<lemma>",
				Flags: []cli.Flag{
					dbFlag(),
					&cli.BoolFlag{Name: "json", Usage: "print the sentences as JSON"},
					&cli.BoolFlag{Name: "no-color", Usage: "do not highlight the lemma"},
					&cli.IntFlag{Name: "limit", Value: browse.DefaultLimit, Usage: "maximum number of sentences"},
				},
				Action: func(c *cli.Context) error {
					lemma, err := parseFindArgs(c)
					if err != nil {
						return err
					}
					opts := FindOptions{JSON: c.Bool("json"), NoColor: c.Bool("no-color"), Limit: c.Int("limit")}
					return withRepository(c, fs, func(repo *repository) error {
						return findCommand(repo, opts, lemma, ui)
					})
				},
			},
			{
				Name:      "browse",
				Usage:     "search the database by lemma in an interactive prompt",
				ArgsUsage: " ",
				Flags: []cli.Flag{
					dbFlag(),
					&cli.BoolFlag{Name: "no-color", Usage: "do not highlight the lemma"},
				},
				Action: func(c *cli.Context) error {
					return withRepository(c, fs, func(repo *repository) error {
						return browseCommand(repo, c.Bool("no-color"), ui)
					})
				},
			},
			{
				Name:      "bash",
				Usage:     "print the bash completion script",
				ArgsUsage: " ",
				Action: func(c *cli.Context) error {
					return bashCommand(ui)
				},
			},
			{
				Name:      "version",
				Usage:     "print the version",
				ArgsUsage: " ",
				Action: func(c *cli.Context) error {
					return versionCommand(ui)
				},
			},
		},
	}
}
