package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/joho/godotenv"
	"github.com/powellquiring/wdlsolver/gowordle"
	"github.com/powellquiring/wdlsolver/wordle"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3" // imports as package "cli"
)

// candidates left after the board, the whole dictionary for an empty board
func candidates(d *wordle.Dictionary, board []wordle.BoardEntry) ([]gowordle.Word, error) {
	wl, err := d.ApplyBoard(board)
	if err != nil {
		return nil, err
	}
	return d.WordlistWords(wl, nil), nil
}

func readBoardFile(path string) ([]wordle.BoardEntry, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	board, err := wordle.ParseBoard(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return board, nil
}

// boardFromArgs reads guess/feedback pairs like: raise bbybb hotly ybybb
func boardFromArgs(args []string) ([]wordle.BoardEntry, error) {
	board := []wordle.BoardEntry{}
	for i := 0; i < len(args); i += 2 {
		entry, err := wordle.NewBoardEntry(args[i], args[i+1])
		if err != nil {
			return nil, err
		}
		board = append(board, entry)
	}
	return board, nil
}

// first prints guesses ranked by cost, "word: cost"
func first(ctx context.Context, w io.Writer, globalConfig GlobalConfiguration, board []wordle.BoardEntry, allGuesses bool, top int) error {
	d := globalConfig.dictionary
	possible, err := candidates(d, board)
	if err != nil {
		return err
	}
	guesses := possible
	if allGuesses {
		guesses = d.Words()
	}
	opts := globalConfig.scoring
	opts.Progress = globalConfig.progressBar(len(guesses), "scoring")
	ranked, err := wordle.NewScorer(opts).RankGuesses(ctx, guesses, possible)
	if err != nil {
		return err
	}
	if top > 0 && top < len(ranked) {
		ranked = ranked[:top]
	}
	for _, ws := range ranked {
		fmt.Fprintf(w, "%s: %.4f\n", ws.Value, ws.Score)
	}
	return nil
}

// next prints the best next guess and the words that are still possible
func next(w io.Writer, globalConfig GlobalConfiguration, board []wordle.BoardEntry) error {
	d := globalConfig.dictionary
	wl, err := d.ApplyBoard(board)
	if err != nil {
		return err
	}
	guess, err := wordle.NewScorer(globalConfig.scoring).BestNextWord(d.WordlistWords(wl, nil))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s: %s\n", guess, strings.Join(d.WordlistStrings(wl), " "))
	return nil
}

// simulate plays the named answers in dictionary order, or every dictionary
// word when none are named
func simulate(ctx context.Context, w io.Writer, globalConfig GlobalConfiguration, answerStrings []string, outDir string) error {
	d := globalConfig.dictionary
	answers := d.Words()
	if len(answerStrings) > 0 {
		wl, err := d.WordlistFromStrings(answerStrings)
		if err != nil {
			return err
		}
		answers = d.WordlistWords(wl, nil)
	}
	if outDir != "" {
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return err
		}
	}
	results, err := wordle.SelfPlay(ctx, d, answers, wordle.SelfPlayOptions{
		Opener:   globalConfig.opener,
		Scoring:  globalConfig.scoring,
		OutDir:   outDir,
		Progress: globalConfig.progressBar(len(answers), "games"),
		Log:      log.Logger,
	})
	if err != nil {
		return err
	}
	if outDir == "" {
		for _, r := range results {
			fmt.Fprintln(w, r)
		}
	}

	summary := wordle.Summarize(results)
	event := log.Info().Int("games", summary.Games).Int("failures", summary.Failures).Float64("average", summary.Average())
	for n, count := range summary.ByGuesses {
		if count > 0 {
			event = event.Int(fmt.Sprintf("guesses_%d", n), count)
		}
	}
	event.Msg("simulation done")
	return nil
}

func cpuProfile() func() {
	f, err := os.Create("cpu.prof")
	if err != nil {
		panic(err)
	}
	pprof.StartCPUProfile(f)
	return pprof.StopCPUProfile
}

// newCommand builds the cli, command output goes to w
func newCommand(w io.Writer) *cli.Command {
	flags := globalFlags{}
	// runs the command body with the configuration loaded
	withConfig := func(action func(ctx context.Context, cmd *cli.Command, globalConfig GlobalConfiguration) error) cli.ActionFunc {
		return func(ctx context.Context, cmd *cli.Command) error {
			globalConfig, err := globalConfiguration(cmd, &flags)
			if err != nil {
				return err
			}
			if flags.profile {
				def := cpuProfile()
				defer def()
			}
			return action(ctx, cmd, globalConfig)
		}
	}

	return &cli.Command{
		Name:  "wdl",
		Usage: "wordle solver",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Usage:       "yaml file with words, opener, exclude_all_correct, workers, progress",
				Sources:     cli.EnvVars("WDL_CONFIG"),
				TakesFile:   true,
				Destination: &flags.configFile,
			},
			&cli.StringFlag{
				Name:        "words",
				Value:       "words.txt",
				Aliases:     []string{"w"},
				Usage:       "dictionary, one 5 letter word per line",
				Sources:     cli.EnvVars("WDL_WORDS"),
				TakesFile:   true,
				Destination: &flags.words,
			},
			&cli.StringFlag{
				Name:        "opener",
				Value:       wordle.DefaultOpener.String(),
				Aliases:     []string{"f"},
				Usage:       "first word to guess, only used with sim command",
				Sources:     cli.EnvVars("WDL_OPENER"),
				Destination: &flags.opener,
			},
			&cli.BoolFlag{
				Name:        "exclude-all-correct",
				Usage:       "leave the ggggg outcome out of the cost of a guess",
				Sources:     cli.EnvVars("WDL_EXCLUDE_ALL_CORRECT"),
				Destination: &flags.excludeAllCorrect,
			},
			&cli.IntFlag{
				Name:        "workers",
				Value:       0,
				Aliases:     []string{"j"},
				Usage:       "parallel workers, 0 is one per cpu",
				Sources:     cli.EnvVars("WDL_WORKERS"),
				Destination: &flags.workers,
			},
			&cli.BoolFlag{
				Name:        "progress",
				Aliases:     []string{"p"},
				Usage:       "show progress bar",
				Destination: &flags.progress,
			},
			&cli.BoolFlag{
				Name:        "profile",
				Usage:       "store profile data to analyze",
				Destination: &flags.profile,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Value:       "info",
				Usage:       "debug, info, warn, error",
				Sources:     cli.EnvVars("LOG_LEVEL"),
				Destination: &flags.logLevel,
			},
		},
		Commands: []*cli.Command{
			{
				Name: "first",
				Usage: `first [--board file]
				Rank guesses by how evenly they split the possible words, best first.
				`,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "board", Aliases: []string{"b"}, Usage: "board file, lines of: guess feedback", TakesFile: true},
					&cli.BoolFlag{Name: "all-guesses", Usage: "rank every dictionary word, not just the possible words"},
					&cli.IntFlag{Name: "top", Aliases: []string{"n"}, Usage: "only print the best n, 0 is all"},
				},
				Action: withConfig(func(ctx context.Context, cmd *cli.Command, globalConfig GlobalConfiguration) error {
					board, err := readBoardFile(cmd.String("board"))
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					return first(ctx, w, globalConfig, board, cmd.Bool("all-guesses"), cmd.Int("top"))
				}),
			},
			{
				Name: "next",
				Usage: `next --board file
				Print the best next guess followed by the words still possible.
				`,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "board", Aliases: []string{"b"}, Usage: "board file, lines of: guess feedback", TakesFile: true, Required: true},
				},
				Action: withConfig(func(ctx context.Context, cmd *cli.Command, globalConfig GlobalConfiguration) error {
					board, err := readBoardFile(cmd.String("board"))
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					return next(w, globalConfig, board)
				}),
			},
			{
				Name: "play",
				Usage: `play guess feedback [guess feedback]...
				play a game of wordle by entering the board so far, feedback is g (green) y (yellow) b (black) like: wdl play raise bbybb
				https://www.nytimes.com/games/wordle/index.html
				`,
				Action: withConfig(func(ctx context.Context, cmd *cli.Command, globalConfig GlobalConfiguration) error {
					if cmd.NArg()%2 != 0 {
						return cli.Exit("must have pairs of guess feedback", 1)
					} else if cmd.NArg() < 2 {
						return cli.Exit("must have at least one guess feedback", 2)
					}
					board, err := boardFromArgs(cmd.Args().Slice())
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					return next(w, globalConfig, board)
				}),
			},
			{
				Name: "sim",
				Usage: `sim [solution]...
				Simulate games, printing solution:guess1,guess2,... for each.  If no solutions are provided,
				simulate solutions for all words.
				`,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "out-dir", Aliases: []string{"o"}, Usage: "write one file per worker to this directory instead of stdout"},
				},
				Action: withConfig(func(ctx context.Context, cmd *cli.Command, globalConfig GlobalConfiguration) error {
					return simulate(ctx, w, globalConfig, cmd.Args().Slice(), cmd.String("out-dir"))
				}),
			},
		},
	}
}

func main() {
	_ = godotenv.Load()
	if err := newCommand(os.Stdout).Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg(strings.Join(os.Args, " "))
	}
}
