package main

import (
	"fmt"
	"os"

	"github.com/powellquiring/wdlsolver/gowordle"
	"github.com/powellquiring/wdlsolver/wordle"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// fileConfig is the optional yaml config, flags that are set win over it
type fileConfig struct {
	Words             string `yaml:"words"`
	Opener            string `yaml:"opener"`
	ExcludeAllCorrect bool   `yaml:"exclude_all_correct"`
	Workers           int    `yaml:"workers"`
	Progress          bool   `yaml:"progress"`
}

func readFileConfig(path string) (fileConfig, error) {
	var ret fileConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return ret, err
	}
	if err := yaml.Unmarshal(data, &ret); err != nil {
		return ret, fmt.Errorf("%s: %w", path, err)
	}
	return ret, nil
}

// flags shared by every command
type globalFlags struct {
	configFile        string
	words             string
	opener            string
	excludeAllCorrect bool
	workers           int
	progress          bool
	profile           bool
	logLevel          string
}

type GlobalConfiguration struct {
	dictionary *wordle.Dictionary
	opener     gowordle.Word
	scoring    wordle.Options
	progress   bool
}

// merge applies the config file under the flags the user did not set
func (f *globalFlags) merge(isSet func(name string) bool, fc fileConfig) {
	if !isSet("words") && fc.Words != "" {
		f.words = fc.Words
	}
	if !isSet("opener") && fc.Opener != "" {
		f.opener = fc.Opener
	}
	if !isSet("exclude-all-correct") && fc.ExcludeAllCorrect {
		f.excludeAllCorrect = true
	}
	if !isSet("workers") && fc.Workers != 0 {
		f.workers = fc.Workers
	}
	if !isSet("progress") && fc.Progress {
		f.progress = true
	}
}

// flagIsSet looks up the command and its parents, the global flags belong to the root
func flagIsSet(cmd *cli.Command) func(name string) bool {
	return func(name string) bool {
		for _, c := range cmd.Lineage() {
			if c.IsSet(name) {
				return true
			}
		}
		return false
	}
}

func setupLogging(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	return nil
}

// globalConfiguration loads the config file and the dictionary
func globalConfiguration(cmd *cli.Command, f *globalFlags) (GlobalConfiguration, error) {
	var ret GlobalConfiguration
	if err := setupLogging(f.logLevel); err != nil {
		return ret, cli.Exit(fmt.Sprintf("bad log level %q: %v", f.logLevel, err), 2)
	}
	if f.configFile != "" {
		fc, err := readFileConfig(f.configFile)
		if err != nil {
			return ret, cli.Exit(fmt.Sprintf("config: %v", err), 1)
		}
		f.merge(flagIsSet(cmd), fc)
	}

	opener, err := gowordle.ParseWord(f.opener)
	if err != nil {
		return ret, cli.Exit(fmt.Sprintf("opener: %v", err), 2)
	}
	dictionary, err := wordle.LoadDictionaryFile(f.words)
	if err != nil {
		return ret, cli.Exit(fmt.Sprintf("dictionary: %v", err), 1)
	}
	log.Debug().Str("words", f.words).Int("count", dictionary.Len()).Msg("dictionary loaded")

	return GlobalConfiguration{
		dictionary: dictionary,
		opener:     opener,
		scoring: wordle.Options{
			ExcludeAllCorrect: f.excludeAllCorrect,
			Workers:           f.workers,
		},
		progress: f.progress,
	}, nil
}

func (c GlobalConfiguration) progressBar(n int, description string) *progressbar.ProgressBar {
	if !c.progress {
		return nil
	}
	return progressbar.Default(int64(n), description)
}
