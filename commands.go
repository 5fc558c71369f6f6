// commands.go
//
// Root command and the bootstrap shared by every subcommand:
//   - config from .env + environment (internal/config), then flag overrides.
//   - zerolog console logger on stderr at the configured level.
//   - word list and frequency table, loaded once per invocation.

package main

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordlebot/internal/config"
	"github.com/robalobadob/wordlebot/internal/solver"
	"github.com/robalobadob/wordlebot/internal/words"
)

// app is the state resolved before any subcommand runs.
type app struct {
	cfg   config.Config
	words []string
	freq  solver.FrequencyTable

	// flag overrides
	wordsFile string
	freqFile  string
	logLevel  string
	openers   string
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "wordlebot",
		Short:        "Constraint-propagation Wordle solver",
		Long:         "wordlebot proposes guesses, narrows the candidate list from tile feedback\nand serves the same solver over HTTP.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.bootstrap(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.wordsFile, "words", "", "word list file (default: WORDS_FILE or embedded list)")
	pf.StringVar(&a.freqFile, "freq", "", "YAML letter frequency table (default: FREQ_TABLE_FILE or built-in)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level (default: LOG_LEVEL or info)")
	pf.StringVar(&a.openers, "openers", "", "comma separated opening words (default: OPENING_WORDS)")

	root.AddCommand(
		newServeCmd(a),
		newSolveCmd(a),
		newPlayCmd(a),
		newTokenCmd(a),
	)
	return root
}

func (a *app) bootstrap(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		if cfg.LogLevel, err = zerolog.ParseLevel(a.logLevel); err != nil {
			return fmt.Errorf("--log-level: %w", err)
		}
	}
	if a.wordsFile != "" {
		cfg.WordsFile = a.wordsFile
	}
	if a.freqFile != "" {
		cfg.FreqTableFile = a.freqFile
	}
	if a.openers != "" {
		if cfg.Openers, err = config.ParseOpeners(a.openers); err != nil {
			return fmt.Errorf("--openers: %w", err)
		}
	}

	zerolog.SetGlobalLevel(cfg.LogLevel)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	if a.words, err = words.Load(cfg.WordsFile); err != nil {
		return err
	}
	if a.freq, err = cfg.FrequencyTable(); err != nil {
		return err
	}
	a.cfg = cfg
	log.Debug().Int("words", len(a.words)).Strs("openers", cfg.Openers).Msg("bootstrap")
	return nil
}

func (a *app) newSession() (*solver.Session, error) {
	return solver.NewSession(a.words, a.freq, a.cfg.Openers, solver.WithLogger(log.Logger))
}
