package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordlebot/internal/daily"
	"github.com/robalobadob/wordlebot/internal/game"
	"github.com/robalobadob/wordlebot/internal/history"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		target string
		useDay bool
		date   string
		dbPath string
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve a known answer offline and print the transcript",
		Example: `  wordlebot solve --target slate
  wordlebot solve --daily --date 2026-10-19 --db runs.db`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			answer := strings.ToLower(strings.TrimSpace(target))
			switch {
			case answer != "" && useDay:
				return errors.New("--target and --daily are mutually exclusive")
			case answer == "" && !useDay:
				return errors.New("one of --target or --daily is required")
			case useDay:
				day := time.Now()
				if date != "" {
					var err error
					if day, err = time.Parse(time.DateOnly, date); err != nil {
						return fmt.Errorf("--date: %w", err)
					}
				}
				answer = daily.Target(day, a.cfg.DailySalt, a.words)
			}

			g, err := game.New(answer)
			if err != nil {
				return err
			}
			sess, err := a.newSession()
			if err != nil {
				return err
			}
			tr, err := game.Simulate(sess, g)
			if err != nil {
				return err
			}

			if dbPath == "" {
				dbPath = a.cfg.DBPath
			}
			if dbPath != "" {
				if err := recordRun(cmd, dbPath, tr); err != nil {
					log.Warn().Err(err).Msg("record run")
				}
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(tr)
			}
			printTranscript(cmd.OutOrStdout(), tr)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&target, "target", "", "answer to solve")
	f.BoolVar(&useDay, "daily", false, "solve the daily answer")
	f.StringVar(&date, "date", "", "day for --daily, YYYY-MM-DD (default: today)")
	f.StringVar(&dbPath, "db", "", "SQLite run history (default: DB_PATH)")
	f.BoolVar(&asJSON, "json", false, "print the transcript as JSON")
	return cmd
}

func recordRun(cmd *cobra.Command, path string, tr game.Transcript) error {
	hist, err := history.Open(path)
	if err != nil {
		return err
	}
	defer hist.Close()
	_, err = hist.Insert(cmd.Context(), history.Run{
		ID:      tr.GameID,
		Source:  "cli",
		Answer:  tr.Answer,
		Guesses: tr.Guesses,
		Outcome: tr.Outcome.String(),
		Rounds:  tr.Rounds,
	})
	return err
}

func printTranscript(w io.Writer, tr game.Transcript) {
	for i, guess := range tr.Guesses {
		fmt.Fprintf(w, "%d. %s  %s  %4d left\n", i+1, guess, tr.Patterns[i], tr.Left[i])
	}
	fmt.Fprintf(w, "%s in %d (answer %s)\n", tr.Outcome, tr.Rounds, tr.Answer)
}
