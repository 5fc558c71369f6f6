package main

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordlebot/internal/history"
	"github.com/robalobadob/wordlebot/internal/httpserver"
	"github.com/robalobadob/wordlebot/internal/store"
)

func newServeCmd(a *app) *cobra.Command {
	var port, dbPath string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the solver over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if port == "" {
				port = a.cfg.Port
			}
			if dbPath == "" {
				dbPath = a.cfg.DBPath
			}

			var hist *history.Store
			if dbPath != "" {
				var err error
				if hist, err = history.Open(dbPath); err != nil {
					return err
				}
				defer hist.Close()
				log.Info().Str("db", dbPath).Msg("run history enabled")
			}

			srv := httpserver.New(store.NewMemoryStore(), hist, httpserver.Options{
				Words:     a.words,
				Freq:      a.freq,
				Openers:   a.cfg.Openers,
				Secret:    a.cfg.APISecret,
				DailySalt: a.cfg.DailySalt,
			})
			log.Info().
				Str("port", port).
				Int("words", len(a.words)).
				Bool("auth", a.cfg.APISecret != "").
				Msg("starting wordlebot")
			return srv.Start(":" + port)
		},
	}
	cmd.Flags().StringVar(&port, "port", "", "listen port (default: PORT or 5175)")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite run history (default: DB_PATH, empty disables)")
	return cmd
}
