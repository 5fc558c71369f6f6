// internal/httpserver/routes_simulate.go
//
// Offline solves and their history.
//   - POST /simulate       → solve a known answer (default: today's daily answer)
//   - GET  /history        → recent runs, newest first (?limit=N, default 20)
//   - GET  /history/stats  → aggregate outcomes
//
// Simulations run against game.Game, which scores guesses exactly as a
// live board would. Finished runs are recorded when history is enabled.

package httpserver

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordlebot/internal/daily"
	"github.com/robalobadob/wordlebot/internal/game"
	"github.com/robalobadob/wordlebot/internal/history"
)

func (s *Server) mountSimulate(r chi.Router) {
	r.Post("/simulate", s.handleSimulate)
	r.Route("/history", func(r chi.Router) {
		r.Get("/", s.handleHistory)
		r.Get("/stats", s.handleHistoryStats)
	})
}

type simulateReq struct {
	Answer  string   `json:"answer" validate:"omitempty,len=5,alpha,lowercase"`
	Openers []string `json:"openers" validate:"omitempty,max=10,dive,len=5,alpha,lowercase"`
}

type simulateRes struct {
	game.Transcript
	Date  string `json:"date,omitempty"` // set when the daily answer was used
	RunID string `json:"runId,omitempty"`
}

func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	var req simulateReq
	if err := s.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request")
		return
	}

	var res simulateRes
	answer := req.Answer
	if answer == "" {
		now := s.now()
		answer = daily.Target(now, s.opts.DailySalt, s.opts.Words)
		res.Date = daily.DateKey(now)
	}

	g, err := game.New(answer)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_answer")
		return
	}
	sess, err := s.newSession(req.Openers)
	if err != nil {
		log.Error().Err(err).Msg("new session")
		writeError(w, http.StatusInternalServerError, "session_failed")
		return
	}
	tr, err := game.Simulate(sess, g)
	if err != nil {
		log.Error().Err(err).Str("answer", answer).Msg("simulate")
		writeError(w, http.StatusInternalServerError, "simulation_failed")
		return
	}
	sessionOutcomes.WithLabelValues("simulate", tr.Outcome.String()).Inc()

	res.Transcript = tr
	if s.history != nil {
		id, err := s.history.Insert(r.Context(), history.Run{
			ID:      tr.GameID,
			Source:  "simulate",
			Answer:  tr.Answer,
			Guesses: tr.Guesses,
			Outcome: tr.Outcome.String(),
			Rounds:  tr.Rounds,
		})
		if err != nil {
			log.Warn().Err(err).Msg("record simulation")
		} else {
			res.RunID = id
		}
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		writeError(w, http.StatusNotFound, "history_disabled")
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit > 200 {
		limit = 200
	}
	runs, err := s.history.Recent(r.Context(), limit)
	if err != nil {
		log.Error().Err(err).Msg("history")
		writeError(w, http.StatusInternalServerError, "history_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"runs": runs})
}

func (s *Server) handleHistoryStats(w http.ResponseWriter, r *http.Request) {
	if s.history == nil {
		writeError(w, http.StatusNotFound, "history_disabled")
		return
	}
	st, err := s.history.Stats(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("history stats")
		writeError(w, http.StatusInternalServerError, "history_failed")
		return
	}
	writeJSON(w, http.StatusOK, st)
}
