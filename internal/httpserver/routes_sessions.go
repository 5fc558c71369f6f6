// internal/httpserver/routes_sessions.go
//
// Session routes: a remote caller plays the board, this API plays the solver.
//   - POST   /sessions               → start a session, returns the opening guess
//   - GET    /sessions/{id}          → state, rounds, candidates left, suggestions
//   - POST   /sessions/{id}/next     → the guess to play now (409 once finished)
//   - POST   /sessions/{id}/feedback → submit one row of tile feedback
//   - DELETE /sessions/{id}          → forget a session
//
// Feedback is accepted either as five tiles
//   {"tiles":[{"letter":"a","feedback":"correct"}, ...]}
// or as a guess plus a g/y/b pattern
//   {"guess":"apple","pattern":"gbbyg"}.

package httpserver

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordlebot/internal/history"
	"github.com/robalobadob/wordlebot/internal/solver"
	"github.com/robalobadob/wordlebot/internal/store"
)

func (s *Server) mountSessions(r chi.Router) {
	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", s.handleNewSession)
		r.Get("/{id}", s.handleGetSession)
		r.Post("/{id}/next", s.handleNext)
		r.Post("/{id}/feedback", s.handleFeedback)
		r.Delete("/{id}", s.handleDeleteSession)
	})
}

type newSessionReq struct {
	Openers []string `json:"openers" validate:"omitempty,max=10,dive,len=5,alpha,lowercase"`
}

type sessionRes struct {
	SessionID  string          `json:"sessionId"`
	State      solver.State    `json:"state"`
	Rounds     int             `json:"rounds"`
	Candidates int             `json:"candidates"`
	Guesses    []string        `json:"guesses"`
	Pattern    string          `json:"pattern"` // pinned letters, '_' unknown
	Guess      string          `json:"guess,omitempty"`
	Top        []solver.Ranked `json:"top,omitempty"`
	Outcome    *solver.Outcome `json:"outcome,omitempty"`
}

func (s *Server) newSession(openers []string) (*solver.Session, error) {
	if len(openers) == 0 {
		openers = s.opts.Openers
	}
	return solver.NewSession(s.opts.Words, s.opts.Freq, openers, solver.WithLogger(log.Logger))
}

func (s *Server) handleNewSession(w http.ResponseWriter, r *http.Request) {
	var req newSessionReq
	if err := s.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request")
		return
	}
	sess, err := s.newSession(req.Openers)
	if err != nil {
		log.Error().Err(err).Msg("new session")
		writeError(w, http.StatusInternalServerError, "session_failed")
		return
	}
	e, err := s.store.Create(r.Context(), sess)
	if err != nil {
		log.Error().Err(err).Msg("store session")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	sessionsStarted.Inc()

	var res sessionRes
	_ = e.Do(func(sess *solver.Session) error {
		guess, _ := sess.NextGuess()
		res = view(e.ID, sess)
		res.Guess = guess
		return nil
	})
	writeJSON(w, http.StatusCreated, res)
}

func (s *Server) entry(w http.ResponseWriter, r *http.Request) (*store.Entry, bool) {
	e, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found")
		return nil, false
	}
	return e, true
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	e, ok := s.entry(w, r)
	if !ok {
		return
	}
	var res sessionRes
	_ = e.Do(func(sess *solver.Session) error {
		res = view(e.ID, sess)
		res.Top = sess.Suggestions(5)
		return nil
	})
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleNext(w http.ResponseWriter, r *http.Request) {
	e, ok := s.entry(w, r)
	if !ok {
		return
	}
	var (
		guess string
		state solver.State
	)
	_ = e.Do(func(sess *solver.Session) error {
		guess, ok = sess.NextGuess()
		state = sess.State()
		return nil
	})
	if !ok {
		writeJSON(w, http.StatusConflict, map[string]any{"error": "session_over", "state": state})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"guess": guess})
}

type tileReq struct {
	Letter   string                 `json:"letter" validate:"required,len=1,alpha,lowercase"`
	Feedback *solver.LetterFeedback `json:"feedback" validate:"required"`
}

type feedbackReq struct {
	Tiles   []tileReq `json:"tiles" validate:"omitempty,len=5,dive"`
	Guess   string    `json:"guess" validate:"omitempty,len=5,alpha"`
	Pattern string    `json:"pattern" validate:"omitempty,len=5"`
}

func (req feedbackReq) round() (solver.Round, error) {
	if len(req.Tiles) == 0 {
		if req.Guess == "" {
			return solver.Round{}, errors.New("tiles or guess required")
		}
		return solver.ParsePattern(req.Guess, req.Pattern)
	}
	var round solver.Round
	for i, t := range req.Tiles {
		round[i] = solver.Tile{Letter: t.Letter[0], Feedback: *t.Feedback}
	}
	return round, nil
}

func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	e, ok := s.entry(w, r)
	if !ok {
		return
	}
	var req feedbackReq
	if err := s.decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request")
		return
	}
	round, err := req.round()
	if err != nil {
		writeError(w, http.StatusBadRequest, "bad_feedback")
		return
	}

	var (
		res sessionRes
		run *history.Run
	)
	err = e.Do(func(sess *solver.Session) error {
		out, err := sess.SubmitFeedback(round)
		if err != nil {
			return err
		}
		candidatesLeft.Observe(float64(sess.CandidateCount()))
		var next string
		if out == solver.OutcomeContinue {
			next, _ = sess.NextGuess()
		} else {
			sessionOutcomes.WithLabelValues("session", out.String()).Inc()
			run = &history.Run{
				ID:      e.ID,
				Source:  "session",
				Guesses: sess.Guesses(),
				Outcome: out.String(),
				Rounds:  sess.Rounds(),
			}
			if out == solver.OutcomeSolved {
				run.Answer = round.Word()
			}
		}
		res = view(e.ID, sess)
		res.Guess = next
		res.Outcome = &out
		return nil
	})
	switch {
	case errors.Is(err, solver.ErrSessionOver):
		writeError(w, http.StatusConflict, "session_over")
		return
	case errors.Is(err, solver.ErrConflictingFeedback):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": "conflicting_feedback", "detail": err.Error()})
		return
	case err != nil:
		writeError(w, http.StatusBadRequest, "bad_feedback")
		return
	}

	if run != nil {
		s.record(r, *run)
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	_ = s.store.Delete(r.Context(), chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func view(id string, sess *solver.Session) sessionRes {
	k := sess.Knowledge()
	return sessionRes{
		SessionID:  id,
		State:      sess.State(),
		Rounds:     sess.Rounds(),
		Candidates: sess.CandidateCount(),
		Guesses:    sess.Guesses(),
		Pattern:    k.Pattern(),
	}
}

// record stores a finished run; failures are logged, never surfaced.
func (s *Server) record(r *http.Request, run history.Run) {
	if s.history == nil {
		return
	}
	if _, err := s.history.Insert(r.Context(), run); err != nil {
		log.Warn().Err(err).Str("run", run.ID).Msg("record run")
	}
}
