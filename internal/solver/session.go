// internal/solver/session.go
//
// Session drives one puzzle from the opening guess to a terminal outcome.
//
// State machine:
//
//	AwaitingGuess --NextGuess--> AwaitingFeedback --SubmitFeedback--> AwaitingGuess
//	                                                  |-> Solved        (all tiles correct)
//	                                                  |-> Contradiction (no candidates left)
//	                                                  |-> Exhausted     (MaxRounds used)
//
// Each round folds the feedback into Knowledge, narrows the candidate list
// (a new slice every time) and selects the next guess. A Session is not
// safe for concurrent use.

package solver

import (
	"fmt"

	"github.com/rs/zerolog"
)

// MaxRounds is the number of guesses allowed per puzzle.
const MaxRounds = 6

// DefaultOpeners are high-coverage starting words; the first one is used.
var DefaultOpeners = []string{"arise", "adieu", "audio", "trace", "crane"}

// State is a Session's position in its lifecycle.
type State uint8

const (
	StateAwaitingGuess State = iota
	StateAwaitingFeedback
	StateSolved
	StateExhausted
	StateContradiction
)

func (s State) String() string {
	switch s {
	case StateAwaitingGuess:
		return "awaiting_guess"
	case StateAwaitingFeedback:
		return "awaiting_feedback"
	case StateSolved:
		return "solved"
	case StateExhausted:
		return "exhausted"
	case StateContradiction:
		return "contradiction"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// MarshalText encodes the state name.
func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Terminal reports whether no further rounds can be played.
func (s State) Terminal() bool {
	return s == StateSolved || s == StateExhausted || s == StateContradiction
}

// Outcome is the result of submitting one round of feedback.
type Outcome uint8

const (
	OutcomeContinue Outcome = iota
	OutcomeSolved
	OutcomeExhausted
	OutcomeContradiction
)

func (o Outcome) String() string {
	switch o {
	case OutcomeContinue:
		return "continue"
	case OutcomeSolved:
		return "solved"
	case OutcomeExhausted:
		return "exhausted"
	case OutcomeContradiction:
		return "contradiction"
	}
	return fmt.Sprintf("Outcome(%d)", uint8(o))
}

// MarshalText encodes the outcome name.
func (o Outcome) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for per-round debug events.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// Session is one attempt at solving a single puzzle.
type Session struct {
	freq       FrequencyTable
	knowledge  *Knowledge
	candidates []string
	state      State
	pending    string
	guesses    []string
	rounds     int
	log        zerolog.Logger
}

// NewSession starts a session over words. The opening guess is the first
// of openers; with no openers the best-scoring word is used. words is
// copied and never modified.
func NewSession(words []string, freq FrequencyTable, openers []string, opts ...Option) (*Session, error) {
	if err := ValidateWords(words); err != nil {
		return nil, err
	}
	s := &Session{
		freq:       freq,
		knowledge:  NewKnowledge(),
		candidates: append([]string(nil), words...),
		state:      StateAwaitingGuess,
		log:        zerolog.Nop(),
	}
	for _, o := range opts {
		o(s)
	}

	if len(openers) > 0 {
		if !IsWord(openers[0]) {
			return nil, fmt.Errorf("%w: opening word %q", ErrMalformedWordSource, openers[0])
		}
		s.pending = openers[0]
	} else {
		g, err := Select(s.candidates, s.freq)
		if err != nil {
			return nil, err
		}
		s.pending = g
	}
	return s, nil
}

// NextGuess returns the word to play this round. It returns false once the
// session is solved, exhausted or contradictory. Calling it again before
// feedback is submitted returns the same word.
func (s *Session) NextGuess() (string, bool) {
	switch s.state {
	case StateAwaitingGuess:
		s.state = StateAwaitingFeedback
		s.guesses = append(s.guesses, s.pending)
		return s.pending, true
	case StateAwaitingFeedback:
		return s.pending, true
	}
	return "", false
}

// SubmitFeedback folds one round of board feedback into the session.
//
// Feedback that conflicts with an earlier round returns an error wrapping
// ErrConflictingFeedback and leaves the session as it was. After a terminal
// outcome every call returns ErrSessionOver.
func (s *Session) SubmitFeedback(r Round) (Outcome, error) {
	if s.state.Terminal() {
		return outcomeOf(s.state), ErrSessionOver
	}
	if err := s.knowledge.RecordRound(r); err != nil {
		return OutcomeContinue, err
	}
	switch w := r.Word(); {
	case s.state == StateAwaitingGuess:
		// guess was sent without asking the session for it
		s.guesses = append(s.guesses, w)
	case s.guesses[len(s.guesses)-1] != w:
		// the board was played with a different word
		s.guesses[len(s.guesses)-1] = w
	}
	s.rounds++
	before := len(s.candidates)
	s.candidates = Filter(s.candidates, s.knowledge)

	switch {
	case r.Solved():
		s.state = StateSolved
	case len(s.candidates) == 0:
		s.state = StateContradiction
	case s.rounds >= MaxRounds:
		s.state = StateExhausted
	default:
		// Select cannot fail: candidates is non-empty here.
		s.pending, _ = Select(s.candidates, s.freq)
		s.state = StateAwaitingGuess
	}
	if s.state.Terminal() {
		s.pending = ""
	}

	out := outcomeOf(s.state)
	s.log.Debug().
		Int("round", s.rounds).
		Str("guess", r.Word()).
		Str("pattern", r.Pattern()).
		Int("before", before).
		Int("after", len(s.candidates)).
		Str("outcome", out.String()).
		Msg("round recorded")
	return out, nil
}

func outcomeOf(st State) Outcome {
	switch st {
	case StateSolved:
		return OutcomeSolved
	case StateExhausted:
		return OutcomeExhausted
	case StateContradiction:
		return OutcomeContradiction
	}
	return OutcomeContinue
}

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// Rounds returns how many rounds of feedback have been recorded.
func (s *Session) Rounds() int { return s.rounds }

// Err reports ErrEmptyCandidateSet once the session hit a contradiction.
func (s *Session) Err() error {
	if s.state == StateContradiction {
		return ErrEmptyCandidateSet
	}
	return nil
}

// Candidates returns a copy of the remaining candidates.
func (s *Session) Candidates() []string { return append([]string(nil), s.candidates...) }

// CandidateCount returns the number of remaining candidates.
func (s *Session) CandidateCount() int { return len(s.candidates) }

// Guesses returns the words played so far.
func (s *Session) Guesses() []string { return append([]string(nil), s.guesses...) }

// Knowledge returns a copy of the accumulated knowledge.
func (s *Session) Knowledge() *Knowledge { return s.knowledge.Clone() }

// Suggestions ranks the remaining candidates, best first.
func (s *Session) Suggestions(n int) []Ranked { return Rank(s.candidates, s.freq, n) }
