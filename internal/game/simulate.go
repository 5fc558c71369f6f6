package game

import (
	"fmt"

	"github.com/robalobadob/wordlebot/internal/solver"
)

// Simulate plays s against g until the session reaches a terminal outcome.
// The game acts as both guess transmitter and board reader.
func Simulate(s *solver.Session, g *Game) (Transcript, error) {
	tr := Transcript{GameID: g.ID, Answer: g.Answer}
	for {
		guess, ok := s.NextGuess()
		if !ok {
			break
		}
		row, _, err := g.ApplyGuess(guess)
		if err != nil {
			return tr, fmt.Errorf("apply guess %q: %w", guess, err)
		}
		out, err := s.SubmitFeedback(row)
		if err != nil {
			return tr, fmt.Errorf("submit round %d: %w", s.Rounds()+1, err)
		}
		tr.Guesses = append(tr.Guesses, guess)
		tr.Patterns = append(tr.Patterns, row.Pattern())
		tr.Left = append(tr.Left, s.CandidateCount())
		tr.Outcome = out
		if out != solver.OutcomeContinue {
			break
		}
	}
	tr.Rounds = s.Rounds()
	return tr, nil
}
