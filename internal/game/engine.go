// internal/game/engine.go
//
// Simulated board for offline solving.
// Responsibilities:
//   - Create games with fixed dimensions (6x5) around a known answer.
//   - Score guesses using the classic two-pass Wordle algorithm, producing
//     the same solver.Round a live board reader would.
//   - Track state transitions: playing → won/lost.
//
// Guesses are not checked against a dictionary: the solver may open with a
// word outside its candidate list.
package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/robalobadob/wordlebot/internal/solver"
)

const (
	defaultRows = solver.MaxRounds
	defaultCols = solver.WordLength
)

var (
	ErrFinished     = errors.New("game finished")
	ErrInvalidGuess = errors.New("invalid guess")
)

// New constructs a game around answer.
func New(answer string) (*Game, error) {
	ans := strings.ToLower(strings.TrimSpace(answer))
	if !solver.IsWord(ans) {
		return nil, fmt.Errorf("%w: answer %q", ErrInvalidGuess, answer)
	}
	return &Game{
		ID:      uuid.NewString(),
		Answer:  ans,
		Rows:    defaultRows,
		Cols:    defaultCols,
		Guesses: []string{},
	}, nil
}

// ApplyGuess scores a guess, mutating the game state.
// Returns: the scored row, the new state ("playing"/"won"/"lost"), or an error.
//
// State transitions:
//   - If all tiles are Correct → Finished = true, Won = true.
//   - Else if the number of guesses reaches g.Rows → Finished = true (loss).
func (g *Game) ApplyGuess(guess string) (solver.Round, string, error) {
	if g.Finished {
		return solver.Round{}, g.State(), ErrFinished
	}
	guess = strings.ToLower(strings.TrimSpace(guess))
	if !solver.IsWord(guess) {
		return solver.Round{}, g.State(), fmt.Errorf("%w: %q", ErrInvalidGuess, guess)
	}

	row := Score(g.Answer, guess)
	g.Guesses = append(g.Guesses, guess)

	if row.Solved() {
		g.Finished, g.Won = true, true
	} else if len(g.Guesses) >= g.Rows {
		g.Finished = true
	}
	return row, g.State(), nil
}

// State reports a coarse string representation of the current game state.
func (g *Game) State() string {
	if g.Finished {
		if g.Won {
			return "won"
		}
		return "lost"
	}
	return "playing"
}

// Score implements the standard two-pass Wordle scoring.
//
// Pass 1:
//   - Mark exact matches Correct.
//   - Count remaining (non-matched) answer letters.
//
// Pass 2:
//   - For each other guess letter: if a count remains, mark Present and
//     decrement; otherwise Absent.
//
// Both words must be valid five-letter words.
func Score(answer, guess string) solver.Round {
	var row solver.Round
	var counts [26]int

	for i := 0; i < solver.WordLength; i++ {
		row[i].Letter = guess[i]
		if guess[i] == answer[i] {
			row[i].Feedback = solver.Correct
		} else {
			counts[answer[i]-'a']++
		}
	}

	for i := 0; i < solver.WordLength; i++ {
		if row[i].Feedback == solver.Correct {
			continue
		}
		j := guess[i] - 'a'
		if counts[j] > 0 {
			row[i].Feedback = solver.Present
			counts[j]--
		} else {
			row[i].Feedback = solver.Absent
		}
	}
	return row
}
