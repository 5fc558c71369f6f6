// internal/game/types.go
//
// Core type definitions for the simulated board.
// Defines:
//   - Game: a hidden answer plus the guesses scored against it.
//   - Transcript: the record of one simulated solve.

package game

import "github.com/robalobadob/wordlebot/internal/solver"

// Game holds the state of a single simulated puzzle.
type Game struct {
	ID       string   // Unique game identifier (uuid).
	Answer   string   // The solution word (always lowercase).
	Rows     int      // Maximum number of guesses allowed (typically 6).
	Cols     int      // Number of letters per word (always 5).
	Guesses  []string // Guesses scored so far.
	Finished bool     // True once the game is over (won or lost).
	Won      bool     // True if the game was finished with a win.
}

// Transcript is the outcome of driving a solver session against a Game.
type Transcript struct {
	GameID   string         `json:"gameId"`
	Answer   string         `json:"answer"`
	Guesses  []string       `json:"guesses"`
	Patterns []string       `json:"patterns"` // g/y/b per guess
	Left     []int          `json:"left"`     // candidates remaining after each round
	Outcome  solver.Outcome `json:"outcome"`
	Rounds   int            `json:"rounds"`
}
