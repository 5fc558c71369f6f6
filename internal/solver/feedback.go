// internal/solver/feedback.go
//
// Feedback types shared by the solver and its collaborators.
// Defines:
//   - LetterFeedback: per-tile classification (correct/present/absent).
//   - Tile / Round: one row of board feedback in position order.
//   - ParseFeedback / ParsePattern: conversions from board states and
//     compact pattern strings ("gybbg", "+~--+").

package solver

import (
	"fmt"
	"strings"
)

// WordLength is the fixed number of letters in every word.
const WordLength = 5

// LetterFeedback is the evaluation of one letter of a guess.
type LetterFeedback uint8

const (
	Absent LetterFeedback = iota
	Present
	Correct
)

// String returns the board tile state name.
func (f LetterFeedback) String() string {
	switch f {
	case Correct:
		return "correct"
	case Present:
		return "present"
	case Absent:
		return "absent"
	}
	return fmt.Sprintf("LetterFeedback(%d)", uint8(f))
}

// MarshalText encodes the feedback as its tile state name.
func (f LetterFeedback) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText accepts anything ParseFeedback accepts.
func (f *LetterFeedback) UnmarshalText(b []byte) error {
	v, err := ParseFeedback(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// ParseFeedback maps a tile state to LetterFeedback.
// Board states (correct/present/absent) and game marks (hit/present/miss)
// are both accepted, case-insensitively.
func ParseFeedback(s string) (LetterFeedback, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "correct", "hit":
		return Correct, nil
	case "present":
		return Present, nil
	case "absent", "miss":
		return Absent, nil
	}
	return Absent, fmt.Errorf("%w: unknown tile state %q", ErrMalformedFeedback, s)
}

// Tile is the feedback for one board cell.
type Tile struct {
	Letter   byte
	Feedback LetterFeedback
}

// Round is one guess row; index i is board position i.
type Round [WordLength]Tile

// Word returns the guessed word spelled by the round.
func (r Round) Word() string {
	var b [WordLength]byte
	for i, t := range r {
		b[i] = t.Letter
	}
	return string(b[:])
}

// Solved reports whether every tile is Correct.
func (r Round) Solved() bool {
	for _, t := range r {
		if t.Feedback != Correct {
			return false
		}
	}
	return true
}

// Pattern renders the round as g/y/b symbols.
func (r Round) Pattern() string {
	var b strings.Builder
	for _, t := range r {
		switch t.Feedback {
		case Correct:
			b.WriteByte('g')
		case Present:
			b.WriteByte('y')
		default:
			b.WriteByte('b')
		}
	}
	return b.String()
}

// ParsePattern builds a Round from a guess and a five-symbol pattern.
//
//	g or + : correct
//	y or ~ : present
//	b, - or . : absent
func ParsePattern(guess, pattern string) (Round, error) {
	var r Round
	guess = strings.ToLower(strings.TrimSpace(guess))
	pattern = strings.ToLower(strings.TrimSpace(pattern))
	if !IsWord(guess) {
		return r, fmt.Errorf("%w: guess %q is not a %d-letter word", ErrMalformedFeedback, guess, WordLength)
	}
	if len(pattern) != WordLength {
		return r, fmt.Errorf("%w: pattern %q must have %d symbols", ErrMalformedFeedback, pattern, WordLength)
	}
	for i := 0; i < WordLength; i++ {
		r[i].Letter = guess[i]
		switch pattern[i] {
		case 'g', '+':
			r[i].Feedback = Correct
		case 'y', '~':
			r[i].Feedback = Present
		case 'b', '-', '.':
			r[i].Feedback = Absent
		default:
			return r, fmt.Errorf("%w: pattern symbol %q at %d", ErrMalformedFeedback, pattern[i], i)
		}
	}
	return r, nil
}

// IsWord reports whether s is exactly WordLength lowercase ASCII letters.
func IsWord(s string) bool {
	if len(s) != WordLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isLetter(s[i]) {
			return false
		}
	}
	return true
}

func isLetter(c byte) bool { return c >= 'a' && c <= 'z' }
