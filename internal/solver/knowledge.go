// internal/solver/knowledge.go
//
// Knowledge accumulates board feedback across rounds.
//
// Model:
//   - pinned: the letter known at each position (0 = unknown). Never cleared.
//   - letters: one LetterRecord per letter seen, keyed by the letter itself.
//     A record carries a lower bound on occurrences (Min), the positions the
//     letter cannot occupy (Banned) and whether the count is exact (Capped).
//
// A letter with Capped && Min == 0 is absent. A letter with Min > 0 is
// present. An Absent tile for a letter that is otherwise known to be in the
// word only bans that position ("no further copies", not "no copies").
//
// Feedback merges monotonically: a later Present/Correct for a letter that
// an earlier round reported absent lifts the absence.

package solver

import (
	"fmt"
	"sort"
)

// PositionSet is a bitmask of board positions.
type PositionSet uint8

// Has reports whether position i is in the set.
func (p PositionSet) Has(i int) bool { return p&(1<<uint(i)) != 0 }

// With returns the set plus position i.
func (p PositionSet) With(i int) PositionSet { return p | 1<<uint(i) }

// Without returns the set minus position i.
func (p PositionSet) Without(i int) PositionSet { return p &^ (1 << uint(i)) }

// Positions lists the members in ascending order.
func (p PositionSet) Positions() []int {
	var out []int
	for i := 0; i < WordLength; i++ {
		if p.Has(i) {
			out = append(out, i)
		}
	}
	return out
}

// LetterRecord is everything known about one letter.
type LetterRecord struct {
	Min    int         // lower bound on occurrences
	Banned PositionSet // positions the letter does not occupy
	Capped bool        // the word has no occurrences beyond Min
}

// Knowledge is the accumulated state of one solving session.
type Knowledge struct {
	pinned  [WordLength]byte
	letters map[byte]LetterRecord
}

// NewKnowledge returns an empty Knowledge.
func NewKnowledge() *Knowledge {
	return &Knowledge{letters: make(map[byte]LetterRecord)}
}

// Clone returns a deep copy.
func (k *Knowledge) Clone() *Knowledge {
	c := &Knowledge{pinned: k.pinned, letters: make(map[byte]LetterRecord, len(k.letters))}
	for l, rec := range k.letters {
		c.letters[l] = rec
	}
	return c
}

// RecordFeedback merges the feedback for one tile.
//
// Correct pins the letter at position and clears that position from the
// letter's banned set; pinning a different letter at an already pinned
// position returns ErrConflictingFeedback and changes nothing.
// Present bans the position and marks the letter as in the word.
// Absent marks the letter absent unless it is already known to be in the
// word, in which case only the position is banned.
func (k *Knowledge) RecordFeedback(position int, letter byte, fb LetterFeedback) error {
	if position < 0 || position >= WordLength {
		return fmt.Errorf("%w: position %d out of range", ErrMalformedFeedback, position)
	}
	if !isLetter(letter) {
		return fmt.Errorf("%w: letter %q", ErrMalformedFeedback, letter)
	}

	rec := k.letters[letter]
	switch fb {
	case Correct:
		if p := k.pinned[position]; p != 0 && p != letter {
			return fmt.Errorf("%w: position %d is %q, reported %q", ErrConflictingFeedback, position, p, letter)
		}
		k.pinned[position] = letter
		rec.Banned = rec.Banned.Without(position)
		rec = lift(rec)
	case Present:
		rec.Banned = rec.Banned.With(position)
		rec = lift(rec)
	case Absent:
		if k.known(letter) {
			if k.pinned[position] != letter {
				rec.Banned = rec.Banned.With(position)
			}
		} else {
			rec.Min = 0
			rec.Capped = true
		}
	default:
		return fmt.Errorf("%w: %v", ErrMalformedFeedback, fb)
	}
	k.letters[letter] = rec
	return nil
}

// lift marks a letter as occurring at least once, superseding an earlier
// blanket absence.
func lift(rec LetterRecord) LetterRecord {
	if rec.Capped && rec.Min == 0 {
		rec.Capped = false
	}
	if rec.Min < 1 {
		rec.Min = 1
	}
	return rec
}

// RecordRound merges a whole guess row. Tiles are applied in position
// order, then per-letter counts of the row refine the records: the number
// of Correct/Present copies of a letter is a lower bound, and an Absent
// copy alongside them makes that number exact. On error the receiver is
// left untouched.
func (k *Knowledge) RecordRound(r Round) error {
	next := k.Clone()
	for i, t := range r {
		if err := next.RecordFeedback(i, t.Letter, t.Feedback); err != nil {
			return err
		}
	}

	hits := make(map[byte]int, WordLength)
	for _, t := range r {
		if t.Feedback != Absent {
			hits[t.Letter]++
		}
	}
	for i, t := range r {
		n := hits[t.Letter]
		if t.Feedback != Absent || n == 0 {
			continue
		}
		rec := next.letters[t.Letter]
		if next.pinned[i] != t.Letter {
			rec.Banned = rec.Banned.With(i)
		}
		rec.Capped = true
		next.letters[t.Letter] = rec
	}
	for l, n := range hits {
		rec := next.letters[l]
		if n > rec.Min {
			rec.Min = n
		}
		next.letters[l] = rec
	}

	*k = *next
	return nil
}

// Pinned returns the letter known at position, if any.
func (k *Knowledge) Pinned(position int) (byte, bool) {
	if position < 0 || position >= WordLength || k.pinned[position] == 0 {
		return 0, false
	}
	return k.pinned[position], true
}

// Record returns the record for letter with Min raised to the number of
// positions where the letter is pinned.
func (k *Knowledge) Record(letter byte) (LetterRecord, bool) {
	rec, ok := k.letters[letter]
	if !ok {
		return LetterRecord{}, false
	}
	if n := k.pinnedCount(letter); n > rec.Min {
		rec.Min = n
	}
	return rec, true
}

// Letters returns every letter with a record, in alphabetical order.
func (k *Knowledge) Letters() []byte {
	out := make([]byte, 0, len(k.letters))
	for l := range k.letters {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// PresentLetters lists letters known to be in the word.
func (k *Knowledge) PresentLetters() []byte {
	var out []byte
	for _, l := range k.Letters() {
		if k.known(l) {
			out = append(out, l)
		}
	}
	return out
}

// AbsentLetters lists letters known not to be in the word at all.
func (k *Knowledge) AbsentLetters() []byte {
	var out []byte
	for _, l := range k.Letters() {
		if rec := k.letters[l]; rec.Capped && !k.known(l) {
			out = append(out, l)
		}
	}
	return out
}

// Pattern renders the pinned letters with '_' for unknown positions.
func (k *Knowledge) Pattern() string {
	b := make([]byte, WordLength)
	for i, p := range k.pinned {
		if p == 0 {
			b[i] = '_'
		} else {
			b[i] = p
		}
	}
	return string(b)
}

func (k *Knowledge) known(letter byte) bool {
	return k.letters[letter].Min > 0 || k.pinnedCount(letter) > 0
}

func (k *Knowledge) pinnedCount(letter byte) int {
	n := 0
	for _, p := range k.pinned {
		if p == letter {
			n++
		}
	}
	return n
}
