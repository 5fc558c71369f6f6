// internal/solver/selector.go
//
// Guess selection by letter frequency.
//
// A word scores the sum of its letters' weights; the second and later
// copies of a letter within the same word count at half weight. The
// highest-scoring candidate wins and ties go to the later candidate.

package solver

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// FrequencyTable maps letters to positive weights. The zero value weighs
// every letter at 0; build tables with NewFrequencyTable or
// DefaultFrequencyTable.
type FrequencyTable struct {
	weights [26]float64
}

// defaultWeights is English letter frequency in percent.
var defaultWeights = map[string]float64{
	"e": 56.88, "a": 43.31, "r": 38.64, "i": 38.45, "o": 36.51, "t": 35.43,
	"n": 33.92, "s": 29.23, "l": 27.98, "c": 23.13, "u": 18.51, "d": 17.25,
	"p": 16.14, "m": 15.36, "h": 15.31, "g": 12.59, "b": 10.56, "f": 9.24,
	"y": 9.06, "w": 6.57, "k": 5.61, "v": 5.13, "x": 1.48, "z": 1.39,
	"j": 1.01, "q": 1.00,
}

// DefaultFrequencyTable returns the built-in English table.
func DefaultFrequencyTable() FrequencyTable {
	t, _ := NewFrequencyTable(defaultWeights)
	return t
}

// NewFrequencyTable validates and freezes a letter→weight mapping.
// Keys must be single letters a–z (case-insensitive) and weights must be
// positive. Letters not listed weigh 0.
func NewFrequencyTable(weights map[string]float64) (FrequencyTable, error) {
	var t FrequencyTable
	if len(weights) == 0 {
		return t, fmt.Errorf("%w: no weights", ErrInvalidFrequencyTable)
	}
	seen := make(map[byte]bool, len(weights))
	for k, w := range weights {
		key := strings.ToLower(strings.TrimSpace(k))
		if len(key) != 1 || !isLetter(key[0]) {
			return FrequencyTable{}, fmt.Errorf("%w: key %q is not a letter", ErrInvalidFrequencyTable, k)
		}
		if seen[key[0]] {
			return FrequencyTable{}, fmt.Errorf("%w: letter %q listed twice", ErrInvalidFrequencyTable, key)
		}
		if !(w > 0) || math.IsInf(w, 0) {
			return FrequencyTable{}, fmt.Errorf("%w: weight for %q must be positive, got %v", ErrInvalidFrequencyTable, key, w)
		}
		seen[key[0]] = true
		t.weights[key[0]-'a'] = w
	}
	return t, nil
}

// Weight returns the weight of letter, or 0 when unknown.
func (t FrequencyTable) Weight(letter byte) float64 {
	if !isLetter(letter) {
		return 0
	}
	return t.weights[letter-'a']
}

// Weights returns a copy of the table keyed by letter; unset letters are omitted.
func (t FrequencyTable) Weights() map[string]float64 {
	out := make(map[string]float64, 26)
	for i, w := range t.weights {
		if w > 0 {
			out[string(rune('a'+i))] = w
		}
	}
	return out
}

// Score rates a word against the table.
func Score(word string, t FrequencyTable) float64 {
	var seen [26]bool
	score := 0.0
	for i := 0; i < len(word); i++ {
		c := word[i]
		w := t.Weight(c)
		if !isLetter(c) {
			continue
		}
		if seen[c-'a'] {
			score += w / 2
		} else {
			seen[c-'a'] = true
			score += w
		}
	}
	return score
}

// Select returns the best-scoring candidate. Among equal scores the one
// appearing last in candidates wins.
func Select(candidates []string, t FrequencyTable) (string, error) {
	if len(candidates) == 0 {
		return "", ErrEmptyCandidateSet
	}
	best, bestScore := 0, math.Inf(-1)
	for i, w := range candidates {
		if s := Score(w, t); s >= bestScore {
			best, bestScore = i, s
		}
	}
	return candidates[best], nil
}

// Ranked is a candidate with its score.
type Ranked struct {
	Word  string  `json:"word"`
	Score float64 `json:"score"`
}

// Rank returns up to n candidates ordered best first, using the same
// tie-break as Select.
func Rank(candidates []string, t FrequencyTable, n int) []Ranked {
	out := make([]Ranked, len(candidates))
	for i, w := range candidates {
		out[len(candidates)-1-i] = Ranked{Word: w, Score: Score(w, t)}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if n >= 0 && n < len(out) {
		out = out[:n]
	}
	return out
}
