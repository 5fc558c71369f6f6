package solver

// constraint is the compiled form of a LetterRecord used while filtering.
type constraint struct {
	letter byte
	min    int
	banned PositionSet
	capped bool
}

type compiled struct {
	pinned      [WordLength]byte
	constraints []constraint
}

func compile(k *Knowledge) compiled {
	c := compiled{pinned: k.pinned}
	for _, l := range k.Letters() {
		rec, _ := k.Record(l)
		c.constraints = append(c.constraints, constraint{
			letter: l,
			min:    rec.Min,
			banned: rec.Banned,
			capped: rec.Capped,
		})
	}
	return c
}

func (c *compiled) match(w string) bool {
	if len(w) != WordLength {
		return false
	}
	var counts [26]int
	for i := 0; i < WordLength; i++ {
		ch := w[i]
		if !isLetter(ch) {
			return false
		}
		if p := c.pinned[i]; p != 0 && p != ch {
			return false
		}
		counts[ch-'a']++
	}
	for _, cs := range c.constraints {
		n := counts[cs.letter-'a']
		if n < cs.min || (cs.capped && n > cs.min) {
			return false
		}
		if cs.banned == 0 || n == 0 {
			continue
		}
		for i := 0; i < WordLength; i++ {
			if w[i] == cs.letter && cs.banned.Has(i) {
				return false
			}
		}
	}
	return true
}

// Filter returns the candidates consistent with k, preserving their order.
// A word survives when it has every pinned letter in place, contains each
// known letter at least as often as known (exactly as often when the count
// is capped, so zero times for absent letters), and never places a letter
// on one of its banned positions. The input slice is not modified; the
// result is never nil.
func Filter(candidates []string, k *Knowledge) []string {
	c := compile(k)
	out := make([]string, 0, len(candidates))
	for _, w := range candidates {
		if c.match(w) {
			out = append(out, w)
		}
	}
	return out
}

// Consistent reports whether a single word satisfies k.
func Consistent(word string, k *Knowledge) bool {
	c := compile(k)
	return c.match(word)
}
