package solver

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReadWordList reads one word per line. Lines are trimmed and lowercased;
// blank lines and lines starting with '#' are skipped. Any other line that
// is not exactly WordLength letters a–z fails with ErrMalformedWordSource,
// and a source with no words fails with ErrEmptyWordSource.
func ReadWordList(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		s := strings.ToLower(strings.TrimSpace(sc.Text()))
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		if !IsWord(s) {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedWordSource, line, s)
		}
		out = append(out, s)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read word source: %w", err)
	}
	if len(out) == 0 {
		return nil, ErrEmptyWordSource
	}
	return out, nil
}

// ValidateWords checks an in-memory word source with the same rules as
// ReadWordList, without normalising.
func ValidateWords(words []string) error {
	if len(words) == 0 {
		return ErrEmptyWordSource
	}
	for i, w := range words {
		if !IsWord(w) {
			return fmt.Errorf("%w: entry %d: %q", ErrMalformedWordSource, i, w)
		}
	}
	return nil
}
