// internal/words/words.go
//
// Resolves the candidate word source for new sessions.
//
// Sources:
//   - a file path (WORDS_FILE or --words): one five-letter word per line.
//   - otherwise the embedded default list (assets/words.txt), parsed once.
//
// Constraints:
//   - Lines are trimmed and lowercased; blank lines and '#' comments skipped.
//   - Any other line that is not five letters a–z fails the whole load.
//   - Callers get their own copy of the list.

package words

import (
	"fmt"
	"os"
	"sync"

	"github.com/robalobadob/wordlebot/assets"
	"github.com/robalobadob/wordlebot/internal/solver"
)

var (
	defaultOnce sync.Once
	defaultList []string
	defaultErr  error
)

// Load reads the word list at path, or the embedded default when path is empty.
func Load(path string) ([]string, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// LoadFile reads one word per line from a file.
func LoadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open word source: %w", err)
	}
	defer f.Close()
	list, err := solver.ReadWordList(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return list, nil
}

// Default returns a copy of the embedded word list.
func Default() ([]string, error) {
	defaultOnce.Do(func() {
		defaultList, defaultErr = assets.WordList()
	})
	if defaultErr != nil {
		return nil, defaultErr
	}
	return append([]string(nil), defaultList...), nil
}
