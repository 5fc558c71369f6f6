// Package assets embeds the default word source.
package assets

import (
	"bytes"
	_ "embed"

	"github.com/robalobadob/wordlebot/internal/solver"
)

//go:embed words.txt
var wordsTxt []byte

// WordList parses the embedded word list.
func WordList() ([]string, error) {
	return solver.ReadWordList(bytes.NewReader(wordsTxt))
}
