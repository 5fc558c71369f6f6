package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	cases := []struct {
		answer, guess, want string
	}{
		{"crane", "crane", "ggggg"},
		{"crane", "moist", "bbbbb"},
		{"abbey", "babes", "yyggb"},
		{"crane", "eerie", "bbybg"},
		{"adobe", "abate", "gybbg"},
		{"speed", "geese", "bygyb"},
	}
	for _, tc := range cases {
		got := Score(tc.answer, tc.guess)
		assert.Equal(t, tc.want, got.Pattern(), "%s/%s", tc.answer, tc.guess)
		assert.Equal(t, tc.guess, got.Word())
	}
}

func TestApplyGuessWin(t *testing.T) {
	g, err := New(" Crane ")
	require.NoError(t, err)
	assert.Equal(t, "crane", g.Answer)
	assert.NotEmpty(t, g.ID)

	_, state, err := g.ApplyGuess("slate")
	require.NoError(t, err)
	assert.Equal(t, "playing", state)

	row, state, err := g.ApplyGuess("CRANE")
	require.NoError(t, err)
	assert.True(t, row.Solved())
	assert.Equal(t, "won", state)

	_, _, err = g.ApplyGuess("crane")
	assert.ErrorIs(t, err, ErrFinished)
}

func TestApplyGuessLoss(t *testing.T) {
	g, err := New("crane")
	require.NoError(t, err)
	for i := 0; i < g.Rows; i++ {
		_, _, err := g.ApplyGuess("moist")
		require.NoError(t, err)
	}
	assert.True(t, g.Finished)
	assert.False(t, g.Won)
	assert.Equal(t, "lost", g.State())
}

func TestInvalidInput(t *testing.T) {
	_, err := New("cranes")
	assert.ErrorIs(t, err, ErrInvalidGuess)

	g, err := New("crane")
	require.NoError(t, err)
	_, _, err = g.ApplyGuess("cr4ne")
	assert.ErrorIs(t, err, ErrInvalidGuess)
	assert.Empty(t, g.Guesses)
}
