package solver

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFeedback(t *testing.T) {
	cases := []struct {
		in   string
		want LetterFeedback
	}{
		{"correct", Correct},
		{"HIT", Correct},
		{"present", Present},
		{" absent ", Absent},
		{"miss", Absent},
	}
	for _, tc := range cases {
		got, err := ParseFeedback(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := ParseFeedback("tbd")
	assert.ErrorIs(t, err, ErrMalformedFeedback)
}

func TestLetterFeedbackJSON(t *testing.T) {
	b, err := json.Marshal([]LetterFeedback{Correct, Present, Absent})
	require.NoError(t, err)
	assert.JSONEq(t, `["correct","present","absent"]`, string(b))

	var back []LetterFeedback
	require.NoError(t, json.Unmarshal([]byte(`["hit","present","miss"]`), &back))
	assert.Equal(t, []LetterFeedback{Correct, Present, Absent}, back)
}

func TestParsePattern(t *testing.T) {
	r, err := ParsePattern("Apple", "g-~.y")
	require.NoError(t, err)
	assert.Equal(t, "apple", r.Word())
	assert.Equal(t, "gbyby", r.Pattern())
	assert.False(t, r.Solved())

	r, err = ParsePattern("crane", "+++++")
	require.NoError(t, err)
	assert.True(t, r.Solved())

	for _, tc := range [][2]string{
		{"crane", "gggg"},
		{"cran", "ggggg"},
		{"crane", "ggxgg"},
		{"cr4ne", "ggggg"},
	} {
		_, err := ParsePattern(tc[0], tc[1])
		assert.ErrorIs(t, err, ErrMalformedFeedback, strings.Join(tc[:], "/"))
	}
}

func TestIsWord(t *testing.T) {
	assert.True(t, IsWord("crane"))
	assert.False(t, IsWord("Crane"))
	assert.False(t, IsWord("cranes"))
	assert.False(t, IsWord("cr-ne"))
}
