package wordle

import (
	"strings"
	"testing"

	"github.com/powellquiring/wdlsolver/gowordle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBoard(t *testing.T) {
	board, err := ParseBoardString("rales bygbb\n  cigar\tbbbyy  \n\n   \n")
	require.NoError(t, err)
	require.Len(t, board, 2)
	assert.Equal(t, "rales bygbb", board[0].String())
	assert.Equal(t, WW("cigar"), board[1].Guess)
	assert.Equal(t, "bbbyy", board[1].Feedback.String())

	board, err = ParseBoardString("")
	require.NoError(t, err)
	assert.Empty(t, board)
}

func TestParseBoardMalformed(t *testing.T) {
	for _, in := range []string{
		"rales",
		"rales bygbb extra",
		"rales bygb",
		"rales bygbr",
		"rale bygbb",
		"rales bygbb\n\ncigar bbbyy",
		"r4les bygbb",
	} {
		_, err := ParseBoardString(in)
		assert.ErrorIs(t, err, ErrMalformedBoardLine, in)
	}
	_, err := ParseBoardString("rales bygbb\ncigar\n")
	assert.ErrorContains(t, err, "line 2")
}

func TestApplyBoard(t *testing.T) {
	d := newTestDictionary(t)
	answer := WW("karma")
	var b strings.Builder
	for _, guess := range []string{"rales", "cigar"} {
		b.WriteString(guess + " " + gowordle.Compare(WW(guess), answer).String() + "\n")
	}
	board, err := ParseBoardString(b.String())
	require.NoError(t, err)

	wl, err := d.ApplyBoard(board)
	require.NoError(t, err)
	index, _ := d.Index(answer)
	assert.True(t, wl.contains(index))
	for _, w := range wl.Range {
		for _, e := range board {
			assert.Equal(t, e.Feedback, gowordle.Compare(e.Guess, d.Words()[w]))
		}
	}

	wl, err = d.ApplyBoard(nil)
	require.NoError(t, err)
	assert.Equal(t, d.Len(), wl.Len())

	_, err = d.ApplyBoard([]BoardEntry{{Guess: WW("zzzzz"), Feedback: gowordle.AllCorrect}})
	assert.ErrorIs(t, err, ErrEmptyCandidateSet)
}
