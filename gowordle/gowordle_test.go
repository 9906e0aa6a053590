package gowordle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func WW(s string) Word {
	return MustParseWord(s)
}

func FB(s string) FeedbackCode {
	code, err := ParseFeedback(s)
	if err != nil {
		panic(err)
	}
	return code
}

func TestParseWord(t *testing.T) {
	w, err := ParseWord("crane")
	require.NoError(t, err)
	assert.Equal(t, "crane", w.String())
	assert.Equal(t, w, WW(w.String()))

	_, err = ParseWord("cranes")
	assert.ErrorIs(t, err, ErrInvalidWordLength)
	_, err = ParseWord("")
	assert.ErrorIs(t, err, ErrInvalidWordLength)
	_, err = ParseWord("cr4ne")
	assert.ErrorIs(t, err, ErrInvalidLetter)
	// 5 bytes, 4 runes
	_, err = ParseWord("café")
	assert.ErrorIs(t, err, ErrInvalidLetter)
}

func TestWordCompare(t *testing.T) {
	assert.Negative(t, WW("abide").Compare(WW("added")))
	assert.Positive(t, WW("adieu").Compare(WW("added")))
	assert.Zero(t, WW("adieu").Compare(WW("adieu")))
}

func TestFeedbackCode(t *testing.T) {
	assert.Equal(t, AllCorrect, FB("ggggg"))
	assert.Equal(t, FeedbackCode(NumFeedbackCodes-1), FB("bbbbb"))
	assert.Equal(t, FeedbackCode(81), FB("ygggg"))
	assert.Equal(t, FeedbackCode(1), FB("ggggy"))

	seen := make(map[string]bool, NumFeedbackCodes)
	for code := range FeedbackCode(NumFeedbackCodes) {
		s := code.String()
		assert.False(t, seen[s], s)
		seen[s] = true
		assert.Equal(t, code, FB(s))
		assert.Equal(t, code, code.States().Code())
	}
	assert.Len(t, seen, NumFeedbackCodes)

	_, err := ParseFeedback("ggrgg")
	assert.ErrorIs(t, err, ErrInvalidFeedback)
	_, err = ParseFeedback("gggg")
	assert.ErrorIs(t, err, ErrInvalidFeedback)
}

func TestCompare(t *testing.T) {
	for _, tc := range []struct {
		guess, answer, feedback string
	}{
		{"abcde", "edcba", "yygyy"},
		{"aabbb", "ababa", "gyygb"},
		{"abide", "adieu", "gbgyy"},
		{"added", "adieu", "ggbgb"},
		{"speed", "abide", "bbyby"},
		{"eerie", "there", "ybybg"},
		{"lllll", "hello", "bbggb"},
		{"aazzz", "aaaaa", "ggbbb"},
		{"bxxac", "abbbb", "ybbyb"},
		{"axxaa", "abazz", "gbbyb"},
	} {
		got := Compare(WW(tc.guess), WW(tc.answer))
		assert.Equal(t, tc.feedback, got.String(), "%s vs %s", tc.guess, tc.answer)
	}
}

func TestCompareSelf(t *testing.T) {
	for _, s := range []string{"aaaaa", "hello", "zonae", "rales", "eerie"} {
		assert.Equal(t, AllCorrect, Compare(WW(s), WW(s)), s)
	}
}

func letterCount(w Word) map[byte]int {
	ret := map[byte]int{}
	for _, c := range w {
		ret[c]++
	}
	return ret
}

// green plus yellow for a letter never exceeds the letter's count in the answer
func TestCompareLetterConservation(t *testing.T) {
	words := []string{"aabbb", "ababa", "eerie", "there", "hello", "lllll", "speed", "abide", "added", "adieu", "error", "rarer"}
	for _, g := range words {
		for _, a := range words {
			guess, answer := WW(g), WW(a)
			claimed := map[byte]int{}
			for i, s := range Compare(guess, answer).States() {
				if s != NotExists {
					claimed[guess[i]]++
				}
			}
			counts := letterCount(answer)
			for letter, n := range claimed {
				assert.LessOrEqual(t, n, counts[letter], "%s vs %s letter %c", g, a, letter)
			}
		}
	}
}

func BenchmarkCompare(b *testing.B) {
	guess, answer := WW("rales"), WW("eerie")
	for b.Loop() {
		Compare(guess, answer)
	}
}
