package wordle

import (
	"strings"
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/powellquiring/wdlsolver/gowordle"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testWords = []string{
	"cigar", "rebut", "sissy", "humph", "awake", "blush", "focal", "evade", "naval", "serve",
	"heath", "dwarf", "model", "karma", "stink", "grade", "quiet", "bench", "abate", "feign",
	"major", "death", "fresh", "crust", "stool", "colon", "abase", "marry", "react", "batty",
	"pride", "floss", "helix", "croak", "staff", "paper", "unfed", "whelp", "trawl", "outdo",
}

func WW(s string) gowordle.Word {
	return gowordle.MustParseWord(s)
}

func (wl *WordList) remove(word WordleWord) {
	(*bitset.BitSet)(wl).Clear(uint(word))
}

func (wl *WordList) contains(word WordleWord) bool {
	return (*bitset.BitSet)(wl).Test(uint(word))
}

func (wl *WordList) isSubsetOf(other *WordList) bool {
	return (*bitset.BitSet)(other).IsSuperSet((*bitset.BitSet)(wl))
}

func newTestDictionary(t testing.TB, words ...string) *Dictionary {
	t.Helper()
	if len(words) == 0 {
		words = testWords
	}
	d, err := NewDictionaryFromStrings(words)
	require.NoError(t, err)
	return d
}

func TestLoadDictionary(t *testing.T) {
	d, err := LoadDictionary(strings.NewReader("added\n  abide \n\nadieu\nabide\n\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"abide", "added", "adieu"}, gowordle.WordsToStrings(d.Words()))
	assert.Equal(t, 3, d.Len())

	i, ok := d.Word("added")
	require.True(t, ok)
	assert.Equal(t, WordleWord(1), i)
	assert.Equal(t, "added", d.String(i))
	_, ok = d.Word("zzzzz")
	assert.False(t, ok)
	_, ok = d.Word("toolong")
	assert.False(t, ok)
}

func TestLoadDictionaryErrors(t *testing.T) {
	_, err := LoadDictionary(strings.NewReader("abide\nabc\nadieu\n"))
	assert.ErrorIs(t, err, gowordle.ErrInvalidWordLength)
	assert.ErrorContains(t, err, "line 2")

	_, err = LoadDictionary(strings.NewReader("abide\nab-de\n"))
	assert.ErrorIs(t, err, gowordle.ErrInvalidLetter)

	_, err = LoadDictionary(strings.NewReader("\n\n"))
	assert.ErrorIs(t, err, ErrEmptyDictionary)

	_, err = LoadDictionaryFile("testdata/does-not-exist.txt")
	assert.Error(t, err)
}

func TestWordList(t *testing.T) {
	d := newTestDictionary(t, "abide", "added", "adieu", "zonae")
	all := d.WordlistAll()
	assert.Equal(t, 4, all.Len())
	assert.Equal(t, []WordleWord{0, 1, 2, 3}, all.Words())

	wl, err := d.WordlistFromStrings([]string{"zonae", "abide"})
	require.NoError(t, err)
	assert.Equal(t, []string{"abide", "zonae"}, d.WordlistStrings(wl))
	assert.True(t, wl.isSubsetOf(all))
	assert.False(t, all.isSubsetOf(wl))

	wl.remove(0)
	assert.False(t, wl.contains(0))
	assert.True(t, wl.contains(3))
	assert.Equal(t, 1, wl.Len())

	_, err = d.WordlistFromStrings([]string{"nope!"})
	assert.Error(t, err)

	// WordlistAll hands out copies
	all.remove(2)
	assert.Equal(t, 4, d.WordlistAll().Len())

	empty := d.WordlistEmpty()
	all.CopyTo(empty)
	assert.Equal(t, d.WordlistStrings(all), d.WordlistStrings(empty))
}

func TestFilter(t *testing.T) {
	d := newTestDictionary(t, "abide", "added", "adieu")
	wl := d.WordlistAll()
	d.Filter(wl, WW("abide"), gowordle.Compare(WW("abide"), WW("adieu")))
	assert.Equal(t, []string{"adieu"}, d.WordlistStrings(wl))
}
