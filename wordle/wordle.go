package wordle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/bits-and-blooms/bitset"
	mapset "github.com/deckarep/golang-set"
	"github.com/powellquiring/wdlsolver/gowordle"
)

// WordleWord is an index into the dictionary
type WordleWord uint16

// WordList is a set of dictionary words, a bit for each word
type WordList bitset.BitSet

var (
	ErrEmptyDictionary   = errors.New("dictionary is empty")
	ErrEmptyCandidateSet = errors.New("no candidate words left")
)

// Dictionary is the sorted, read only word list shared by games and scorers
type Dictionary struct {
	words        []gowordle.Word
	stringToWord map[gowordle.Word]WordleWord
	all          *WordList
}

// NewDictionary sorts the words and drops duplicates
func NewDictionary(words []gowordle.Word) (*Dictionary, error) {
	seen := mapset.NewThreadUnsafeSet()
	unique := make([]gowordle.Word, 0, len(words))
	for _, w := range words {
		if seen.Add(w) {
			unique = append(unique, w)
		}
	}
	if len(unique) == 0 {
		return nil, ErrEmptyDictionary
	}
	if len(unique) > 1<<16 {
		return nil, fmt.Errorf("dictionary has %d words, more than %d", len(unique), 1<<16)
	}
	slices.SortFunc(unique, gowordle.Word.Compare)

	ret := &Dictionary{words: unique}
	ret.stringToWord = make(map[gowordle.Word]WordleWord, len(unique))
	for i, word := range unique {
		ret.stringToWord[word] = WordleWord(i)
	}
	all := bitset.New(uint(len(unique)))
	for i := range unique {
		all.Set(uint(i))
	}
	ret.all = (*WordList)(all)
	return ret, nil
}

func NewDictionaryFromStrings(strings []string) (*Dictionary, error) {
	words, err := gowordle.ParseWords(strings)
	if err != nil {
		return nil, err
	}
	return NewDictionary(words)
}

// LoadDictionary reads one word per line. Blank lines are skipped, any other
// line that is not a word fails the whole load.
func LoadDictionary(r io.Reader) (*Dictionary, error) {
	words := []gowordle.Word{}
	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		word, err := gowordle.ParseWord(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return NewDictionary(words)
}

func LoadDictionaryFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	d, err := LoadDictionary(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

func (d *Dictionary) Len() int {
	return len(d.words)
}

// Words is the sorted dictionary, callers must not modify it
func (d *Dictionary) Words() []gowordle.Word {
	return d.words
}

func (d *Dictionary) WordlistAll() *WordList {
	return d.all.Clone()
}

func (d *Dictionary) WordlistEmpty() *WordList {
	return (*WordList)(bitset.New(uint(len(d.words))))
}

// WordlistFromStrings is the list of the given words, an error names the
// first one missing from the dictionary
func (d *Dictionary) WordlistFromStrings(strings []string) (*WordList, error) {
	ret := d.WordlistEmpty()
	for _, s := range strings {
		wordleWord, ok := d.Word(s)
		if !ok {
			return nil, fmt.Errorf("word not in dictionary: %q", s)
		}
		ret.Insert(wordleWord)
	}
	return ret, nil
}

func (d *Dictionary) Word(s string) (WordleWord, bool) {
	w, err := gowordle.ParseWord(s)
	if err != nil {
		return 0, false
	}
	return d.Index(w)
}

func (d *Dictionary) Index(w gowordle.Word) (WordleWord, bool) {
	ret, ok := d.stringToWord[w]
	return ret, ok
}

func (d *Dictionary) String(wordleWord WordleWord) string {
	return d.words[wordleWord].String()
}

// WordlistWords appends the words of the list to buf in dictionary order
func (d *Dictionary) WordlistWords(wordlist *WordList, buf []gowordle.Word) []gowordle.Word {
	for _, w := range wordlist.Range {
		buf = append(buf, d.words[w])
	}
	return buf
}

func (d *Dictionary) WordlistStrings(wordlist *WordList) []string {
	ret := []string{}
	for _, word := range wordlist.Range {
		ret = append(ret, d.String(word))
	}
	return ret
}

// Filter removes every word from the list whose feedback for guess differs from want
func (d *Dictionary) Filter(wordlist *WordList, guess gowordle.Word, want gowordle.FeedbackCode) {
	bs := (*bitset.BitSet)(wordlist)
	for i, ok := bs.NextSet(0); ok; i, ok = bs.NextSet(i + 1) {
		if gowordle.Compare(guess, d.words[i]) != want {
			bs.Clear(i)
		}
	}
}

func (wl *WordList) Range(yield func(i int, wordleWord WordleWord) bool) {
	bs := (*bitset.BitSet)(wl)
	i := 0
	for wordleWord, ok := bs.NextSet(0); ok; wordleWord, ok = bs.NextSet(wordleWord + 1) {
		if !yield(i, WordleWord(wordleWord)) {
			return
		}
		i++
	}
}

func (wl *WordList) Words() []WordleWord {
	ret := []WordleWord{}
	for _, wordleWord := range wl.Range {
		ret = append(ret, wordleWord)
	}
	return ret
}

func (wl *WordList) Len() int {
	return int((*bitset.BitSet)(wl).Count())
}

func (wl *WordList) Insert(word WordleWord) {
	(*bitset.BitSet)(wl).Set(uint(word))
}

func (wl *WordList) Clone() *WordList {
	return (*WordList)((*bitset.BitSet)(wl).Clone())
}

// CopyTo overwrites dst with the contents of wl without allocating
func (wl *WordList) CopyTo(dst *WordList) {
	(*bitset.BitSet)(wl).Copy((*bitset.BitSet)(dst))
}
