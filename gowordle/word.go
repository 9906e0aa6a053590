package gowordle

import (
	"bytes"
	"errors"
	"fmt"
)

// WordLen is the number of letters in every word
const WordLen = 5

var (
	ErrInvalidWordLength = errors.New("invalid word length")
	ErrInvalidLetter     = errors.New("invalid letter")
)

// Word is a fixed length sequence of ASCII letters
type Word [WordLen]byte

func ParseWord(s string) (Word, error) {
	var ret Word
	if len(s) != WordLen {
		return ret, fmt.Errorf("%w %d: %q", ErrInvalidWordLength, len(s), s)
	}
	for i := range WordLen {
		c := s[i]
		if !isLetter(c) {
			return ret, fmt.Errorf("%w %q at %d: %q", ErrInvalidLetter, c, i, s)
		}
		ret[i] = c
	}
	return ret, nil
}

// MustParseWord is ParseWord for words known to be valid, it panics on error.
func MustParseWord(s string) Word {
	w, err := ParseWord(s)
	if err != nil {
		panic(err)
	}
	return w
}

func ParseWords(strings []string) ([]Word, error) {
	ret := make([]Word, 0, len(strings))
	for _, s := range strings {
		w, err := ParseWord(s)
		if err != nil {
			return nil, err
		}
		ret = append(ret, w)
	}
	return ret, nil
}

func (w Word) String() string {
	return string(w[:])
}

// Compare orders words lexicographically, used for deterministic tie breaks.
func (w Word) Compare(other Word) int {
	return bytes.Compare(w[:], other[:])
}

func WordsToStrings(words []Word) []string {
	ret := make([]string, 0, len(words))
	for _, w := range words {
		ret = append(ret, w.String())
	}
	return ret
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
