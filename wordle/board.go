package wordle

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/powellquiring/wdlsolver/gowordle"
)

var ErrMalformedBoardLine = errors.New("malformed board line")

// BoardEntry is one row of a played board
type BoardEntry struct {
	Guess    gowordle.Word
	Feedback gowordle.FeedbackCode
}

func (e BoardEntry) String() string {
	return e.Guess.String() + " " + e.Feedback.String()
}

// ParseBoard reads lines of "guess feedback", like "rales bygbb". Blank lines
// are allowed at the end, any bad line fails the whole board.
func ParseBoard(r io.Reader) ([]BoardEntry, error) {
	lines := []string{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	ret := make([]BoardEntry, 0, len(lines))
	for i, line := range lines {
		entry, err := parseBoardLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		ret = append(ret, entry)
	}
	return ret, nil
}

func ParseBoardString(s string) ([]BoardEntry, error) {
	return ParseBoard(strings.NewReader(s))
}

func parseBoardLine(line string) (BoardEntry, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return BoardEntry{}, fmt.Errorf("%w: %q, expecting a word and its feedback", ErrMalformedBoardLine, line)
	}
	return NewBoardEntry(fields[0], fields[1])
}

// NewBoardEntry parses a guess and its g/y/b feedback
func NewBoardEntry(guess, feedback string) (BoardEntry, error) {
	word, err := gowordle.ParseWord(guess)
	if err != nil {
		return BoardEntry{}, fmt.Errorf("%w: %w", ErrMalformedBoardLine, err)
	}
	code, err := gowordle.ParseFeedback(feedback)
	if err != nil {
		return BoardEntry{}, fmt.Errorf("%w: %w", ErrMalformedBoardLine, err)
	}
	return BoardEntry{Guess: word, Feedback: code}, nil
}

// ApplyBoard returns the dictionary words consistent with every entry
func (d *Dictionary) ApplyBoard(entries []BoardEntry) (*WordList, error) {
	ret := d.WordlistAll()
	for _, e := range entries {
		d.Filter(ret, e.Guess, e.Feedback)
	}
	if ret.Len() == 0 {
		return nil, ErrEmptyCandidateSet
	}
	return ret, nil
}
