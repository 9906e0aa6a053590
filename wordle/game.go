package wordle

import (
	"github.com/powellquiring/wdlsolver/gowordle"
)

// MaxGuesses before a game is lost
const MaxGuesses = 6

type Status uint8

const (
	Running Status = iota
	Success
	Failure
)

func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Success:
		return "success"
	case Failure:
		return "failure"
	}
	return "unknown"
}

// Game tracks one game against a known answer. The dictionary is shared and
// never modified, the candidate storage is owned by the game and reused by
// ResetWithAnswer.
type Game struct {
	dictionary *Dictionary
	answer     gowordle.Word
	guesses    []gowordle.Word
	candidates *WordList
	status     Status
	words      []gowordle.Word // Candidates() buffer
	wordsValid bool
}

func NewGame(d *Dictionary, answer gowordle.Word) *Game {
	return &Game{
		dictionary: d,
		answer:     answer,
		guesses:    make([]gowordle.Word, 0, MaxGuesses),
		candidates: d.WordlistAll(),
		status:     Running,
		words:      make([]gowordle.Word, 0, d.Len()),
	}
}

// ResetWithAnswer starts a new game on the same storage
func (g *Game) ResetWithAnswer(answer gowordle.Word) {
	g.guesses = g.guesses[:0]
	if g.candidates.Len() != g.dictionary.Len() {
		g.dictionary.all.CopyTo(g.candidates)
		g.wordsValid = false
	}
	g.status = Running
	g.answer = answer
}

// Guess applies a guess and returns the new status. Once the game is over
// guesses are ignored.
func (g *Game) Guess(w gowordle.Word) Status {
	if g.status != Running {
		return g.status
	}
	g.guesses = append(g.guesses, w)

	// keep the words that would have produced the same feedback as the answer
	res := gowordle.Compare(w, g.answer)
	g.dictionary.Filter(g.candidates, w, res)
	g.wordsValid = false

	switch {
	case w == g.answer:
		g.status = Success
	case len(g.guesses) >= MaxGuesses:
		g.status = Failure
	}
	return g.status
}

func (g *Game) Status() Status {
	return g.status
}

func (g *Game) Answer() gowordle.Word {
	return g.answer
}

// Guesses made so far, callers must not modify it
func (g *Game) Guesses() []gowordle.Word {
	return g.guesses
}

// CandidateSet is the live set of words still consistent with the feedback
func (g *Game) CandidateSet() *WordList {
	return g.candidates
}

// Candidates returns the remaining words in dictionary order. The slice is
// reused, it is only valid until the next Guess or ResetWithAnswer.
func (g *Game) Candidates() []gowordle.Word {
	if !g.wordsValid {
		g.words = g.dictionary.WordlistWords(g.candidates, g.words[:0])
		g.wordsValid = true
	}
	return g.words
}
