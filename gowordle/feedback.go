package gowordle

import (
	"errors"
	"fmt"
)

// State of one letter of a guess
type State uint8

const (
	CorrectLocation State = iota
	IncorrectLocation
	NotExists
)

// NumFeedbackCodes is 3^5, every possible Feedback
const NumFeedbackCodes = 243

// AllCorrect is the code of a guess that is the answer
const AllCorrect FeedbackCode = 0

var ErrInvalidFeedback = errors.New("invalid feedback")

// Feedback is the per letter result of comparing a guess to an answer
type Feedback [WordLen]State

// FeedbackCode is a Feedback as a base 3 number, position 0 is the most significant digit
type FeedbackCode uint8

func (f Feedback) Code() FeedbackCode {
	ret := FeedbackCode(0)
	for _, s := range f {
		ret = ret*3 + FeedbackCode(s)
	}
	return ret
}

func (c FeedbackCode) States() Feedback {
	var ret Feedback
	for i := WordLen - 1; i >= 0; i-- {
		ret[i] = State(c % 3)
		c /= 3
	}
	return ret
}

func (s State) Byte() byte {
	switch s {
	case CorrectLocation:
		return 'g'
	case IncorrectLocation:
		return 'y'
	default:
		return 'b'
	}
}

func (c FeedbackCode) String() string {
	states := c.States()
	ret := make([]byte, WordLen)
	for i, s := range states {
		ret[i] = s.Byte()
	}
	return string(ret)
}

// ParseFeedback reads g (correct), y (elsewhere), b (not in word) for each letter, like ggyby
func ParseFeedback(colors string) (FeedbackCode, error) {
	if len(colors) != WordLen {
		return 0, fmt.Errorf("%w: %q is not %d characters", ErrInvalidFeedback, colors, WordLen)
	}
	var f Feedback
	for i := range WordLen {
		switch colors[i] {
		case 'g':
			f[i] = CorrectLocation
		case 'y':
			f[i] = IncorrectLocation
		case 'b':
			f[i] = NotExists
		default:
			return 0, fmt.Errorf("%w: %q has %q, expecting g, y or b", ErrInvalidFeedback, colors, colors[i])
		}
	}
	return f.Code(), nil
}

// Compare returns the feedback for the guess given the answer.
// Exact matches claim their answer letter first, then each remaining guess
// letter claims the leftmost unclaimed occurrence, so an answer letter is never
// counted twice.
func Compare(guess, answer Word) FeedbackCode {
	var result Feedback
	for i := range result {
		result[i] = NotExists
	}
	for i := range WordLen {
		if guess[i] == answer[i] {
			answer[i] = 0 // claimed
			result[i] = CorrectLocation
		}
	}
	for i := range WordLen {
		if result[i] != NotExists {
			continue
		}
		for j := range WordLen {
			if answer[j] == guess[i] {
				answer[j] = 0
				result[i] = IncorrectLocation
				break
			}
		}
	}
	return result.Code()
}
