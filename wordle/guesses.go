package wordle

import (
	"cmp"
	"context"
	"runtime"
	"slices"

	"github.com/powellquiring/wdlsolver/gowordle"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"
)

// Options for a Scorer
type Options struct {
	// ExcludeAllCorrect leaves the ggggg bucket, guessing the answer, out of the cost
	ExcludeAllCorrect bool
	// Workers used by RankGuesses, 0 is one per CPU
	Workers int
	// Progress is advanced once per scored guess in RankGuesses, may be nil
	Progress *progressbar.ProgressBar
}

type WordScore struct {
	Value gowordle.Word
	Score float64 // lower is better
	rank  int64   // Score * buckets^2, exact
}

// Scorer picks guesses that split the candidates into evenly sized feedback
// buckets. A Scorer has scratch space and is not safe for concurrent use,
// RankGuesses gives each worker its own.
type Scorer struct {
	opts Options
	freq [gowordle.NumFeedbackCodes]int
}

func NewScorer(opts Options) *Scorer {
	return &Scorer{opts: opts}
}

// distribution counts the candidates in each feedback bucket of guess
func (s *Scorer) distribution(guess gowordle.Word, candidates []gowordle.Word) {
	clear(s.freq[:])
	for _, answer := range candidates {
		s.freq[gowordle.Compare(guess, answer)]++
	}
}

// score is the sum over the buckets that occur of (avg - count)^2, avg being
// the count of a perfectly uniform split over all possible buckets. With
// B buckets, N words and k buckets that occur this is
// (B^2*sum(count^2) - 2*B*N^2 + k*N^2) / B^2, the numerator is kept as an
// exact integer for comparisons.
func (s *Scorer) score(guess gowordle.Word) WordScore {
	buckets := int64(gowordle.NumFeedbackCodes)
	if s.opts.ExcludeAllCorrect {
		buckets--
	}
	var total, occupied, sumSquares int64
	for code, count := range s.freq {
		if count == 0 || s.skip(code) {
			continue
		}
		c := int64(count)
		total += c
		occupied++
		sumSquares += c * c
	}
	rank := buckets*buckets*sumSquares - 2*buckets*total*total + occupied*total*total
	return WordScore{
		Value: guess,
		Score: float64(rank) / float64(buckets*buckets),
		rank:  rank,
	}
}

func (s *Scorer) skip(code int) bool {
	return s.opts.ExcludeAllCorrect && gowordle.FeedbackCode(code) == gowordle.AllCorrect
}

// Cost of guessing guess when the answer is one of candidates
func (s *Scorer) Cost(guess gowordle.Word, candidates []gowordle.Word) (float64, error) {
	if len(candidates) == 0 {
		return 0, ErrEmptyCandidateSet
	}
	s.distribution(guess, candidates)
	return s.score(guess).Score, nil
}

// BestNextWord returns the candidate with the lowest cost, ties go to the first word alphabetically
func (s *Scorer) BestNextWord(candidates []gowordle.Word) (gowordle.Word, error) {
	if len(candidates) == 0 {
		return gowordle.Word{}, ErrEmptyCandidateSet
	}
	if len(candidates) == 1 {
		return candidates[0], nil
	}
	var best WordScore
	for i, guess := range candidates {
		s.distribution(guess, candidates)
		ws := s.score(guess)
		if i == 0 || compareWordScores(ws, best) < 0 {
			best = ws
		}
	}
	return best.Value, nil
}

// BestStartingWords scores every candidate against the candidates, best first
func (s *Scorer) BestStartingWords(ctx context.Context, candidates []gowordle.Word) ([]WordScore, error) {
	return s.RankGuesses(ctx, candidates, candidates)
}

// RankGuesses scores each guess against the candidates in parallel and
// returns them sorted by cost then alphabetically.
func (s *Scorer) RankGuesses(ctx context.Context, guesses, candidates []gowordle.Word) ([]WordScore, error) {
	if len(candidates) == 0 {
		return nil, ErrEmptyCandidateSet
	}
	ret := make([]WordScore, len(guesses))
	g, ctx := errgroup.WithContext(ctx)
	for _, part := range partition(len(guesses), s.workers()) {
		g.Go(func() error {
			scratch := NewScorer(s.opts)
			for i := part.start; i < part.end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				scratch.distribution(guesses[i], candidates)
				ret[i] = scratch.score(guesses[i])
				if s.opts.Progress != nil {
					_ = s.opts.Progress.Add(1)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	slices.SortStableFunc(ret, compareWordScores)
	return ret, nil
}

func (s *Scorer) workers() int {
	if s.opts.Workers > 0 {
		return s.opts.Workers
	}
	return runtime.GOMAXPROCS(0)
}

// compareWordScores orders by exact cost then alphabetically. Scores are only
// comparable within one candidate set.
func compareWordScores(a, b WordScore) int {
	if c := cmp.Compare(a.rank, b.rank); c != 0 {
		return c
	}
	return a.Value.Compare(b.Value)
}

type span struct {
	start, end int
}

// partition splits [0,n) into at most parts contiguous spans of nearly equal size
func partition(n, parts int) []span {
	if n == 0 {
		return nil
	}
	parts = max(1, min(parts, n))
	ret := make([]span, 0, parts)
	size, extra := n/parts, n%parts
	start := 0
	for p := range parts {
		end := start + size
		if p < extra {
			end++
		}
		ret = append(ret, span{start, end})
		start = end
	}
	return ret
}
