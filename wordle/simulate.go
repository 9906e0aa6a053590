package wordle

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/powellquiring/wdlsolver/gowordle"
	"github.com/rs/zerolog"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"
)

// DefaultOpener is the first guess of a self-played game
var DefaultOpener = gowordle.MustParseWord("rales")

// Play resets the game to answer and plays it out: the opener first, then the
// scorer's best next word until the game is over.
func (g *Game) Play(answer, opener gowordle.Word, scorer *Scorer) (Status, error) {
	g.ResetWithAnswer(answer)
	status := g.Guess(opener)
	for status == Running {
		next, err := scorer.BestNextWord(g.Candidates())
		if err != nil {
			return status, fmt.Errorf("answer %s after %s: %w", answer, strings.Join(gowordle.WordsToStrings(g.guesses), ","), err)
		}
		status = g.Guess(next)
	}
	return status, nil
}

type GameResult struct {
	Answer  gowordle.Word
	Guesses []gowordle.Word
	Status  Status
}

// String is answer:guess1,guess2,...
func (r GameResult) String() string {
	return r.Answer.String() + ":" + strings.Join(gowordle.WordsToStrings(r.Guesses), ",")
}

type SelfPlayOptions struct {
	Opener  gowordle.Word // zero value is DefaultOpener
	Scoring Options       // Workers is also the number of games played at once
	// OutDir, when set, gets one file per worker holding that worker's results
	OutDir   string
	Progress *progressbar.ProgressBar
	Log      zerolog.Logger
}

// SelfPlay plays one game for each answer. Answers are split into contiguous
// runs, one per worker, and each worker owns its own Game and Scorer. The
// results are in the order of answers.
func SelfPlay(ctx context.Context, d *Dictionary, answers []gowordle.Word, opts SelfPlayOptions) ([]GameResult, error) {
	opener := opts.Opener
	if opener == (gowordle.Word{}) {
		opener = DefaultOpener
	}
	scoring := opts.Scoring
	scoring.Progress = nil
	ret := make([]GameResult, len(answers))
	parts := partition(len(answers), NewScorer(opts.Scoring).workers())

	g, ctx := errgroup.WithContext(ctx)
	for worker, part := range parts {
		g.Go(func() error {
			w := selfPlayWorker{
				id:       worker,
				dict:     d,
				opener:   opener,
				scorer:   NewScorer(scoring),
				progress: opts.Progress,
				log:      opts.Log.With().Int("worker", worker).Logger(),
			}
			return w.run(ctx, answers[part.start:part.end], ret[part.start:part.end], opts.OutDir)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ret, nil
}

type selfPlayWorker struct {
	id       int
	dict     *Dictionary
	opener   gowordle.Word
	scorer   *Scorer
	progress *progressbar.ProgressBar
	log      zerolog.Logger
}

// run plays answers into results, both are this worker's own slices
func (w *selfPlayWorker) run(ctx context.Context, answers []gowordle.Word, results []GameResult, outDir string) (err error) {
	var out *bufio.Writer
	if outDir != "" {
		f, createErr := os.Create(filepath.Join(outDir, fmt.Sprintf("selfplay-%02d.txt", w.id)))
		if createErr != nil {
			return createErr
		}
		out = bufio.NewWriter(f)
		defer func() {
			if flushErr := out.Flush(); err == nil {
				err = flushErr
			}
			if closeErr := f.Close(); err == nil {
				err = closeErr
			}
		}()
	}

	w.log.Debug().Int("games", len(answers)).Msg("worker start")
	game := NewGame(w.dict, answers[0])
	for i, answer := range answers {
		if err := ctx.Err(); err != nil {
			return err
		}
		status, err := game.Play(answer, w.opener, w.scorer)
		if err != nil {
			return err
		}
		results[i] = GameResult{
			Answer:  answer,
			Guesses: append([]gowordle.Word(nil), game.Guesses()...),
			Status:  status,
		}
		if status != Success {
			w.log.Info().Stringer("answer", answer).Int("guesses", len(results[i].Guesses)).Msg("game lost")
		}
		if out != nil {
			if _, err := fmt.Fprintln(out, results[i].String()); err != nil {
				return err
			}
		}
		if w.progress != nil {
			_ = w.progress.Add(1)
		}
	}
	w.log.Debug().Msg("worker done")
	return nil
}

// Summary counts games by number of guesses, lost games are counted in Failures
type Summary struct {
	Games     int
	Failures  int
	ByGuesses [MaxGuesses + 1]int
}

func Summarize(results []GameResult) Summary {
	var ret Summary
	for _, r := range results {
		ret.Games++
		if r.Status != Success {
			ret.Failures++
			continue
		}
		ret.ByGuesses[len(r.Guesses)]++
	}
	return ret
}

// Average number of guesses of the games won
func (s Summary) Average() float64 {
	won, total := 0, 0
	for n, count := range s.ByGuesses {
		won += count
		total += n * count
	}
	if won == 0 {
		return 0
	}
	return float64(total) / float64(won)
}
