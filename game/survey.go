package game

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"text/tabwriter"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/gol-engine/model"
	"github.com/sheikhrachel/gol-engine/utils"
)

// defaultSurveyLimit caps survey runs when the configuration sets no generation limit
const defaultSurveyLimit = 1000

// Outcome describes how a surveyed board ended
type Outcome string

const (
	OutcomeExtinct  Outcome = "extinct"
	OutcomeStagnant Outcome = "stagnant"
	OutcomeLimit    Outcome = "limit"
)

// SurveyResult summarizes one seeded run
type SurveyResult struct {
	Seed        int64
	Outcome     Outcome
	Generations int
	Population  int
	Peak        int
}

/*
Survey runs one independent board per seed until it dies out, stagnates or reaches the
generation limit. Boards run concurrently, each owned by a single goroutine; results are
returned in seed order.
*/
func Survey(ctx context.Context, config utils.Config, seeds []int64) ([]SurveyResult, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	var pool *model.SetPool
	if config.UseMemoryPool {
		pool = model.NewSetPool()
	}

	var (
		results   = make([]SurveyResult, len(seeds))
		eg, egCtx = errgroup.WithContext(ctx)
	)
	eg.SetLimit(runtime.NumCPU())

	for i, seed := range seeds {
		eg.Go(func() error {
			result, err := surveySeed(egCtx, config, seed, pool)
			if err != nil {
				return errors.Wrapf(err, "[Survey] seed %d", seed)
			}
			results[i] = result
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func surveySeed(ctx context.Context, config utils.Config, seed int64, pool *model.SetPool) (SurveyResult, error) {
	limit := config.MaxGenerations
	if limit == 0 {
		limit = defaultSurveyLimit
	}

	grid := model.New(config.Width, config.Height)
	grid.UsePool(pool)
	if err := seedGrid(grid, config, model.NewRand(seed)); err != nil && !errors.Is(err, model.ErrOutOfBounds) {
		return SurveyResult{}, err
	}

	var (
		history model.History
		result  = SurveyResult{Seed: seed}
	)
	for generation := 0; ; generation++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		result.Generations = generation
		result.Population = grid.CountLivingCells()
		result.Peak = max(result.Peak, result.Population)

		fingerprint := grid.Fingerprint()
		switch {
		case result.Population == 0:
			result.Outcome = OutcomeExtinct
			return result, nil
		case history.IsStagnant(fingerprint):
			result.Outcome = OutcomeStagnant
			return result, nil
		case generation >= limit:
			result.Outcome = OutcomeLimit
			return result, nil
		}

		history.Record(fingerprint)
		grid.Transition()
	}
}

// WriteSurvey prints the results as an aligned table
func WriteSurvey(w io.Writer, results []SurveyResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SEED\tOUTCOME\tGENERATIONS\tPOPULATION\tPEAK")
	for _, r := range results {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\n", r.Seed, r.Outcome, r.Generations, r.Population, r.Peak)
	}
	return errors.Wrap(tw.Flush(), "[WriteSurvey] failed to write table")
}
