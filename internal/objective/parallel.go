package objective

import (
	"context"
	"fmt"
	"sync"

	"github.com/formarank/formarank/internal/dataset"
	"github.com/formarank/formarank/internal/metrics"
)

// ScoreBatch holds one proposed composite-score column per trial, all
// against the same base dataset.
type ScoreBatch struct {
	ScoreColumn string
	Columns     [][]float64
}

// BatchResult carries the outcome of one trial in a batch evaluation.
type BatchResult struct {
	Trial Trial
	Err   error
}

// EvaluateBatch evaluates many proposed score columns against a shared
// base snapshot. Each worker derives an isolated snapshot per trial via
// WithScore, so trials never observe each other's score column. Target
// bin mappings are pre-warmed on the base snapshot once and shared by
// every clone. Results are returned indexed by trial number.
func EvaluateBatch(ctx context.Context, base *dataset.Snapshot, batch ScoreBatch, specs []EvaluatorSpec, workers int) ([]BatchResult, error) {
	if workers < 1 {
		workers = 1
	}

	if err := prewarmBins(base, specs); err != nil {
		return nil, fmt.Errorf("prewarm bin mappings: %w", err)
	}

	jobs := make(chan int)
	results := make([]BatchResult, len(batch.Columns))
	var wg sync.WaitGroup

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case trial, ok := <-jobs:
					if !ok {
						return
					}
					results[trial] = runTrial(base, batch, specs, trial)
				}
			}
		}()
	}

	for i := range batch.Columns {
		select {
		case <-ctx.Done():
			close(jobs)
			wg.Wait()
			return nil, ctx.Err()
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	return results, nil
}

func runTrial(base *dataset.Snapshot, batch ScoreBatch, specs []EvaluatorSpec, trial int) BatchResult {
	column := batch.ScoreColumn
	if column == "" {
		column = DefaultScoreColumn
	}

	snap, err := base.WithScore(column, batch.Columns[trial])
	if err != nil {
		return BatchResult{Trial: Trial{Number: trial}, Err: err}
	}

	targets, err := EvaluateTargets(snap, specs)
	if err != nil {
		return BatchResult{Trial: Trial{Number: trial}, Err: err}
	}

	return BatchResult{Trial: Trial{Number: trial, Targets: targets}}
}

// prewarmBins computes the bin mapping of every unmasked tau target on
// the base snapshot, so per-trial clones inherit it instead of each
// recomputing the quantile cut points.
func prewarmBins(base *dataset.Snapshot, specs []EvaluatorSpec) error {
	for i := range specs {
		spec := specs[i]
		if spec.Kind != KindTau || spec.MaskColumn != "" {
			continue
		}

		target, err := base.Frame().Numeric(spec.TargetColumn)
		if err != nil {
			return err
		}

		numBins := MaxTauBins
		if distinct := metrics.CountDistinct(target); distinct < numBins {
			numBins = distinct
		}
		if spec.Hyperparameter != nil {
			numBins = int(*spec.Hyperparameter)
		}

		if _, err := base.BinsFor(spec.TargetColumn, numBins); err != nil {
			return err
		}
	}
	return nil
}
