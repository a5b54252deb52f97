package objective

import (
	"errors"
	"fmt"
	"sort"

	"github.com/formarank/formarank/internal/apperr"
	"github.com/formarank/formarank/internal/dataset"
	"github.com/formarank/formarank/internal/metrics"
)

type evaluatorFunc func(snap *dataset.Snapshot, spec EvaluatorSpec) (float64, error)

// evaluators is the single dispatch table. The dispatcher routes; all
// numeric work happens in the metrics package.
var evaluators = map[Kind]evaluatorFunc{
	KindTau:                    evalTau,
	KindPearson:                evalPearson,
	KindTopCoverage:            evalTopCoverage,
	KindDistinctTopCoverage:    evalDistinctTopCoverage,
	KindTopNCoverage:           evalTopNCoverage,
	KindPortfolio:              evalPortfolio,
	KindDistinctCountPortfolio: evalDistinctCountPortfolio,
	KindLogMSE:                 evalLogMSE,
}

// EvaluateTargets produces the target vector for a snapshot: one float
// per specification, in specification order. Any evaluator error aborts
// the whole call, since a partially filled vector would misalign the
// downstream combination policy.
func EvaluateTargets(snap *dataset.Snapshot, specs []EvaluatorSpec) ([]float64, error) {
	targets := make([]float64, 0, len(specs))

	for i := range specs {
		spec := specs[i]
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("evaluator %d: %w", i, err)
		}

		value, err := evaluators[spec.Kind](snap, spec)
		if err != nil {
			var ume *apperr.UndefinedMetricError
			if errors.As(err, &ume) && ume.Kind == "" {
				ume.Kind = string(spec.Kind)
				ume.Column = spec.TargetColumn
			}
			return nil, fmt.Errorf("evaluator %d: %w", i, err)
		}
		targets = append(targets, value)
	}

	return targets, nil
}

// view is the row subset one evaluator works on: the target and score
// columns, the optional grouping keys, after mask filtering.
type view struct {
	target []float64
	score  []float64
	groups []string
	masked bool
}

func makeView(snap *dataset.Snapshot, spec EvaluatorSpec) (*view, error) {
	frame := snap.Frame()

	target, err := frame.Numeric(spec.TargetColumn)
	if err != nil {
		return nil, err
	}
	score, err := frame.Numeric(spec.score())
	if err != nil {
		return nil, err
	}

	var groups []string
	if spec.Groupby != "" {
		groups, err = frame.Categorical(spec.Groupby)
		if err != nil {
			return nil, err
		}
	}

	if spec.MaskColumn == "" {
		return &view{target: target, score: score, groups: groups}, nil
	}

	mask, err := frame.Numeric(spec.MaskColumn)
	if err != nil {
		return nil, err
	}

	v := &view{masked: true}
	for i, m := range mask {
		if m == 0 {
			continue
		}
		v.target = append(v.target, target[i])
		v.score = append(v.score, score[i])
		if groups != nil {
			v.groups = append(v.groups, groups[i])
		}
	}
	return v, nil
}

func evalTau(snap *dataset.Snapshot, spec EvaluatorSpec) (float64, error) {
	v, err := makeView(snap, spec)
	if err != nil {
		return 0, err
	}

	numBins := MaxTauBins
	if distinct := metrics.CountDistinct(v.target); distinct < numBins {
		numBins = distinct
	}
	if spec.Hyperparameter != nil {
		numBins = int(*spec.Hyperparameter)
	}

	// The per-snapshot cache is keyed by column name over the full
	// frame; a masked view has to bin its own subset.
	var targetBins []int
	if v.masked {
		targetBins = metrics.MapToBins(v.target, numBins)
	} else {
		targetBins, err = snap.BinsFor(spec.TargetColumn, numBins)
		if err != nil {
			return 0, err
		}
	}

	var scoreLabels []int
	if spec.Property == TauPropertyRawScore {
		scoreLabels = metrics.DenseRanks(v.score)
	} else {
		scoreLabels = metrics.MapToBins(v.score, numBins)
	}

	if spec.Groupby == "" {
		return metrics.KendallTau(targetBins, scoreLabels)
	}

	return groupedTau(targetBins, scoreLabels, v.groups, spec.GroupWeights)
}

// groupedTau averages the per-group coefficients, weighted when group
// weights are supplied. Groups where the coefficient is undefined (too
// small, fully tied) are skipped rather than poisoning the average.
func groupedTau(targetBins, scoreLabels []int, groups []string, weights map[string]float64) (float64, error) {
	byGroup := make(map[string][]int)
	var order []string
	for i, g := range groups {
		if _, ok := byGroup[g]; !ok {
			order = append(order, g)
		}
		byGroup[g] = append(byGroup[g], i)
	}
	sort.Strings(order)

	var weightedSum, weightSum float64
	for _, g := range order {
		idx := byGroup[g]
		a := make([]int, len(idx))
		b := make([]int, len(idx))
		for j, i := range idx {
			a[j] = targetBins[i]
			b[j] = scoreLabels[i]
		}

		tau, err := metrics.KendallTau(a, b)
		if err != nil {
			var ume *apperr.UndefinedMetricError
			if errors.As(err, &ume) {
				continue
			}
			return 0, err
		}

		w := 1.0
		if weights != nil {
			gw, ok := weights[g]
			if !ok {
				return 0, apperr.NewConfig(fmt.Sprintf("no group weight for group %q", g))
			}
			w = gw
		}
		weightedSum += w * tau
		weightSum += w
	}

	if weightSum == 0 {
		return 0, apperr.NewUndefined("rank correlation undefined in every group")
	}

	return weightedSum / weightSum, nil
}

func evalPearson(snap *dataset.Snapshot, spec EvaluatorSpec) (float64, error) {
	v, err := makeView(snap, spec)
	if err != nil {
		return 0, err
	}
	return metrics.Pearson(v.target, v.score)
}

func evalTopCoverage(snap *dataset.Snapshot, spec EvaluatorSpec) (float64, error) {
	v, err := makeView(snap, spec)
	if err != nil {
		return 0, err
	}
	return metrics.TopCoverage(v.target, v.score, spec.hyper(DefaultHeadFraction))
}

func evalDistinctTopCoverage(snap *dataset.Snapshot, spec EvaluatorSpec) (float64, error) {
	v, err := makeView(snap, spec)
	if err != nil {
		return 0, err
	}
	return metrics.DistinctTopCoverage(v.target, v.score, spec.hyper(DefaultHeadFraction))
}

func evalTopNCoverage(snap *dataset.Snapshot, spec EvaluatorSpec) (float64, error) {
	v, err := makeView(snap, spec)
	if err != nil {
		return 0, err
	}
	return metrics.TopNCoverage(v.target, v.score, v.groups, int(spec.hyper(DefaultTopN)))
}

func evalPortfolio(snap *dataset.Snapshot, spec EvaluatorSpec) (float64, error) {
	v, err := makeView(snap, spec)
	if err != nil {
		return 0, err
	}
	return metrics.PortfolioConcentration(v.target, v.score, spec.hyper(DefaultExpectation))
}

func evalDistinctCountPortfolio(snap *dataset.Snapshot, spec EvaluatorSpec) (float64, error) {
	v, err := makeView(snap, spec)
	if err != nil {
		return 0, err
	}
	return metrics.DistinctCountPortfolio(v.target, v.score, spec.hyper(DefaultExpectation))
}

func evalLogMSE(snap *dataset.Snapshot, spec EvaluatorSpec) (float64, error) {
	v, err := makeView(snap, spec)
	if err != nil {
		return 0, err
	}
	return metrics.LogMSE(v.target, v.score)
}
