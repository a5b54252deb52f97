package metrics

import "github.com/formarank/formarank/internal/apperr"

// PortfolioConcentration is the smallest fraction of score-ranked rows
// whose cumulative target mass reaches expectedReturn of the total. A
// small value means the ranking concentrates the target mass near the
// top.
func PortfolioConcentration(target, score []float64, expectedReturn float64) (float64, error) {
	if len(target) == 0 {
		return 0, apperr.NewUndefined("empty dataset")
	}

	var total float64
	for _, v := range target {
		total += v
	}
	if total == 0 {
		return 0, apperr.NewUndefined("target column sums to zero")
	}

	order := descendingByScore(score)

	var cum float64
	for pos, idx := range order {
		cum += target[idx]
		if cum/total >= expectedReturn {
			return float64(pos+1) / float64(len(target)), nil
		}
	}

	return 1, nil
}

// DistinctCountPortfolio is the smallest fraction of score-ranked rows
// needed to encounter expectedCoverage of the distinct target values.
func DistinctCountPortfolio(target, score []float64, expectedCoverage float64) (float64, error) {
	if len(target) == 0 {
		return 0, apperr.NewUndefined("empty dataset")
	}

	totalDistinct := CountDistinct(target)
	if totalDistinct == 0 {
		return 0, apperr.NewUndefined("target column has no values")
	}

	order := descendingByScore(score)

	seen := make(map[float64]struct{}, totalDistinct)
	for pos, idx := range order {
		seen[target[idx]] = struct{}{}
		if float64(len(seen))/float64(totalDistinct) >= expectedCoverage {
			return float64(pos+1) / float64(len(target)), nil
		}
	}

	return 1, nil
}
