package metrics

import (
	"sort"

	"github.com/formarank/formarank/internal/apperr"
)

// descendingByScore returns row indices ordered by score descending.
// The sort is stable: tied scores keep their input row order.
func descendingByScore(score []float64) []int {
	order := make([]int, len(score))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return score[order[a]] > score[order[b]]
	})
	return order
}

// TopCoverage is the fraction of the target column's total mass captured
// by the top headFraction of rows ranked by score descending.
func TopCoverage(target, score []float64, headFraction float64) (float64, error) {
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
	head := headSize(len(target), headFraction)

	var topSum float64
	for _, idx := range order[:head] {
		topSum += target[idx]
	}

	return topSum / total, nil
}

// headSize converts a head fraction to a row count, clamped to [0, n] so
// an out-of-range fraction degrades to the nearest valid slice.
func headSize(n int, headFraction float64) int {
	head := int(float64(n) * headFraction)
	if head < 0 {
		return 0
	}
	if head > n {
		return n
	}
	return head
}

// DistinctTopCoverage is the fraction of distinct target values whose
// first occurrence (in score-descending order) falls inside the top
// headFraction of rows. It measures unique-entity coverage rather than
// mass coverage.
func DistinctTopCoverage(target, score []float64, headFraction float64) (float64, error) {
	if len(target) == 0 {
		return 0, apperr.NewUndefined("empty dataset")
	}

	totalDistinct := CountDistinct(target)
	if totalDistinct == 0 {
		return 0, apperr.NewUndefined("target column has no values")
	}

	order := descendingByScore(score)
	head := headSize(len(target), headFraction)

	seen := make(map[float64]struct{}, totalDistinct)
	distinctInHead := 0
	for _, idx := range order[:head] {
		if _, ok := seen[target[idx]]; ok {
			continue
		}
		seen[target[idx]] = struct{}{}
		distinctInHead++
	}

	return float64(distinctInHead) / float64(totalDistinct), nil
}

// TopNCoverage is the fraction of the target column's total mass held by
// the rows ranking among the top topN by score within each group.
func TopNCoverage(target, score []float64, groups []string, topN int) (float64, error) {
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

	selected := GroupTopN(groups, score, false, topN)

	var topSum float64
	for _, idx := range selected {
		topSum += target[idx]
	}

	return topSum / total, nil
}
