package metrics

import (
	"math"
	"sort"

	"github.com/formarank/formarank/internal/apperr"
)

// KendallTau computes the tau-b rank-correlation coefficient between two
// ordinal label columns of equal length. Labels are expected to be small
// non-negative bin indices, so the pair counts come from a contingency
// table rather than an O(n^2) sweep over rows. Tau-b corrects for the
// heavy tying that binning produces; the result is in [-1, 1].
func KendallTau(a, b []int) (float64, error) {
	if len(a) != len(b) {
		return 0, apperr.NewUndefined("rank correlation inputs differ in length")
	}
	if len(a) < 2 {
		return 0, apperr.NewUndefined("rank correlation needs at least two rows")
	}

	maxA, maxB := 0, 0
	for i := range a {
		if a[i] > maxA {
			maxA = a[i]
		}
		if b[i] > maxB {
			maxB = b[i]
		}
	}

	rows, cols := maxA+2, maxB+2
	counts := make([][]float64, rows)
	for i := range counts {
		counts[i] = make([]float64, cols)
	}
	for i := range a {
		counts[a[i]][b[i]]++
	}

	// Inclusive suffix sums: gt[i][j] counts rows with label >= (i, j);
	// lt[i][j] counts rows with first label >= i and second <= j.
	gt := make([][]float64, rows+1)
	lt := make([][]float64, rows+1)
	for i := range gt {
		gt[i] = make([]float64, cols+1)
		lt[i] = make([]float64, cols+1)
	}
	for i := rows - 1; i >= 0; i-- {
		for j := cols - 1; j >= 0; j-- {
			gt[i][j] = counts[i][j] + gt[i+1][j] + gt[i][j+1] - gt[i+1][j+1]
		}
		for j := 0; j < cols; j++ {
			left := 0.0
			if j > 0 {
				left = lt[i][j-1]
			}
			leftBelow := 0.0
			if j > 0 {
				leftBelow = lt[i+1][j-1]
			}
			lt[i][j] = counts[i][j] + lt[i+1][j] + left - leftBelow
		}
	}

	var concordant, discordant float64
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if counts[i][j] == 0 {
				continue
			}
			concordant += counts[i][j] * gt[i+1][j+1]
			if j > 0 {
				discordant += counts[i][j] * lt[i+1][j-1]
			}
		}
	}

	n := float64(len(a))
	n0 := n * (n - 1) / 2

	var rowTies, colTies float64
	for i := 0; i < rows; i++ {
		var rowSum float64
		for j := 0; j < cols; j++ {
			rowSum += counts[i][j]
		}
		rowTies += rowSum * (rowSum - 1) / 2
	}
	for j := 0; j < cols; j++ {
		var colSum float64
		for i := 0; i < rows; i++ {
			colSum += counts[i][j]
		}
		colTies += colSum * (colSum - 1) / 2
	}

	denom := math.Sqrt((n0 - rowTies) * (n0 - colTies))
	if denom == 0 {
		return 0, apperr.NewUndefined("rank correlation undefined: a column is constant")
	}

	return (concordant - discordant) / denom, nil
}

// DenseRanks maps values to 0-based ordinal ranks where equal values
// share a rank and ranks have no gaps.
func DenseRanks(values []float64) []int {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	rankOf := make(map[float64]int, len(values))
	rank := 0
	for i, v := range sorted {
		if i > 0 && v == sorted[i-1] {
			continue
		}
		rankOf[v] = rank
		rank++
	}

	ranks := make([]int, len(values))
	for i, v := range values {
		ranks[i] = rankOf[v]
	}
	return ranks
}
