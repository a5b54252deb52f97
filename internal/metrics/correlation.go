package metrics

import (
	"math"

	"github.com/formarank/formarank/internal/apperr"
)

// Pearson computes the linear correlation coefficient between two
// columns of equal length.
func Pearson(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, apperr.NewUndefined("correlation inputs differ in length")
	}
	if len(a) < 2 {
		return 0, apperr.NewUndefined("correlation needs at least two rows")
	}

	n := float64(len(a))
	var meanA, meanB float64
	for i := range a {
		meanA += a[i]
		meanB += b[i]
	}
	meanA /= n
	meanB /= n

	var cov, varA, varB float64
	for i := range a {
		da := a[i] - meanA
		db := b[i] - meanB
		cov += da * db
		varA += da * da
		varB += db * db
	}

	if varA == 0 || varB == 0 {
		return 0, apperr.NewUndefined("correlation undefined: a column is constant")
	}

	return cov / math.Sqrt(varA*varB), nil
}

// LogMSE is the mean squared error between log1p-transformed target and
// score columns. Unlike the correlation metrics it is scale-sensitive,
// so it only makes sense when the composite score is calibrated to the
// target's magnitude.
func LogMSE(target, score []float64) (float64, error) {
	if len(target) != len(score) {
		return 0, apperr.NewUndefined("log MSE inputs differ in length")
	}
	if len(target) == 0 {
		return 0, apperr.NewUndefined("empty dataset")
	}

	var sum float64
	for i := range target {
		d := math.Log1p(target[i]) - math.Log1p(score[i])
		sum += d * d
	}

	return sum / float64(len(target)), nil
}
