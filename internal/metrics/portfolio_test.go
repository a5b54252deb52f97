package metrics

import (
	"errors"
	"testing"

	"github.com/formarank/formarank/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPortfolioConcentration(t *testing.T) {
	t.Run("concentrated ranking needs few rows", func(t *testing.T) {
		// The best-scored row carries 80 of 100 total, reaching an 0.8
		// expectation after a single row out of five.
		target := []float64{80, 5, 5, 5, 5}
		score := []float64{9, 4, 3, 2, 1}

		got, err := PortfolioConcentration(target, score, 0.8)
		require.NoError(t, err)
		assert.InDelta(t, 0.2, got, 1e-9)
	})

	t.Run("inverted ranking needs most rows", func(t *testing.T) {
		target := []float64{80, 5, 5, 5, 5}
		score := []float64{1, 2, 3, 4, 9}

		got, err := PortfolioConcentration(target, score, 0.8)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, got, 1e-9)
	})

	t.Run("uniform mass scales with expectation", func(t *testing.T) {
		target := []float64{1, 1, 1, 1}
		score := []float64{4, 3, 2, 1}

		got, err := PortfolioConcentration(target, score, 0.5)
		require.NoError(t, err)
		assert.InDelta(t, 0.5, got, 1e-9)
	})

	t.Run("unreachable expectation returns one", func(t *testing.T) {
		target := []float64{1, 1}
		score := []float64{2, 1}

		got, err := PortfolioConcentration(target, score, 1.5)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, got, 1e-9)
	})

	t.Run("zero total is undefined", func(t *testing.T) {
		_, err := PortfolioConcentration([]float64{0, 0}, []float64{1, 2}, 0.8)
		var ume *apperr.UndefinedMetricError
		assert.True(t, errors.As(err, &ume))
	})
}

func TestDistinctCountPortfolio(t *testing.T) {
	t.Run("duplicates at the top delay coverage", func(t *testing.T) {
		// Score-descending targets: 7, 7, 3, 1. Two of three distinct
		// values are seen after three rows.
		target := []float64{1, 7, 3, 7}
		score := []float64{1, 4, 2, 3}

		got, err := DistinctCountPortfolio(target, score, 2.0/3.0)
		require.NoError(t, err)
		assert.InDelta(t, 0.75, got, 1e-9)
	})

	t.Run("all distinct covers proportionally", func(t *testing.T) {
		target := []float64{4, 3, 2, 1}
		score := []float64{9, 8, 7, 6}

		got, err := DistinctCountPortfolio(target, score, 0.5)
		require.NoError(t, err)
		assert.InDelta(t, 0.5, got, 1e-9)
	})

	t.Run("empty dataset is undefined", func(t *testing.T) {
		_, err := DistinctCountPortfolio(nil, nil, 0.8)
		assert.Error(t, err)
	})
}
