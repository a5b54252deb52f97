package dataset

import (
	"errors"
	"testing"

	"github.com/formarank/formarank/internal/apperr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameColumns(t *testing.T) {
	f := NewFrame(3)

	require.NoError(t, f.SetNumeric("revenue", []float64{1, 2, 3}))
	require.NoError(t, f.SetCategorical("region", []string{"eu", "us", "eu"}))

	assert.Equal(t, 3, f.Len())
	assert.True(t, f.HasNumeric("revenue"))
	assert.True(t, f.HasCategorical("region"))
	assert.False(t, f.HasNumeric("region"))

	nums, err := f.Numeric("revenue")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, nums)

	cats, err := f.Categorical("region")
	require.NoError(t, err)
	assert.Equal(t, []string{"eu", "us", "eu"}, cats)
}

func TestFrameLengthMismatch(t *testing.T) {
	f := NewFrame(3)

	assert.Error(t, f.SetNumeric("revenue", []float64{1, 2}))
	assert.Error(t, f.SetCategorical("region", []string{"eu"}))
}

func TestFrameMissingColumn(t *testing.T) {
	f := NewFrame(1)

	_, err := f.Numeric("missing")
	var dse *apperr.DataShapeError
	require.True(t, errors.As(err, &dse))
	assert.Equal(t, "missing", dse.Column)

	_, err = f.Categorical("missing")
	assert.True(t, errors.As(err, &dse))
}

func TestFrameCloneIsolation(t *testing.T) {
	f := NewFrame(2)
	require.NoError(t, f.SetNumeric("score", []float64{0.1, 0.2}))

	c := f.clone()
	require.NoError(t, c.SetNumeric("score", []float64{0.9, 0.8}))

	orig, err := f.Numeric("score")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.2}, orig)
}
