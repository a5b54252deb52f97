package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromCSV(t *testing.T) {
	t.Run("splits numeric and categorical columns", func(t *testing.T) {
		data := "revenue,region,clicks\n10.5,eu,3\n0,us,7\n2,eu,1\n"

		frame, err := FromCSV(strings.NewReader(data))
		require.NoError(t, err)

		assert.Equal(t, 3, frame.Len())

		revenue, err := frame.Numeric("revenue")
		require.NoError(t, err)
		assert.Equal(t, []float64{10.5, 0, 2}, revenue)

		clicks, err := frame.Numeric("clicks")
		require.NoError(t, err)
		assert.Equal(t, []float64{3, 7, 1}, clicks)

		region, err := frame.Categorical("region")
		require.NoError(t, err)
		assert.Equal(t, []string{"eu", "us", "eu"}, region)
	})

	t.Run("empty cells load as zero", func(t *testing.T) {
		data := "revenue,region\n5,eu\n,us\n3,eu\n"

		frame, err := FromCSV(strings.NewReader(data))
		require.NoError(t, err)

		revenue, err := frame.Numeric("revenue")
		require.NoError(t, err)
		assert.Equal(t, []float64{5, 0, 3}, revenue)
	})

	t.Run("mixed column falls back to categorical", func(t *testing.T) {
		data := "id\n1\nabc\n3\n"

		frame, err := FromCSV(strings.NewReader(data))
		require.NoError(t, err)

		assert.False(t, frame.HasNumeric("id"))
		ids, err := frame.Categorical("id")
		require.NoError(t, err)
		assert.Equal(t, []string{"1", "abc", "3"}, ids)
	})

	t.Run("no data rows", func(t *testing.T) {
		_, err := FromCSV(strings.NewReader("revenue,region\n"))
		assert.Error(t, err)
	})
}
