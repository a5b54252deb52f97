package metrics

import "sort"

// MapToBins discretizes a numeric column into equal-frequency ordinal
// bins. Bin 0 is reserved for zero values (the "absent" category);
// non-zero values are assigned to bins 1..numBins by the quantile cut
// points of the non-zero subset. Equal-frequency rather than equal-width
// binning keeps bins comparably populated regardless of skew, which the
// rank-correlation metric depends on.
func MapToBins(values []float64, numBins int) []int {
	if len(values) == 0 {
		return []int{}
	}

	nonZero := make([]float64, 0, len(values))
	for _, v := range values {
		if v != 0 {
			nonZero = append(nonZero, v)
		}
	}

	bins := make([]int, len(values))
	if len(nonZero) == 0 {
		return bins
	}

	// Cannot have more bins than non-zero data points: clamp, never error.
	if numBins > len(nonZero) {
		numBins = len(nonZero)
	}
	if numBins < 1 {
		numBins = 1
	}

	sorted := make([]float64, len(nonZero))
	copy(sorted, nonZero)
	sort.Float64s(sorted)

	cuts := make([]float64, 0, numBins-1)
	for i := 1; i < numBins; i++ {
		cuts = append(cuts, Quantile(sorted, float64(i)/float64(numBins)))
	}

	for i, v := range values {
		if v == 0 {
			continue
		}
		// Count of cut points <= v, shifted past the zero bin.
		idx := sort.Search(len(cuts), func(j int) bool { return cuts[j] > v })
		bins[i] = idx + 1
	}

	return bins
}

// Quantile returns the p-quantile (0 <= p <= 1) of an ascending-sorted
// slice using linear interpolation between closest ranks.
func Quantile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if len(sorted) == 1 {
		return sorted[0]
	}

	rank := p * float64(len(sorted)-1)
	lower := int(rank)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}

	weight := rank - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// CountDistinct returns the number of distinct values in a column.
func CountDistinct(values []float64) int {
	seen := make(map[float64]struct{}, len(values))
	for _, v := range values {
		seen[v] = struct{}{}
	}
	return len(seen)
}
