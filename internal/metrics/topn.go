package metrics

import "sort"

// GroupTopN returns the original indices of the rows that rank among the
// top k within each group when ordered by value. Sorting is stable, so
// ties keep their input row order; that is the documented tie-break. A
// group smaller than k contributes all of its rows; k <= 0 selects
// nothing.
func GroupTopN(groups []string, values []float64, ascending bool, k int) []int {
	if k <= 0 || len(groups) == 0 {
		return []int{}
	}

	order := make([]int, len(groups))
	for i := range order {
		order[i] = i
	}

	sort.SliceStable(order, func(a, b int) bool {
		ia, ib := order[a], order[b]
		if groups[ia] != groups[ib] {
			return groups[ia] < groups[ib]
		}
		if ascending {
			return values[ia] < values[ib]
		}
		return values[ia] > values[ib]
	})

	selected := make([]int, 0, len(order))
	rank := 0
	for pos, idx := range order {
		if pos > 0 && groups[order[pos-1]] != groups[idx] {
			rank = 0
		}
		if rank < k {
			selected = append(selected, idx)
		}
		rank++
	}

	return selected
}
