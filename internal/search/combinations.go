package search

// Combinations builds every size-k subset of [0, n) in lexicographic order.
// The subset's position in the returned slice is its enumeration index, which
// downstream reductions use as the deterministic tie-breaker.
func Combinations(n, k int) [][]int {
	if k < 0 || k > n {
		return nil
	}
	subsets := make([][]int, 0, binomial(n, k))
	combinations(n, k, 0, make([]int, 0, k), &subsets)
	return subsets
}

func combinations(n, k, next int, current []int, subsets *[][]int) {
	if len(current) == k {
		subset := make([]int, k)
		copy(subset, current)
		*subsets = append(*subsets, subset)
		return
	}

	// Stop descending once the remaining elements cannot fill the subset
	for i := next; n-i >= k-len(current); i++ {
		combinations(n, k, i+1, append(current, i), subsets)
	}
}

func binomial(n, k int) int {
	if k > n-k {
		k = n - k
	}
	result := 1
	for i := 0; i < k; i++ {
		result = result * (n - i) / (i + 1)
	}
	return result
}
