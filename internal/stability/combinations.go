package stability

import "fmt"

// combinationCount returns C(n, k), capped at limit+1 when limit > 0 so
// callers can compare against a ceiling without overflowing.
func combinationCount(n, k, limit int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	count := 1
	for i := 1; i <= k; i++ {
		count = count * (n - k + i) / i
		if limit > 0 && count > limit {
			return limit + 1
		}
	}
	return count
}

// forEachCombination calls fn with every size-k subset of {0..n-1}, as
// index slices i1<i2<...<ik in lexicographic order. The slice is reused
// between calls; fn must copy it to retain it. Returning false from fn
// stops the enumeration.
func forEachCombination(n, k int, fn func(idx []int) bool) error {
	if k < 1 || k > n {
		return fmt.Errorf("%w: k=%d with %d logs", ErrBadSubsetSize, k, n)
	}

	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	for {
		if !fn(idx) {
			return nil
		}

		// Advance to the next combination: find the rightmost index that
		// can still move up, bump it, and reset everything after it.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return nil
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
