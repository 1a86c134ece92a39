package stability

import (
	"errors"
	"reflect"
	"testing"
)

func collectCombinations(t *testing.T, n, k int) [][]int {
	t.Helper()

	var out [][]int
	err := forEachCombination(n, k, func(idx []int) bool {
		out = append(out, append([]int(nil), idx...))
		return true
	})
	if err != nil {
		t.Fatalf("forEachCombination(%d, %d) failed: %v", n, k, err)
	}
	return out
}

func TestForEachCombination_LexicographicOrder(t *testing.T) {
	got := collectCombinations(t, 4, 2)
	want := [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestForEachCombination_EdgeSizes(t *testing.T) {
	t.Run("k equals n", func(t *testing.T) {
		got := collectCombinations(t, 3, 3)
		if len(got) != 1 || !reflect.DeepEqual(got[0], []int{0, 1, 2}) {
			t.Errorf("Expected single subset [0 1 2], got %v", got)
		}
	})

	t.Run("k equals 1", func(t *testing.T) {
		got := collectCombinations(t, 3, 1)
		want := [][]int{{0}, {1}, {2}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Expected %v, got %v", want, got)
		}
	})
}

func TestForEachCombination_InvalidK(t *testing.T) {
	for _, k := range []int{0, -2, 5} {
		err := forEachCombination(4, k, func([]int) bool { return true })
		if !errors.Is(err, ErrBadSubsetSize) {
			t.Errorf("Expected ErrBadSubsetSize for k=%d, got %v", k, err)
		}
	}
}

func TestForEachCombination_EarlyStop(t *testing.T) {
	calls := 0
	err := forEachCombination(5, 2, func([]int) bool {
		calls++
		return calls < 3
	})
	if err != nil {
		t.Fatalf("forEachCombination failed: %v", err)
	}
	if calls != 3 {
		t.Errorf("Expected enumeration to stop after 3 calls, got %d", calls)
	}
}

func TestCombinationCount(t *testing.T) {
	tests := []struct {
		n, k, limit int
		want        int
	}{
		{5, 2, 0, 10},
		{10, 5, 0, 252},
		{3, 3, 0, 1},
		{3, 1, 0, 3},
		{4, 0, 0, 1},
		{3, 4, 0, 0},
		{30, 15, 1000, 1001},
	}

	for _, tt := range tests {
		if got := combinationCount(tt.n, tt.k, tt.limit); got != tt.want {
			t.Errorf("combinationCount(%d, %d, %d) = %d, want %d",
				tt.n, tt.k, tt.limit, got, tt.want)
		}
	}
}
