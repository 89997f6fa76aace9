package louvain

import (
	"sort"
	"sync"
	"testing"
)

func TestParallelForVisitsEveryIndexOnce(t *testing.T) {
	for _, workers := range []int{1, 2, 4, 7} {
		n := 23
		var mu sync.Mutex
		seen := make([]int, 0, n)

		parallelFor(n, workers, func(_, i int) {
			mu.Lock()
			seen = append(seen, i)
			mu.Unlock()
		})

		sort.Ints(seen)
		if len(seen) != n {
			t.Fatalf("workers=%d: visited %d indices, want %d", workers, len(seen), n)
		}
		for i, v := range seen {
			if v != i {
				t.Fatalf("workers=%d: seen=%v, want 0..%d", workers, seen, n-1)
			}
		}
	}
}

func TestParallelForEmptyRange(t *testing.T) {
	called := false
	parallelFor(0, 4, func(_, _ int) { called = true })
	if called {
		t.Fatal("body called for empty range")
	}
}

func TestParallelForSingleWorkerIsSequential(t *testing.T) {
	var order []int
	parallelFor(5, 1, func(_, i int) { order = append(order, i) })
	for i, v := range order {
		if v != i {
			t.Fatalf("order=%v, want strictly sequential 0..4", order)
		}
	}
}
