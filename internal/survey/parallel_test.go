package survey

import (
	"sync/atomic"
	"testing"
)

func TestParallelForCoversRange(t *testing.T) {
	const n = 10000
	hits := make([]int32, n)
	ParallelFor(n, 64, func(start, end int) {
		for i := start; i < end; i++ {
			atomic.AddInt32(&hits[i], 1)
		}
	})
	for i, h := range hits {
		if h != 1 {
			t.Fatalf("index %d visited %d times", i, h)
		}
	}
}

func TestParallelForSmallRangeInline(t *testing.T) {
	var calls int32
	ParallelFor(10, 64, func(start, end int) {
		atomic.AddInt32(&calls, 1)
		if start != 0 || end != 10 {
			t.Fatalf("inline run got [%d,%d), want [0,10)", start, end)
		}
	})
	if calls != 1 {
		t.Fatalf("inline run called %d times", calls)
	}
}

func TestParallelForZero(t *testing.T) {
	ParallelFor(0, 64, func(start, end int) {
		if start != end {
			t.Fatal("zero range must not iterate")
		}
	})
}
