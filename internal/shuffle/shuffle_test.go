package shuffle

import (
	"testing"
)

func TestSample_Distinct(t *testing.T) {
	src := NewSeeded(1, 2)

	for trial := 0; trial < 100; trial++ {
		got := src.Sample(10, 4)
		if len(got) != 4 {
			t.Fatalf("Sample(10, 4) returned %d indices, want 4", len(got))
		}
		seen := make(map[int]bool)
		for _, i := range got {
			if i < 0 || i >= 10 {
				t.Fatalf("Sample(10, 4) returned out-of-range index %d", i)
			}
			if seen[i] {
				t.Fatalf("Sample(10, 4) returned duplicate index %d", i)
			}
			seen[i] = true
		}
	}
}

func TestSample_FullSetIsPermutation(t *testing.T) {
	src := NewSeeded(3, 4)

	got := src.Sample(5, 5)
	seen := make(map[int]bool)
	for _, i := range got {
		seen[i] = true
	}
	for i := 0; i < 5; i++ {
		if !seen[i] {
			t.Errorf("Sample(5, 5) missing index %d: %v", i, got)
		}
	}
}

func TestSample_EdgeCases(t *testing.T) {
	src := NewSeeded(5, 6)

	if got := src.Sample(0, 0); len(got) != 0 {
		t.Errorf("Sample(0, 0) = %v, want empty", got)
	}
	if got := src.Sample(7, 0); len(got) != 0 {
		t.Errorf("Sample(7, 0) = %v, want empty", got)
	}
}

func TestSample_PanicsOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Sample(2, 3) did not panic")
		}
	}()
	NewSeeded(7, 8).Sample(2, 3)
}

func TestShuffle_PreservesElements(t *testing.T) {
	src := NewSeeded(9, 10)

	vals := []int{0, 1, 2, 3, 4, 5, 6, 7}
	src.Shuffle(len(vals), func(i, j int) { vals[i], vals[j] = vals[j], vals[i] })

	seen := make(map[int]bool)
	for _, v := range vals {
		seen[v] = true
	}
	if len(seen) != 8 {
		t.Errorf("shuffle lost elements: %v", vals)
	}
}

func TestNewSeeded_Deterministic(t *testing.T) {
	a := NewSeeded(42, 43).Sample(100, 10)
	b := NewSeeded(42, 43).Sample(100, 10)

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed produced different samples: %v vs %v", a, b)
		}
	}
}

// Sampling a single index many times should cover the whole range with
// roughly uniform frequency. A loose bound keeps the test stable.
func TestSample_RoughlyUniform(t *testing.T) {
	src := NewSeeded(11, 12)

	const n = 5
	const trials = 10000
	counts := make([]int, n)
	for i := 0; i < trials; i++ {
		counts[src.Sample(n, 1)[0]]++
	}

	want := trials / n
	for i, c := range counts {
		if c < want/2 || c > want*2 {
			t.Errorf("index %d drawn %d times, expected near %d", i, c, want)
		}
	}
}
