package entropy

import (
	"sort"
	"testing"
)

func TestSeededIsReproducible(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)
	for i := 0; i < 100; i++ {
		if x, y := a.Float(), b.Float(); x != y {
			t.Fatalf("draw %d: expected identical floats, got %v and %v", i, x, y)
		}
	}
}

func TestRangeBounds(t *testing.T) {
	src := NewSeeded(7)
	for i := 0; i < 1000; i++ {
		v := Range(src, 5, 16)
		if v < 5 || v >= 16 {
			t.Fatalf("expected value in [5,16), got %d", v)
		}
	}
	if got := Range(src, 3, 3); got != 3 {
		t.Fatalf("expected empty range to return min, got %d", got)
	}
}

func TestSequenceWrapsAndClamps(t *testing.T) {
	seq := NewSequence(0.1, 1.5, -2)
	want := []float64{0.1, 0.999999, 0, 0.1}
	for i, w := range want {
		if got := seq.Float(); got != w {
			t.Fatalf("draw %d: expected %v, got %v", i, w, got)
		}
	}
	if seq.Drawn() != 4 {
		t.Fatalf("expected 4 draws, got %d", seq.Drawn())
	}
}

func TestIntnDoesNotDrawForSingleton(t *testing.T) {
	seq := NewSequence(0.5)
	if got := Intn(seq, 1); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if seq.Drawn() != 0 {
		t.Fatalf("expected no draw for n=1, got %d", seq.Drawn())
	}
}

func TestPickExtremes(t *testing.T) {
	items := []string{"a", "b", "c"}
	if got := Pick(NewSequence(0), items); got != "a" {
		t.Fatalf("expected first item, got %q", got)
	}
	if got := Pick(NewSequence(0.99), items); got != "c" {
		t.Fatalf("expected last item, got %q", got)
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}
	Shuffle(NewSeeded(3), items)
	sorted := append([]int(nil), items...)
	sort.Ints(sorted)
	for i, v := range sorted {
		if v != i+1 {
			t.Fatalf("shuffle lost or duplicated elements: %v", items)
		}
	}
}

func TestWeightedFirstMatchingBand(t *testing.T) {
	weights := []float64{1, 1, 2}
	cases := []struct {
		draw float64
		want int
	}{
		{0.0, 0},
		{0.24, 0},
		{0.25, 1},
		{0.49, 1},
		{0.5, 2},
		{0.99, 2},
	}
	for _, tc := range cases {
		if got := Weighted(NewSequence(tc.draw), weights); got != tc.want {
			t.Fatalf("draw %v: expected band %d, got %d", tc.draw, tc.want, got)
		}
	}
	if got := Weighted(NewSequence(0.5), []float64{0, 0}); got != 0 {
		t.Fatalf("expected zero weights to fall back to 0, got %d", got)
	}
}

func TestCryptoInRange(t *testing.T) {
	for i := 0; i < 100; i++ {
		v := Crypto{}.Float()
		if v < 0 || v >= 1 {
			t.Fatalf("expected [0,1), got %v", v)
		}
	}
}

func TestNilClientFallsBack(t *testing.T) {
	var c *Client
	if c.Enabled() {
		t.Fatal("expected nil client to be disabled")
	}
	if v := c.Float(); v < 0 || v >= 1 {
		t.Fatalf("expected fallback float in [0,1), got %v", v)
	}
	if NewClient("") != nil {
		t.Fatal("expected nil client for empty key")
	}
}
