package utils

import "testing"

func TestPRNGReproducible(t *testing.T) {
	a := NewPRNGService(7)
	b := NewPRNGService(7)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("sequences diverged at step %d", i)
		}
	}
}

func TestIntRangeBounds(t *testing.T) {
	rng := NewPRNGService(1)
	for i := 0; i < 1000; i++ {
		v := rng.IntRange(4, 6)
		if v < 4 || v > 6 {
			t.Fatalf("value %d outside [4, 6]", v)
		}
	}
	if got := rng.IntRange(5, 5); got != 5 {
		t.Errorf("degenerate range should return min, got %d", got)
	}
}

func TestChooseWeighted(t *testing.T) {
	rng := NewPRNGService(3)

	if got := rng.ChooseWeighted(nil); got != "" {
		t.Errorf("empty table should give empty id, got %q", got)
	}

	entries := []Weighted{{ID: "a", Weight: 0}, {ID: "b", Weight: 0}}
	if got := rng.ChooseWeighted(entries); got != "a" {
		t.Errorf("zero weights should fall back to first entry, got %q", got)
	}

	only := []Weighted{{ID: "solo", Weight: 3}}
	for i := 0; i < 10; i++ {
		if got := rng.ChooseWeighted(only); got != "solo" {
			t.Fatalf("single entry must always win, got %q", got)
		}
	}

	// При сильно перекошенных весах тяжелый элемент должен доминировать.
	skewed := []Weighted{{ID: "heavy", Weight: 99}, {ID: "light", Weight: 1}}
	heavy := 0
	for i := 0; i < 1000; i++ {
		if rng.ChooseWeighted(skewed) == "heavy" {
			heavy++
		}
	}
	if heavy < 900 {
		t.Errorf("heavy entry chosen only %d/1000 times", heavy)
	}
}
