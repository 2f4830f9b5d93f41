package core_test

import (
	"testing"

	"github.com/vovakirdan/firebreak/internal/games/firebreak/core"
)

func TestRNGSameSeedSameSequence(t *testing.T) {
	for _, seed := range []int64{0, 1, -1, 42, 1 << 40} {
		a := core.NewRNG(seed)
		b := core.NewRNG(seed)
		for i := 0; i < 1000; i++ {
			if x, y := a.Float(), b.Float(); x != y {
				t.Fatalf("seed %d: step %d diverged: %v != %v", seed, i, x, y)
			}
		}
	}
}

func TestRNGDifferentSeedsDiffer(t *testing.T) {
	a := core.NewRNG(1)
	b := core.NewRNG(2)

	same := 0
	for i := 0; i < 100; i++ {
		if a.Next() == b.Next() {
			same++
		}
	}
	if same == 100 {
		t.Error("seeds 1 and 2 produced identical sequences")
	}
}

func TestRNGFloatRange(t *testing.T) {
	r := core.NewRNG(12345)
	for i := 0; i < 10000; i++ {
		f := r.Float()
		if f < 0 || f >= 1 {
			t.Fatalf("Float() = %v, want [0,1)", f)
		}
	}
}

func TestRNGIntn(t *testing.T) {
	r := core.NewRNG(99)
	seen := make(map[int]bool)
	for i := 0; i < 5000; i++ {
		n := r.Intn(8)
		if n < 0 || n >= 8 {
			t.Fatalf("Intn(8) = %d, out of range", n)
		}
		seen[n] = true
	}
	if len(seen) != 8 {
		t.Errorf("Intn(8) hit %d distinct values in 5000 draws, want 8", len(seen))
	}
}

func TestRNGIntnMatchesFloat(t *testing.T) {
	a := core.NewRNG(7)
	b := core.NewRNG(7)
	for i := 0; i < 100; i++ {
		want := int(a.Float() * 13)
		if got := b.Intn(13); got != want {
			t.Fatalf("Intn(13) = %d, want floor(Float()*13) = %d", got, want)
		}
	}
}

func TestRNGIntnNonPositive(t *testing.T) {
	r := core.NewRNG(1)
	if got := r.Intn(0); got != 0 {
		t.Errorf("Intn(0) = %d, want 0", got)
	}
	if got := r.Intn(-3); got != 0 {
		t.Errorf("Intn(-3) = %d, want 0", got)
	}
}

func TestRNGSeed(t *testing.T) {
	if got := core.NewRNG(-17).Seed(); got != -17 {
		t.Errorf("Seed() = %d, want -17", got)
	}
}
