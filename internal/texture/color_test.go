package texture

import (
	"math/rand"
	"testing"
)

func TestPerturbZeroAmountIsIdentity(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	c := RGB{10, 200, 255}
	got := Perturb(c, 0, rng)
	if got != c {
		t.Fatalf("expected identity for amount=0, got %v", got)
	}
}

func TestPerturbStaysWithinBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		c := RGB{uint8(rng.Intn(256)), uint8(rng.Intn(256)), uint8(rng.Intn(256))}
		amount := rng.Intn(300)
		got := Perturb(c, amount, rng)

		// uint8 guarantees [0,255]; check the pre-clamp delta instead
		for _, pair := range [][2]int{
			{int(c.R), int(got.R)},
			{int(c.G), int(got.G)},
			{int(c.B), int(got.B)},
		} {
			delta := pair[1] - pair[0]
			if delta > amount || delta < -amount {
				// clamping can only shrink the delta, never grow it
				t.Fatalf("channel moved by %d with amount %d (%v -> %v)", delta, amount, c, got)
			}
		}
	}
}

func TestPerturbAppliesOneScalarToAllChannels(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	// channels far enough from the bounds that clamping cannot hit
	c := RGB{100, 130, 160}
	for i := 0; i < 200; i++ {
		got := Perturb(c, 30, rng)
		dr := int(got.R) - int(c.R)
		dg := int(got.G) - int(c.G)
		db := int(got.B) - int(c.B)
		if dr != dg || dg != db {
			t.Fatalf("expected one shared scalar, got deltas %d/%d/%d", dr, dg, db)
		}
	}
}

func TestDarkenBrightenClamp(t *testing.T) {
	if got := (RGB{10, 10, 10}).Darken(40); got != (RGB{0, 0, 0}) {
		t.Errorf("Darken did not clamp at 0: %v", got)
	}
	if got := (RGB{250, 250, 250}).Brighten(40); got != (RGB{255, 255, 255}) {
		t.Errorf("Brighten did not clamp at 255: %v", got)
	}
}
