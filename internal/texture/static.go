package texture

import (
	"math"
	"math/rand"
)

func generateGrassTop(rng *rand.Rand, _ int) *Bitmap {
	return speckleFill(SpeckleParams{
		Base:   RGB{50, 180, 50},
		Amount: 20,
		Overrides: []Override{
			{Chance: 0.15, Apply: darkenBy(30)},
		},
	}, rng)
}

// generateGrassSide splits the bitmap at a fixed row: the top four rows are
// grass, the rest dirt, each band perturbed independently.
func generateGrassSide(rng *rand.Rand, _ int) *Bitmap {
	grass := RGB{50, 180, 50}
	dirt := RGB{130, 80, 40}

	bm := &Bitmap{}
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if y < 4 {
				bm.Set(x, y, Perturb(grass, 15, rng))
			} else {
				bm.Set(x, y, Perturb(dirt, 20, rng))
			}
		}
	}
	return bm
}

func generateDirt(rng *rand.Rand, _ int) *Bitmap {
	return speckleFill(SpeckleParams{
		Base:   RGB{130, 80, 40},
		Amount: 25,
		Overrides: []Override{
			// occasional small pebbles
			{Chance: 0.05, Apply: replaceWith(RGB{90, 90, 90})},
		},
	}, rng)
}

func generateStone(rng *rand.Rand, _ int) *Bitmap {
	return speckleFill(SpeckleParams{
		Base:   RGB{100, 100, 100},
		Amount: 30,
		Overrides: []Override{
			{Chance: 0.1, Apply: darkenBy(40)},
			{Chance: 0.05, Apply: brightenBy(20)},
		},
	}, rng)
}

// generateWoodRings alternates base and darker color by a radial ring index
// derived from the distance to the bitmap center.
func generateWoodRings(rng *rand.Rand, _ int) *Bitmap {
	base := RGB{80, 50, 20}
	darker := base.Darken(15)
	center := float64(Size / 2)

	bm := &Bitmap{}
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			dx := float64(x) - center
			dy := float64(y) - center
			dist := math.Sqrt(dx*dx + dy*dy)

			c := base
			if int(dist*2)%2 != 0 {
				c = darker
			}
			bm.Set(x, y, Perturb(c, 10, rng))
		}
	}
	return bm
}

func generateLeaves(rng *rand.Rand, _ int) *Bitmap {
	return speckleFill(SpeckleParams{
		Base:   RGB{40, 120, 40},
		Amount: 35,
		Overrides: []Override{
			{Chance: 0.15, Apply: darkenBy(25)},
			{Chance: 0.1, Apply: brightenBy(30)},
		},
	}, rng)
}

// generateNetherrack lays darker veins along a fixed modulo diagonal on top
// of a heavy noise fill.
func generateNetherrack(rng *rand.Rand, _ int) *Bitmap {
	base := RGB{150, 50, 50}

	bm := &Bitmap{}
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			c := Perturb(base, 40, rng)
			if (x+y*3)%7 == 0 {
				c = c.Darken(30)
			}
			bm.Set(x, y, c)
		}
	}
	return bm
}

func generateNetherBrick(rng *rand.Rand, _ int) *Bitmap {
	brick := RGB{50, 15, 15}
	mortar := RGB{20, 10, 10}

	bm := &Bitmap{}
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if x%8 == 0 || y%8 == 0 {
				bm.Set(x, y, Perturb(mortar, 5, rng))
			} else {
				bm.Set(x, y, Perturb(brick, 10, rng))
			}
		}
	}
	return bm
}

func generateSoulSand(rng *rand.Rand, _ int) *Bitmap {
	return speckleFill(SpeckleParams{
		Base:   RGB{70, 50, 35},
		Amount: 20,
		Overrides: []Override{
			{Chance: 0.08, Apply: darkenBy(35)},
		},
	}, rng)
}

// generateGlowstone draws a bright base with random brightness jitter plus a
// fixed diagonal crystal lattice that glows a little more.
func generateGlowstone(rng *rand.Rand, _ int) *Bitmap {
	base := RGB{255, 220, 100}

	bm := &Bitmap{}
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			brightness := rng.Intn(41) - 20
			if (x+y)%3 == 0 {
				brightness += 20
			}
			bm.Set(x, y, RGB{
				R: clampChannel(int(base.R) + brightness),
				G: clampChannel(int(base.G) + brightness),
				B: clampChannel(int(base.B) + brightness),
			})
		}
	}
	return bm
}

// facetFill is the shared crystal shape of diamond and emerald: a Manhattan
// distance from center selects one of three brightness tiers, with a rare
// full sparkle on top.
func facetFill(base RGB, amount, brighten, darken int, sparkleChance float64, sparkle RGB, rng *rand.Rand) *Bitmap {
	center := float64(Size) / 2

	bm := &Bitmap{}
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			dx := math.Abs(float64(x) - center)
			dy := math.Abs(float64(y) - center)
			facet := int((dx+dy)*2) % 3

			c := Perturb(base, amount, rng)
			switch facet {
			case 0:
				c = c.Brighten(brighten)
			case 2:
				c = c.Darken(darken)
			}

			if rng.Float64() < sparkleChance {
				c = sparkle
			}
			bm.Set(x, y, c)
		}
	}
	return bm
}

func generateDiamond(rng *rand.Rand, _ int) *Bitmap {
	return facetFill(RGB{180, 230, 255}, 20, 30, 20, 0.05, RGB{255, 255, 255}, rng)
}

func generateEmerald(rng *rand.Rand, _ int) *Bitmap {
	return facetFill(RGB{50, 230, 80}, 25, 40, 25, 0.03, RGB{150, 255, 180}, rng)
}

func generateObsidian(rng *rand.Rand, _ int) *Bitmap {
	return speckleFill(SpeckleParams{
		Base:        RGB{10, 5, 25},
		Amount:      15,
		Independent: true,
		Overrides: []Override{
			// purple veins shift red and blue only
			{Chance: 0.08, Apply: func(c RGB, _ *rand.Rand) RGB {
				return RGB{
					R: clampChannel(int(c.R) + 15),
					G: c.G,
					B: clampChannel(int(c.B) + 40),
				}
			}},
			{Chance: 0.05, Apply: brightenBy(50)},
		},
	}, rng)
}

// generateIce darkens texels on two diagonal crack families, then brightens
// the sparse highlight lattice. The highlight is applied last so it wins
// where both hit the same texel.
func generateIce(rng *rand.Rand, _ int) *Bitmap {
	base := RGB{200, 230, 255}

	bm := &Bitmap{}
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			c := Perturb(base, 15, rng)
			if (x+y)%7 == 0 || (x-y)%9 == 0 {
				c = c.Darken(40)
			}
			if (x*y)%5 == 0 {
				c = c.Brighten(20)
			}
			bm.Set(x, y, c)
		}
	}
	return bm
}

// generateBrick staggers the vertical mortar joints by half a brick every
// other row of bricks.
func generateBrick(rng *rand.Rand, _ int) *Bitmap {
	brick := RGB{150, 80, 60}
	mortar := RGB{180, 180, 180}

	bm := &Bitmap{}
	for y := 0; y < Size; y++ {
		offset := (y / 4) % 2 * 4
		for x := 0; x < Size; x++ {
			if (x+offset)%8 == 0 || y%4 == 0 {
				bm.Set(x, y, Perturb(mortar, 10, rng))
			} else {
				bm.Set(x, y, Perturb(brick, 15, rng))
			}
		}
	}
	return bm
}

func generateSand(rng *rand.Rand, _ int) *Bitmap {
	return speckleFill(SpeckleParams{
		Base:   RGB{210, 180, 140},
		Amount: 18,
		Overrides: []Override{
			{Chance: 0.03, Apply: darkenBy(40)},
		},
	}, rng)
}
