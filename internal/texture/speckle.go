package texture

import "math/rand"

// Override is a low-probability secondary color substitution applied after
// the primary noise fill of a texel.
type Override struct {
	Chance float64
	Apply  func(c RGB, rng *rand.Rand) RGB
}

// SpeckleParams describes a uniform-noise fill: a base color, a perturbation
// amplitude, and an ordered list of override rules. By default the rules
// form an if/else-if chain where the first rule that fires consumes the
// texel; with Independent set, every firing rule is applied in order.
type SpeckleParams struct {
	Base        RGB
	Amount      int
	Overrides   []Override
	Independent bool
}

// speckleFill is the shared shape of most static materials: perturb the base
// color per texel, then roll each override rule.
func speckleFill(p SpeckleParams, rng *rand.Rand) *Bitmap {
	bm := &Bitmap{}
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			c := Perturb(p.Base, p.Amount, rng)
			for _, ov := range p.Overrides {
				if rng.Float64() < ov.Chance {
					c = ov.Apply(c, rng)
					if !p.Independent {
						break
					}
				}
			}
			bm.Set(x, y, c)
		}
	}
	return bm
}

// darkenBy returns an override action that darkens the current texel.
func darkenBy(d int) func(RGB, *rand.Rand) RGB {
	return func(c RGB, _ *rand.Rand) RGB { return c.Darken(d) }
}

// brightenBy returns an override action that brightens the current texel.
func brightenBy(d int) func(RGB, *rand.Rand) RGB {
	return func(c RGB, _ *rand.Rand) RGB { return c.Brighten(d) }
}

// replaceWith returns an override action that ignores the current texel and
// substitutes a fixed color.
func replaceWith(c RGB) func(RGB, *rand.Rand) RGB {
	return func(RGB, *rand.Rand) RGB { return c }
}
