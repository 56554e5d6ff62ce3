// Package texture implements the procedural 16x16 material textures used by
// the voxel renderer. Every generator fills a fresh bitmap per call; the
// randomness source is always passed in so batch runs can be seeded.
package texture

import "math/rand"

// RGB is a single texel color. There is no alpha channel; textures are
// opaque and the renderer handles transparency per material.
type RGB struct {
	R, G, B uint8
}

func clampChannel(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Perturb shifts all three channels of c by a single uniform draw from
// [-amount, amount]. The shared scalar keeps the hue stable and jitters only
// brightness. amount <= 0 returns c unchanged.
func Perturb(c RGB, amount int, rng *rand.Rand) RGB {
	if amount <= 0 {
		return c
	}
	noise := rng.Intn(2*amount+1) - amount
	return RGB{
		R: clampChannel(int(c.R) + noise),
		G: clampChannel(int(c.G) + noise),
		B: clampChannel(int(c.B) + noise),
	}
}

// Darken subtracts d from every channel, clamping at 0.
func (c RGB) Darken(d int) RGB {
	return RGB{
		R: clampChannel(int(c.R) - d),
		G: clampChannel(int(c.G) - d),
		B: clampChannel(int(c.B) - d),
	}
}

// Brighten adds d to every channel, clamping at 255.
func (c RGB) Brighten(d int) RGB {
	return RGB{
		R: clampChannel(int(c.R) + d),
		G: clampChannel(int(c.G) + d),
		B: clampChannel(int(c.B) + d),
	}
}
