package texture

import (
	"math"
	"math/rand"

	"github.com/aquilax/go-perlin"
)

func clampRange(v, lo, hi int) uint8 {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return uint8(v)
}

// generateWater shifts a diagonal band pattern by two texels per frame. The
// wave term is additive only, so the base color is the darkest texel.
func generateWater(_ *rand.Rand, frame int) *Bitmap {
	base := RGB{30, 80, 200}
	offset := frame * 2

	bm := &Bitmap{}
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			wave := ((x + offset + y) % 4) * 8
			bm.Set(x, y, RGB{
				R: clampChannel(int(base.R) + wave),
				G: clampChannel(int(base.G) + wave),
				B: clampChannel(int(base.B) + wave),
			})
		}
	}
	return bm
}

// generateLava maps a per-texel flow scalar onto three color ramps running
// from yellow-orange down to deep red, with occasional bright bubbles.
func generateLava(rng *rand.Rand, frame int) *Bitmap {
	offset := frame * 3

	bm := &Bitmap{}
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			flow := float64((x*3+y*7+offset)%12) / 12.0

			var c RGB
			switch {
			case flow < 0.3:
				c = RGB{255, clampChannel(100 + int(flow*200)), clampChannel(int(flow * 50))}
			case flow < 0.7:
				c = RGB{255, clampChannel(180 - int(flow*100)), 0}
			default:
				c = RGB{clampChannel(200 + int(flow*55)), 80, 0}
			}

			if rng.Float64() < 0.05 {
				c = RGB{255, 200, 50}
			}
			bm.Set(x, y, c)
		}
	}
	return bm
}

// generatePortal combines a radial wave and an angular swirl, both phased by
// the frame index, into channel formulas clamped to a purple/violet band.
func generatePortal(_ *rand.Rand, frame int) *Bitmap {
	phase := float64(frame) * math.Pi / 3
	center := float64(Size) / 2

	bm := &Bitmap{}
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			dx := float64(x) - center
			dy := float64(y) - center
			dist := math.Sqrt(dx*dx + dy*dy)
			angle := math.Atan2(dy, dx)

			wave := math.Sin(dist*0.8+phase) * 50
			swirl := math.Sin(angle*3+phase) * 30

			bm.Set(x, y, RGB{
				R: clampRange(int(128+wave+swirl), 80, 220),
				G: clampRange(int(wave/3+swirl/2), 0, 120),
				B: clampRange(int(200+wave+swirl), 150, 255),
			})
		}
	}
	return bm
}

// generateClouds lays thresholded octave noise as white cloud cover over a
// vertical sky gradient. The frame index advances the noise field's third
// dimension so the cover drifts across frames.
func generateClouds(rng *rand.Rand, frame int) *Bitmap {
	zenith := RGB{51, 102, 242}
	horizon := RGB{128, 179, 255}

	const (
		scale     = 6.0
		threshold = 0.5
		maxCover  = 0.7
	)

	p := perlin.NewPerlin(2.0, 2.0, 3, rng.Int63())
	z := float64(frame)*0.35 + 0.1

	bm := &Bitmap{}
	for y := 0; y < Size; y++ {
		t := float64(y) / float64(Size-1)
		sky := RGB{
			R: uint8(float64(zenith.R) + t*float64(int(horizon.R)-int(zenith.R))),
			G: uint8(float64(zenith.G) + t*float64(int(horizon.G)-int(zenith.G))),
			B: uint8(float64(zenith.B) + t*float64(int(horizon.B)-int(zenith.B))),
		}
		for x := 0; x < Size; x++ {
			density := (p.Noise3D(float64(x)/scale, float64(y)/scale, z) + 1) / 2

			c := sky
			if density > threshold {
				cover := math.Pow((density-threshold)/(1-threshold), 1.5)
				if cover > maxCover {
					cover = maxCover
				}
				c = RGB{
					R: clampChannel(int(float64(c.R)*(1-cover) + 255*cover)),
					G: clampChannel(int(float64(c.G)*(1-cover) + 255*cover)),
					B: clampChannel(int(float64(c.B)*(1-cover) + 255*cover)),
				}
			}
			bm.Set(x, y, c)
		}
	}
	return bm
}
