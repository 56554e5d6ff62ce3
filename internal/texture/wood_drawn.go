package texture

import (
	"image"
	"math/rand"

	"golang.org/x/image/vector"
)

// WoodStyle selects between the two wood generators. Both produce visually
// similar growth rings; "rings" computes a per-texel radial ring index while
// "drawn" rasterizes three concentric ring outlines onto a noise fill.
type WoodStyle string

const (
	WoodRings WoodStyle = "rings"
	WoodDrawn WoodStyle = "drawn"
)

// circle magic constant for approximating a quarter arc with one cubic.
const kappa = 0.5522847498

func appendCircle(z *vector.Rasterizer, cx, cy, r float32, clockwise bool) {
	k := kappa * r
	z.MoveTo(cx+r, cy)
	if clockwise {
		z.CubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
		z.CubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
		z.CubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
		z.CubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	} else {
		z.CubeTo(cx+r, cy-k, cx+k, cy-r, cx, cy-r)
		z.CubeTo(cx-k, cy-r, cx-r, cy-k, cx-r, cy)
		z.CubeTo(cx-r, cy+k, cx-k, cy+r, cx, cy+r)
		z.CubeTo(cx+k, cy+r, cx+r, cy+k, cx+r, cy)
	}
	z.ClosePath()
}

// ringMask rasterizes one-texel-wide ring outlines at the given radii around
// the bitmap center and returns the coverage mask.
func ringMask(radii []float32) *image.Alpha {
	z := vector.NewRasterizer(Size, Size)
	center := float32(Size) / 2
	for _, r := range radii {
		// annulus: outer contour minus reversed inner contour
		appendCircle(z, center, center, r+0.5, true)
		appendCircle(z, center, center, r-0.5, false)
	}

	mask := image.NewAlpha(image.Rect(0, 0, Size, Size))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// generateWoodDrawn fills the bitmap with perturbed base color and then
// overlays three drawn concentric growth rings in a darker shade.
func generateWoodDrawn(rng *rand.Rand, _ int) *Bitmap {
	base := RGB{80, 50, 20}
	darker := base.Darken(15)
	mask := ringMask([]float32{2.5, 4.5, 6.5})

	bm := &Bitmap{}
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if mask.AlphaAt(x, y).A >= 128 {
				bm.Set(x, y, Perturb(darker, 10, rng))
			} else {
				bm.Set(x, y, Perturb(base, 10, rng))
			}
		}
	}
	return bm
}
