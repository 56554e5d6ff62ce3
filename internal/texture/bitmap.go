package texture

import (
	"image"
	"time"
)

// Size is the fixed edge length of every texture this package produces.
// The renderer assumes 16x16 and tiles from there.
const Size = 16

// Bitmap is a 16x16 row-major grid of texels. A generator assigns every
// coordinate exactly once per pass; the zero value is all black.
type Bitmap struct {
	pix [Size * Size]RGB
}

// Set assigns the texel at (x, y).
func (b *Bitmap) Set(x, y int, c RGB) {
	b.pix[y*Size+x] = c
}

// At returns the texel at (x, y).
func (b *Bitmap) At(x, y int) RGB {
	return b.pix[y*Size+x]
}

// RGBA exports the bitmap as an opaque image for encoding.
func (b *Bitmap) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, Size, Size))
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			c := b.At(x, y)
			i := img.PixOffset(x, y)
			img.Pix[i] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = 255
		}
	}
	return img
}

// TextureSet is the ordered frame sequence of one material. Static
// materials have a single frame; animated ones carry the frame hold time
// the renderer cycles with.
type TextureSet struct {
	Name          string
	Frames        []*Bitmap
	FrameDuration time.Duration
}

// Animated reports whether the set has more than one frame.
func (s *TextureSet) Animated() bool {
	return len(s.Frames) > 1
}
