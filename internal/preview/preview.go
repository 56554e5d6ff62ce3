// Package preview enlarges generated textures for visual inspection. The
// source bitmaps are 16x16, so previews use nearest-neighbor resampling to
// keep texel edges crisp.
package preview

import (
	"bytes"
	"fmt"
	"image"
	"os"

	"github.com/disintegration/gift"

	_ "image/png" // Register PNG decoder
)

// Upscale enlarges img by an integer factor with nearest-neighbor
// resampling.
func Upscale(img image.Image, scale int) (*image.RGBA, error) {
	if img == nil {
		return nil, fmt.Errorf("image must not be nil")
	}
	if scale <= 0 {
		return nil, fmt.Errorf("scale must be positive")
	}

	bounds := img.Bounds()
	g := gift.New(gift.Resize(bounds.Dx()*scale, bounds.Dy()*scale, gift.NearestNeighborResampling))

	dst := image.NewRGBA(g.Bounds(bounds))
	g.Draw(dst, img)
	return dst, nil
}

// FromFile decodes a texture image from disk.
func FromFile(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture %s: %w", path, err)
	}
	return img, nil
}

// FromBytes decodes a texture image from encoded data, e.g. a pack blob.
func FromBytes(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode texture data: %w", err)
	}
	return img, nil
}
