// Package sink persists generated texture bitmaps, either as PNG files in a
// directory or inside a SQLite texture-pack archive.
package sink

import (
	"fmt"
	"image"
)

// StaticFrame marks a texture without animation frames; the stored slot name
// carries no frame suffix.
const StaticFrame = -1

// Sink receives finished frames. Implementations must be safe for
// concurrent use; the worker pool stores from multiple goroutines.
type Sink interface {
	Store(name string, frame int, img *image.RGBA) error
}

// SlotName returns the output slot a frame is persisted under: the material
// name alone for static textures, name_<frame> for animated ones.
func SlotName(name string, frame int) string {
	if frame < 0 {
		return name
	}
	return fmt.Sprintf("%s_%d", name, frame)
}
