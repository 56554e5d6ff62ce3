package sink

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sync"
)

// Folder writes each frame as a PNG file into a directory. Existing files
// are skipped unless the sink was created with overwrite set, mirroring how
// the renderer only exports textures it is missing.
type Folder struct {
	dir       string
	overwrite bool

	mu      sync.Mutex
	written []string
	skipped []string
}

// NewFolder creates the output directory and returns a folder sink.
func NewFolder(dir string, overwrite bool) (*Folder, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create texture dir: %w", err)
	}
	return &Folder{dir: dir, overwrite: overwrite}, nil
}

// Store persists one frame under <dir>/<slot>.png.
func (f *Folder) Store(name string, frame int, img *image.RGBA) error {
	path := filepath.Join(f.dir, SlotName(name, frame)+".png")

	if !f.overwrite {
		if _, err := os.Stat(path); err == nil {
			f.mu.Lock()
			f.skipped = append(f.skipped, path)
			f.mu.Unlock()
			return nil
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create texture %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("failed to encode texture %s: %w", path, err)
	}

	f.mu.Lock()
	f.written = append(f.written, path)
	f.mu.Unlock()
	return nil
}

// Written returns the paths written so far.
func (f *Folder) Written() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.written...)
}

// Skipped returns the paths left untouched because they already existed.
func (f *Folder) Skipped() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.skipped...)
}
