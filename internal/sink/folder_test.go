package sink

import (
	"image"
	"os"
	"path/filepath"
	"testing"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 16, 16))
	for i := range img.Pix {
		img.Pix[i] = uint8(i % 251)
	}
	return img
}

func TestSlotName(t *testing.T) {
	cases := []struct {
		name  string
		frame int
		want  string
	}{
		{"stone", StaticFrame, "stone"},
		{"water", 0, "water_0"},
		{"water", 3, "water_3"},
		{"portal", 5, "portal_5"},
	}

	for _, tc := range cases {
		if got := SlotName(tc.name, tc.frame); got != tc.want {
			t.Errorf("SlotName(%q, %d) = %q, want %q", tc.name, tc.frame, got, tc.want)
		}
	}
}

func TestFolderStoreWritesFiles(t *testing.T) {
	dir := t.TempDir()

	f, err := NewFolder(dir, false)
	if err != nil {
		t.Fatalf("NewFolder failed: %v", err)
	}

	if err := f.Store("stone", StaticFrame, testImage()); err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	if err := f.Store("water", 2, testImage()); err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	for _, name := range []string{"stone.png", "water_2.png"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s to exist: %v", name, err)
		}
	}
	if len(f.Written()) != 2 {
		t.Errorf("expected 2 written paths, got %d", len(f.Written()))
	}
}

func TestFolderSkipsExistingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stone.png")
	if err := os.WriteFile(path, []byte("sentinel"), 0o644); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	f, err := NewFolder(dir, false)
	if err != nil {
		t.Fatalf("NewFolder failed: %v", err)
	}
	if err := f.Store("stone", StaticFrame, testImage()); err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}
	if string(data) != "sentinel" {
		t.Error("existing file was overwritten without overwrite set")
	}
	if len(f.Skipped()) != 1 {
		t.Errorf("expected 1 skipped path, got %d", len(f.Skipped()))
	}
}

func TestFolderOverwriteReplacesFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "stone.png")
	if err := os.WriteFile(path, []byte("sentinel"), 0o644); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}

	f, err := NewFolder(dir, true)
	if err != nil {
		t.Fatalf("NewFolder failed: %v", err)
	}
	if err := f.Store("stone", StaticFrame, testImage()); err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file: %v", err)
	}
	if string(data) == "sentinel" {
		t.Error("expected file to be replaced with overwrite set")
	}
	if len(f.Written()) != 1 {
		t.Errorf("expected 1 written path, got %d", len(f.Written()))
	}
}
