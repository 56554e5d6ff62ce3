package cmd

import (
	"strings"
	"testing"

	"github.com/MeKo-Tech/voxeltex/internal/texture"
)

func TestSelectTasks(t *testing.T) {
	catalog := texture.Catalog(texture.Options{})

	t.Run("all materials by default", func(t *testing.T) {
		tasks, err := selectTasks(catalog, "")
		if err != nil {
			t.Fatalf("selectTasks failed: %v", err)
		}
		if len(tasks) != len(catalog) {
			t.Fatalf("expected %d tasks, got %d", len(catalog), len(tasks))
		}
		for i, task := range tasks {
			if task.Index != i || task.Material.Name != catalog[i].Name {
				t.Fatalf("task %d does not match catalog order: %+v", i, task)
			}
		}
	})

	t.Run("subset keeps catalog indexes", func(t *testing.T) {
		tasks, err := selectTasks(catalog, "water, stone")
		if err != nil {
			t.Fatalf("selectTasks failed: %v", err)
		}
		if len(tasks) != 2 {
			t.Fatalf("expected 2 tasks, got %d", len(tasks))
		}
		for _, task := range tasks {
			// the index pins the derived seed, so it must stay the
			// material's catalog position even in a filtered run
			if catalog[task.Index].Name != task.Material.Name {
				t.Errorf("task %s carries index %d of %s",
					task.Material.Name, task.Index, catalog[task.Index].Name)
			}
		}
	})

	t.Run("unknown material rejected", func(t *testing.T) {
		_, err := selectTasks(catalog, "stone,granite")
		if err == nil {
			t.Fatal("expected error for unknown material")
		}
		if !strings.Contains(err.Error(), "granite") {
			t.Errorf("expected unknown name in error, got %v", err)
		}
	})
}
