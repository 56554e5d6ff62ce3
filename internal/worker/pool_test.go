package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MeKo-Tech/voxeltex/internal/texture"
)

// mockGenerator records calls and returns canned results per material name.
type mockGenerator struct {
	mu      sync.Mutex
	calls   []string
	failFor map[string]error
	delay   time.Duration
}

func (m *mockGenerator) Generate(ctx context.Context, mat texture.Material, index int) ([]string, error) {
	if m.delay > 0 {
		select {
		case <-time.After(m.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	m.mu.Lock()
	m.calls = append(m.calls, mat.Name)
	m.mu.Unlock()

	if err, ok := m.failFor[mat.Name]; ok {
		return nil, err
	}
	return []string{mat.Name}, nil
}

func (m *mockGenerator) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

func makeTasks(names ...string) []Task {
	tasks := make([]Task, len(names))
	for i, name := range names {
		tasks[i] = Task{Material: texture.Material{Name: name}, Index: i}
	}
	return tasks
}

func TestPoolRunsAllTasks(t *testing.T) {
	gen := &mockGenerator{}
	pool := New(Config{Workers: 4, Generator: gen})

	tasks := makeTasks("stone", "dirt", "water", "lava", "sand")
	results := pool.Run(context.Background(), tasks)

	if len(results) != len(tasks) {
		t.Fatalf("expected %d results, got %d", len(tasks), len(results))
	}
	for _, r := range results {
		if r.Err != nil {
			t.Errorf("task %s failed: %v", r.Task.Material.Name, r.Err)
		}
		if len(r.Slots) != 1 || r.Slots[0] != r.Task.Material.Name {
			t.Errorf("task %s: unexpected slots %v", r.Task.Material.Name, r.Slots)
		}
	}
	if gen.callCount() != len(tasks) {
		t.Errorf("expected %d generator calls, got %d", len(tasks), gen.callCount())
	}
}

func TestPoolEmptyTasks(t *testing.T) {
	pool := New(Config{Workers: 2, Generator: &mockGenerator{}})

	results := pool.Run(context.Background(), nil)
	if results != nil {
		t.Fatalf("expected nil results for empty task list, got %v", results)
	}
}

func TestPoolCollectsErrors(t *testing.T) {
	genErr := errors.New("boom")
	gen := &mockGenerator{failFor: map[string]error{"lava": genErr}}
	pool := New(Config{Workers: 2, Generator: gen})

	results := pool.Run(context.Background(), makeTasks("stone", "lava", "sand"))

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			if r.Task.Material.Name != "lava" {
				t.Errorf("unexpected failure for %s: %v", r.Task.Material.Name, r.Err)
			}
			if !errors.Is(r.Err, genErr) {
				t.Errorf("expected wrapped generator error, got %v", r.Err)
			}
		}
	}
	if failed != 1 {
		t.Fatalf("expected 1 failed result, got %d", failed)
	}
}

func TestPoolReportsProgress(t *testing.T) {
	gen := &mockGenerator{failFor: map[string]error{"dirt": errors.New("boom")}}

	var (
		mu            sync.Mutex
		updates       int
		lastCompleted int
		lastFailed    int
	)
	pool := New(Config{
		Workers:   2,
		Generator: gen,
		OnProgress: func(completed, total, failed int) {
			mu.Lock()
			updates++
			lastCompleted = completed
			lastFailed = failed
			mu.Unlock()
		},
	})

	tasks := makeTasks("stone", "dirt", "water")
	pool.Run(context.Background(), tasks)

	mu.Lock()
	defer mu.Unlock()
	if updates != len(tasks) {
		t.Errorf("expected %d progress updates, got %d", len(tasks), updates)
	}
	if lastCompleted != len(tasks) {
		t.Errorf("expected final completed=%d, got %d", len(tasks), lastCompleted)
	}
	if lastFailed != 1 {
		t.Errorf("expected final failed=1, got %d", lastFailed)
	}
}

func TestPoolCancellation(t *testing.T) {
	gen := &mockGenerator{delay: 50 * time.Millisecond}
	pool := New(Config{Workers: 1, Generator: gen})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results := pool.Run(ctx, makeTasks("stone", "dirt", "water"))

	if len(results) != 3 {
		t.Fatalf("expected a result per task, got %d", len(results))
	}
	for _, r := range results {
		if r.Err == nil {
			t.Errorf("task %s: expected cancellation error", r.Task.Material.Name)
		}
	}
}

func TestPoolCancelledRunAccountsForEveryTask(t *testing.T) {
	tasks := makeTasks("stone", "dirt", "water", "lava", "sand")

	// scheduling between workers and the cancelled context must never
	// drop a task; repeat to shake out ordering-dependent paths
	for i := 0; i < 100; i++ {
		pool := New(Config{Workers: 3, Generator: &mockGenerator{}})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		results := pool.Run(ctx, tasks)
		if len(results) != len(tasks) {
			t.Fatalf("iteration %d: expected %d results, got %d", i, len(tasks), len(results))
		}

		seen := make(map[string]bool, len(results))
		for _, r := range results {
			seen[r.Task.Material.Name] = true
			if r.Err == nil {
				t.Fatalf("iteration %d: task %s completed after cancellation", i, r.Task.Material.Name)
			}
		}
		if len(seen) != len(tasks) {
			t.Fatalf("iteration %d: duplicate or missing tasks in results: %v", i, seen)
		}
	}
}

func TestPoolDefaultsToOneWorker(t *testing.T) {
	pool := New(Config{Workers: 0, Generator: &mockGenerator{}})
	if pool.workers != 1 {
		t.Fatalf("expected 1 worker, got %d", pool.workers)
	}
}
