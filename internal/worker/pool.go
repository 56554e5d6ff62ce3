// Package worker provides a parallel material-generation worker pool.
package worker

import (
	"context"
	"sync"
	"time"

	"github.com/MeKo-Tech/voxeltex/internal/texture"
)

// Generator renders one material. This matches the signature of
// pipeline.Generator.Generate.
type Generator interface {
	Generate(ctx context.Context, mat texture.Material, index int) ([]string, error)
}

// Task is one material to render. Index is the material's catalog position,
// which also pins its derived seed.
type Task struct {
	Material texture.Material
	Index    int
}

// Result is the outcome of one task.
type Result struct {
	Task    Task
	Slots   []string
	Err     error
	Elapsed time.Duration
}

// ProgressFunc is called after each task completes.
type ProgressFunc func(completed, total, failed int)

// Config configures the worker pool.
type Config struct {
	Workers    int
	Generator  Generator
	OnProgress ProgressFunc
}

// Pool runs material generation tasks in parallel. Materials have no
// ordering dependency on each other; each owns its bitmap and its derived
// randomness stream.
type Pool struct {
	workers    int
	generator  Generator
	onProgress ProgressFunc
}

// New creates a worker pool.
func New(cfg Config) *Pool {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	return &Pool{
		workers:    workers,
		generator:  cfg.Generator,
		onProgress: cfg.OnProgress,
	}
}

// Run executes all tasks and returns their results. It blocks until every
// task has completed or the context is cancelled.
func (p *Pool) Run(ctx context.Context, tasks []Task) []Result {
	if len(tasks) == 0 {
		return nil
	}

	taskCh := make(chan Task, len(tasks))
	resultCh := make(chan Result, len(tasks))

	var (
		completed int
		failed    int
		mu        sync.Mutex
	)

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.worker(ctx, taskCh, resultCh)
		}()
	}

	// taskCh is buffered to hold every task, so the sends cannot block.
	// Cancellation is handled per task by the workers, which still emit a
	// Result for each one; every task is accounted for in the output.
	for _, task := range tasks {
		taskCh <- task
	}
	close(taskCh)

	results := make([]Result, 0, len(tasks))
	done := make(chan struct{})

	go func() {
		for result := range resultCh {
			results = append(results, result)

			mu.Lock()
			completed++
			if result.Err != nil {
				failed++
			}
			c, f := completed, failed
			mu.Unlock()

			if p.onProgress != nil {
				p.onProgress(c, len(tasks), f)
			}
		}
		close(done)
	}()

	wg.Wait()
	close(resultCh)
	<-done

	return results
}

func (p *Pool) worker(ctx context.Context, tasks <-chan Task, results chan<- Result) {
	for task := range tasks {
		select {
		case <-ctx.Done():
			results <- Result{Task: task, Err: ctx.Err()}
			continue
		default:
		}

		start := time.Now()
		slots, err := p.generator.Generate(ctx, task.Material, task.Index)

		results <- Result{
			Task:    task,
			Slots:   slots,
			Err:     err,
			Elapsed: time.Since(start),
		}
	}
}
