package renderer

import (
	"context"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// WorkerPool runs tile tasks on a fixed number of goroutines. Every task is
// queued up front in a channel sized to the task count, so neither workers nor
// the collector can block on a task that was never scheduled.
type WorkerPool struct {
	renderer   *TileRenderer
	numWorkers int
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(renderer *TileRenderer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = 1
	}
	return &WorkerPool{renderer: renderer, numWorkers: numWorkers}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Run renders every tile and passes each result to collect on the calling
// goroutine, in completion order. The first tile error cancels the remaining
// work; collect is not called again after that and the error is returned.
func (wp *WorkerPool) Run(ctx context.Context, tiles []*Tile, collect func(TileResult)) error {
	taskQueue := make(chan *Tile, len(tiles))
	resultQueue := make(chan TileResult, len(tiles))

	for _, tile := range tiles {
		taskQueue <- tile
	}
	close(taskQueue)

	var failed atomic.Bool
	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < min(wp.numWorkers, len(tiles)); i++ {
		g.Go(func() error {
			for tile := range taskQueue {
				// Cancellation is checked between tiles, never inside one
				if err := gctx.Err(); err != nil {
					failed.Store(true)
					return err
				}
				result, err := wp.renderer.RenderTile(tile)
				if err != nil {
					failed.Store(true)
					return err
				}
				resultQueue <- result
			}
			return nil
		})
	}

	done := make(chan error, 1)
	go func() {
		err := g.Wait()
		close(resultQueue)
		done <- err
	}()

	received := 0
	for result := range resultQueue {
		if failed.Load() || ctx.Err() != nil {
			continue // Drain without collecting
		}
		collect(result)
		received++
	}

	if err := <-done; err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if received != len(tiles) {
		return fmt.Errorf("collected %d of %d tiles", received, len(tiles))
	}
	return nil
}
