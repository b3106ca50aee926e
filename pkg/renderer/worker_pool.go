package renderer

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// TileFunc renders a single tile
type TileFunc func(ctx context.Context, tile Tile) (RenderStats, error)

// WorkerPool manages parallel tile rendering
type WorkerPool struct {
	numWorkers int
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{numWorkers: numWorkers}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Run feeds tiles to the workers and returns the per-tile stats indexed like tiles.
// The first error cancels the remaining work and is returned.
func (wp *WorkerPool) Run(ctx context.Context, tiles []Tile, render TileFunc) ([]RenderStats, error) {
	results := make([]RenderStats, len(tiles))
	g, ctx := errgroup.WithContext(ctx)

	taskQueue := make(chan int)
	g.Go(func() error {
		defer close(taskQueue)
		for i := range tiles {
			select {
			case taskQueue <- i:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for w := 0; w < wp.numWorkers; w++ {
		g.Go(func() error {
			for i := range taskQueue {
				stats, err := render(ctx, tiles[i])
				if err != nil {
					return err
				}
				// Each task owns its own slot
				results[i] = stats
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
