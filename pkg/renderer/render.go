package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
	"github.com/df07/go-sdf-raymarcher/pkg/integrator"
	"github.com/df07/go-sdf-raymarcher/pkg/scene"
)

// TileCompletionResult contains information about a completed tile for callbacks
type TileCompletionResult struct {
	TileX     int // Tile coordinates (not pixel coordinates)
	TileY     int
	Bounds    image.Rectangle
	TileImage *image.RGBA // Image data for just this tile

	// Progress information
	TileNumber int // Number of tiles completed so far, including this one
	TotalTiles int // Total number of tiles in the image
}

// Renderer renders one scene with one configuration. Both are read-only once the
// renderer is built, so independent renderers can run concurrently.
type Renderer struct {
	scene      *scene.Scene
	config     Config
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRenderer validates the scene and configuration and prepares a renderer
func NewRenderer(s *scene.Scene, config Config, logger core.Logger) (*Renderer, error) {
	if s == nil {
		return nil, fmt.Errorf("no scene: %w", core.ErrInvalidParameter)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = NewNopLogger()
	}

	return &Renderer{
		scene:      s,
		config:     config,
		integrator: integrator.NewRaymarchingIntegrator(config.March, config.Shading),
		logger:     logger,
	}, nil
}

// Render partitions the image into tiles, shades them on the worker pool and
// assembles the framebuffer. Tiles reach onTile in completion order; the final
// image does not depend on that order or on the worker count. On failure no
// image is returned.
func (r *Renderer) Render(ctx context.Context, onTile func(TileCompletionResult)) (*image.RGBA, RenderStats, error) {
	start := time.Now()
	cfg := r.config

	tiles := NewTileGrid(cfg.Width, cfg.Height, cfg.TileSize)
	pool := NewWorkerPool(NewTileRenderer(r.scene, r.integrator, cfg), cfg.Workers())

	r.logger.Printf("Rendering %q at %dx%d: %d tiles on %d workers...\n",
		r.scene.Name, cfg.Width, cfg.Height, len(tiles), pool.GetNumWorkers())

	// The framebuffer is only touched by the collector
	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	var stats RenderStats
	completed := 0

	err := pool.Run(ctx, tiles, func(result TileResult) {
		for _, p := range result.Pixels {
			img.SetRGBA(p.X, p.Y, p.Color)
		}
		stats.Merge(result.Stats)
		completed++

		if onTile != nil {
			tile := tiles[result.TileID]
			onTile(TileCompletionResult{
				TileX:      tile.Bounds.Min.X / cfg.TileSize,
				TileY:      tile.Bounds.Min.Y / cfg.TileSize,
				Bounds:     tile.Bounds,
				TileImage:  extractTileImage(img, tile.Bounds),
				TileNumber: completed,
				TotalTiles: len(tiles),
			})
		}
	})
	if err != nil {
		r.logger.Printf("Render of %q failed: %v\n", r.scene.Name, err)
		return nil, RenderStats{}, err
	}

	stats.Finalize()
	stats.Elapsed = time.Since(start)
	r.logger.Printf("Render complete in %v: %.1f%% hits, %.1f avg steps, %d max steps\n",
		stats.Elapsed, 100*stats.HitRatio(), stats.AverageSteps, stats.MaxSteps)

	return img, stats, nil
}

// extractTileImage copies bounds out of the framebuffer into a tile-sized image
func extractTileImage(img *image.RGBA, bounds image.Rectangle) *image.RGBA {
	tileImage := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		src := img.PixOffset(bounds.Min.X, y)
		dst := tileImage.PixOffset(0, y-bounds.Min.Y)
		copy(tileImage.Pix[dst:dst+4*bounds.Dx()], img.Pix[src:src+4*bounds.Dx()])
	}
	return tileImage
}

// Render is a convenience wrapper that renders s with config and no logging
func Render(ctx context.Context, s *scene.Scene, config Config) (*image.RGBA, error) {
	r, err := NewRenderer(s, config, nil)
	if err != nil {
		return nil, err
	}
	img, _, err := r.Render(ctx, nil)
	return img, err
}
