package renderer

import (
	"fmt"
	"runtime"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
	"github.com/df07/go-sdf-raymarcher/pkg/integrator"
)

// Config is the immutable description of one render. Camera, lights and geometry
// come from the scene.
type Config struct {
	Width      int // Image width in pixels
	Height     int // Image height in pixels
	TileSize   int // Edge length of square tiles; edge tiles are clipped
	NumWorkers int // Number of parallel workers (0 = use CPU count)

	March   integrator.MarchConfig
	Shading integrator.ShadingConfig

	Gamma float32 // Output gamma (1 = linear)
	Alpha bool    // Write misses as fully transparent pixels
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:      400,
		Height:     400,
		TileSize:   32,
		NumWorkers: 0, // Auto-detect CPU count
		March:      integrator.DefaultMarchConfig(),
		Shading:    integrator.DefaultShadingConfig(),
		Gamma:      1,
	}
}

// Workers returns the effective worker count
func (c Config) Workers() int {
	if c.NumWorkers <= 0 {
		return runtime.NumCPU()
	}
	return c.NumWorkers
}

// Validate checks every option before any work is scheduled
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("image size must be positive, got %dx%d: %w", c.Width, c.Height, core.ErrInvalidParameter)
	}
	if c.TileSize <= 0 {
		return fmt.Errorf("tile size must be positive, got %d: %w", c.TileSize, core.ErrInvalidParameter)
	}
	if c.NumWorkers < 0 {
		return fmt.Errorf("worker count must not be negative, got %d: %w", c.NumWorkers, core.ErrInvalidParameter)
	}
	if !(c.Gamma > 0) {
		return fmt.Errorf("gamma must be > 0, got %g: %w", c.Gamma, core.ErrInvalidParameter)
	}
	if err := c.March.Validate(); err != nil {
		return fmt.Errorf("march config: %w", err)
	}
	if err := c.Shading.Validate(); err != nil {
		return fmt.Errorf("shading config: %w", err)
	}
	return nil
}
