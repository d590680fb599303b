package renderer

import (
	"fmt"
	"image/color"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
	"github.com/df07/go-sdf-raymarcher/pkg/integrator"
	"github.com/df07/go-sdf-raymarcher/pkg/scene"
)

// TileRenderer handles the actual rendering of individual tiles using an integrator.
// It only reads shared state, so one instance serves every worker.
type TileRenderer struct {
	scene      *scene.Scene
	integrator integrator.Integrator
	config     Config
}

// NewTileRenderer creates a new tile renderer with the given scene and integrator
func NewTileRenderer(s *scene.Scene, integratorInst integrator.Integrator, config Config) *TileRenderer {
	return &TileRenderer{
		scene:      s,
		integrator: integratorInst,
		config:     config,
	}
}

// RenderTile shades every pixel of tile into a local buffer. A panic or a
// non-finite color aborts the tile with a *TileError.
func (tr *TileRenderer) RenderTile(tile *Tile) (result TileResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &TileError{TileID: tile.ID, Bounds: tile.Bounds, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	bounds := tile.Bounds
	result = TileResult{
		TileID: tile.ID,
		Pixels: make([]Pixel, 0, bounds.Dx()*bounds.Dy()),
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ray := tr.scene.Camera.GetRay(x, y, tr.config.Width, tr.config.Height)
			sample := tr.integrator.RayColor(ray, tr.scene)

			if !core.IsFinite(sample.Color) {
				return TileResult{}, &TileError{
					TileID: tile.ID,
					Bounds: bounds,
					Err:    fmt.Errorf("pixel (%d, %d) shaded %v: %w", x, y, sample.Color, core.ErrNonFinite),
				}
			}

			result.Stats.AddSample(sample)
			result.Pixels = append(result.Pixels, Pixel{X: x, Y: y, Color: tr.pixelColor(sample)})
		}
	}

	return result, nil
}

func (tr *TileRenderer) pixelColor(sample integrator.RaySample) color.RGBA {
	if tr.config.Alpha && !sample.Hit {
		return color.RGBA{}
	}
	return Quantize(sample.Color, tr.config.Gamma)
}
