package renderer

import (
	"fmt"
	"image"
	"image/color"
)

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID     int             // Unique tile identifier, row-major
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
}

// NewTileGrid creates a grid of tiles covering the entire image. Edge tiles are
// clipped so every pixel belongs to exactly one tile.
func NewTileGrid(width, height, tileSize int) []*Tile {
	if width <= 0 || height <= 0 || tileSize <= 0 {
		return nil
	}

	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize
	tiles := make([]*Tile, 0, tilesX*tilesY)

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width)
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, &Tile{
				ID:     len(tiles),
				Bounds: image.Rect(x0, y0, x1, y1),
			})
		}
	}

	return tiles
}

// Pixel is one shaded pixel in image coordinates
type Pixel struct {
	X, Y  int
	Color color.RGBA
}

// TileResult is what a worker hands to the collector
type TileResult struct {
	TileID int
	Pixels []Pixel
	Stats  RenderStats
}

// TileError reports which tile aborted a render
type TileError struct {
	TileID int
	Bounds image.Rectangle
	Err    error
}

func (e *TileError) Error() string {
	return fmt.Sprintf("tile %d %v: %v", e.TileID, e.Bounds, e.Err)
}

func (e *TileError) Unwrap() error {
	return e.Err
}
