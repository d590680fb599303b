package renderer

import (
	"time"

	"github.com/df07/go-sdf-raymarcher/pkg/integrator"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels  int           // Total number of pixels rendered
	Hits         int           // Primary rays that hit a surface
	Misses       int           // Primary rays that fell through to the background
	TotalSteps   int           // March steps summed over all primary rays
	AverageSteps float64       // Average march steps per pixel
	MaxSteps     int           // Most steps any single primary ray took
	Elapsed      time.Duration // Wall time of the whole render
}

// AddSample records one primary ray
func (rs *RenderStats) AddSample(sample integrator.RaySample) {
	rs.TotalPixels++
	if sample.Hit {
		rs.Hits++
	} else {
		rs.Misses++
	}
	rs.TotalSteps += sample.Steps
	rs.MaxSteps = max(rs.MaxSteps, sample.Steps)
}

// Merge folds the counters of another tile into rs
func (rs *RenderStats) Merge(other RenderStats) {
	rs.TotalPixels += other.TotalPixels
	rs.Hits += other.Hits
	rs.Misses += other.Misses
	rs.TotalSteps += other.TotalSteps
	rs.MaxSteps = max(rs.MaxSteps, other.MaxSteps)
}

// Finalize computes the derived averages
func (rs *RenderStats) Finalize() {
	if rs.TotalPixels > 0 {
		rs.AverageSteps = float64(rs.TotalSteps) / float64(rs.TotalPixels)
	}
}

// HitRatio returns the fraction of primary rays that hit geometry
func (rs RenderStats) HitRatio() float64 {
	if rs.TotalPixels == 0 {
		return 0
	}
	return float64(rs.Hits) / float64(rs.TotalPixels)
}
