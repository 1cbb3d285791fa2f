package generation

import (
	"github.com/aquilax/go-perlin"
)

// HeightMap samples a world-space height at an (x, z) position. The mesh
// builders take these as plain functions so they stay independent of how
// the heights are produced.
type HeightMap func(x, z float64) float64

// FlatHeight returns a height map with the same value everywhere.
func FlatHeight(height float64) HeightMap {
	return func(x, z float64) float64 {
		return height
	}
}

// PerlinHeight returns a deterministic Perlin-noise height map: base plus
// noise scaled by amplitude, sampled at frequency. Each seed yields its own
// independent field.
func PerlinHeight(base, amplitude, frequency float64, seed int64) HeightMap {
	p := perlin.NewPerlin(2, 2, 3, seed)
	return func(x, z float64) float64 {
		return base + amplitude*p.Noise2D(x*frequency, z*frequency)
	}
}
