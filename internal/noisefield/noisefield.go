// Package noisefield computes the deterministic terrain height field
// h(x,z) and 3D density field d(x,y,z) that voxel generation samples.
// Built on github.com/aquilax/go-perlin the way SoftbearStudios-mk48's
// server/terrain/noise package layers several perlin.Perlin instances at
// different frequencies and mixes them with a low-frequency "zone" term.
package noisefield

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// Field holds the seeded noise generators for one world seed. All methods
// are safe for concurrent read-only use by generation workers; nothing
// here is mutated after New returns.
type Field struct {
	seed int64

	height   *perlin.Perlin // base terrain height, mid frequency
	warp     *perlin.Perlin // domain-warp offset field
	mask     *perlin.Perlin // low-frequency structure/biome placement mask
	density  *perlin.Perlin // 3D cave/overhang density
	roughness *perlin.Perlin // per-region roughness modulator
}

const (
	heightFrequency    = 0.004
	warpFrequency      = 0.0015
	warpStrength       = 12.0
	roughnessFrequency = 0.0009
	maskFrequency      = 0.02
	densityFrequency   = 0.02

	baseAmplitude = 40.0
	baseLevel     = 64.0
)

// New builds the field's noise generators from a single world seed, each
// offset by a distinct constant so the layers don't correlate.
func New(seed int64) *Field {
	return &Field{
		seed:      seed,
		height:    perlin.NewPerlin(2.0, 2.0, 4, seed),
		warp:      perlin.NewPerlin(2.0, 2.0, 3, seed+1),
		mask:      perlin.NewPerlin(1.5, 2.0, 2, seed+2),
		density:   perlin.NewPerlin(2.0, 2.0, 4, seed+3),
		roughness: perlin.NewPerlin(1.5, 2.0, 2, seed+4),
	}
}

// Seed returns the world seed this field was built from.
func (f *Field) Seed() int64 { return f.seed }

// Height returns the terrain surface height h(x,z), in voxel units,
// including domain warp and a low-frequency roughness modulator.
func (f *Field) Height(x, z float64) float64 {
	wx := x + f.warp.Noise2D(x*warpFrequency, z*warpFrequency)*warpStrength
	wz := z + f.warp.Noise2D(x*warpFrequency+100, z*warpFrequency+100)*warpStrength

	roughness := clamp01(f.roughness.Noise2D(x*roughnessFrequency, z*roughnessFrequency)*0.5+0.5)
	amplitude := baseAmplitude * (0.35 + roughness)

	h := f.height.Noise2D(wx*heightFrequency, wz*heightFrequency)
	h += 0.5 * f.height.Noise2D(wx*heightFrequency*2.3, wz*heightFrequency*2.3)
	h /= 1.5

	return baseLevel + h*amplitude
}

// Density returns the raw 3D cave/overhang noise at a point. voxel.Generate
// carves air where it is below -0.35, only more than one voxel under the
// surface, and only when engineconfig's CavesEnabled flag is set.
func (f *Field) Density(x, y, z float64) float64 {
	n := f.density.Noise3D(x*densityFrequency, y*densityFrequency*1.6, z*densityFrequency)
	// no depth bias is applied here; the noise value is returned as is
	return n
}

// StructureMask returns a low-frequency value in [0,1] used to gate
// structure placement candidates (Poisson-disk-like thinning), following
// generation_options.rs's seeded Value-noise structure mask.
func (f *Field) StructureMask(x, z float64) float64 {
	return clamp01(f.mask.Noise2D(x*maskFrequency, z*maskFrequency)*0.5 + 0.5)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
