package voxel

import (
	"math"

	"voxelstream/internal/blocktype"
	"voxelstream/internal/country"
	"voxelstream/internal/ivec"
	"voxelstream/internal/noisefield"
)

// Multiplier returns a chunk's physical voxel scale at a given LOD level
// (1-indexed, 1 = finest), ported from original_source's
// ChunkLod::multiplier_i32 (2^(lod-1)).
func Multiplier(lod int) int {
	if lod < 1 {
		lod = 1
	}
	return 1 << (lod - 1)
}

// Params bundles everything Generate needs to fill one chunk, read-only
// and safe to share across worker goroutines.
type Params struct {
	Coord        ivec.IVec3 // chunk-space coordinate (world voxel = Coord * Size * multiplier)
	Lod          int
	Field        *noisefield.Field
	Country      *country.Data
	Seed         int64
	CavesEnabled bool
	SeaLevel     int
	SnowLine     int
	Blueprints   *Loader
}

// Generate fills a Grid with terrain, then stamps structures from the
// country tile whose footprint overlaps this chunk. Returns the grid,
// the minimum world-space Y this chunk's column span starts at (used by
// the mesher to offset vertex positions, per mesh_generation.rs's
// min_height), and whether terrain still extends above the grid's top
// (used by the quadtree to decide whether to stack another chunk above).
//
// min_height is the floor of the column minimum sampled over this
// chunk's XZ footprint, not a fixed multiple of the chunk's Y stack
// index: the bottom chunk of a column sits right at the terrain floor
// rather than at world Y=0, so a column only needs as many chunks
// stacked above it as the terrain's actual height requires. Because the
// height field is a function of XZ alone, the column minimum is the
// same at every stack index, so adding Coord.Y*Size*mult on top of it
// keeps every chunk in the column aligned to the one below it.
func Generate(p Params) (grid *Grid, minHeight int, extendsAbove bool) {
	grid = NewGrid()
	mult := Multiplier(p.Lod)

	originX := p.Coord.X * Size * mult
	originZ := p.Coord.Z * Size * mult

	type columnSample struct {
		surface, slope float64
	}
	samples := make([]columnSample, padded*padded)

	minSurface := math.Inf(1)
	maxSurface := math.Inf(-1)
	for lx := 0; lx < padded; lx++ {
		wx := originX + (lx-1)*mult
		for lz := 0; lz < padded; lz++ {
			wz := originZ + (lz-1)*mult

			surface := p.Field.Height(float64(wx), float64(wz))
			slope := p.Field.Slope(float64(wx), float64(wz))
			samples[lx*padded+lz] = columnSample{surface: surface, slope: slope}
			if surface < minSurface {
				minSurface = surface
			}
			if surface > maxSurface {
				maxSurface = surface
			}
		}
	}

	originY := int(math.Floor(minSurface)) + p.Coord.Y*Size*mult

	for lx := 0; lx < padded; lx++ {
		wx := originX + (lx-1)*mult
		for lz := 0; lz < padded; lz++ {
			wz := originZ + (lz-1)*mult
			s := samples[lx*padded+lz]

			for ly := 0; ly < padded; ly++ {
				wy := originY + (ly-1)*mult

				block := noisefield.SelectBlock(float64(wy), s.surface, s.slope, p.SeaLevel, p.SnowLine)
				if block != blocktype.Air && p.CavesEnabled && float64(wy) < s.surface-1 {
					d := p.Field.Density(float64(wx), float64(wy), float64(wz))
					if d < -0.35 {
						block = blocktype.Air
					}
				}
				if wy == 0 {
					block = blocktype.Bedrock
				}
				grid.Set(lx, ly, lz, block)
			}
		}
	}

	if p.Country != nil {
		stampStructures(grid, p, originX, originY, originZ, mult)
	}

	extendsAbove = int(math.Floor(maxSurface)) > originY+Size*mult
	return grid, originY, extendsAbove
}

func stampStructures(grid *Grid, p Params, originX, originY, originZ, mult int) {
	span := Size * mult
	for _, s := range p.Country.Structures {
		if s.Origin.X < originX-64 || s.Origin.X > originX+span+64 {
			continue
		}
		if s.Origin.Z < originZ-64 || s.Origin.Z > originZ+span+64 {
			continue
		}

		switch s.Kind {
		case country.StructureTree, country.StructureOak:
			StampTree(grid, s, originX, originY, originZ, mult)
		case country.StructureBlueprint:
			if p.Blueprints == nil {
				continue
			}
			bp, err := p.Blueprints.Load(s.BlueprintName)
			if err != nil {
				continue
			}
			StampBlueprint(grid, bp, s, originX, originY, originZ, mult)
		}
	}
}
