package quadtree

import "voxelstream/internal/voxel"

// LoaderConfig mirrors original_source's ChunkLoader component defaults:
// load/unload radii in tree-grid units, and a step function over LOD
// render distances (lod_range[i] is the number of chunks-at-LOD-(i+1)
// within which that LOD or finer is required).
type LoaderConfig struct {
	LoadRange   int
	UnloadRange int
	LodRange    []int // index i = chunks radius for LOD level i+1
}

// DefaultLoaderConfig matches chunk_loader.rs's ChunkLoader::default.
func DefaultLoaderConfig() LoaderConfig {
	return LoaderConfig{
		LoadRange:   8,
		UnloadRange: 10,
		LodRange:    []int{2, 2, 2, 2, 2, 2, 2},
	}
}

// ClosestLod returns the finest LOD level a loader at (loaderX,loaderZ)
// requires for a chunk centered at (chunkX,chunkZ), given chunkSize
// voxels per chunk edge at LOD 1. Ported from ChunkLoader::get_min_lod_for_chunk's
// step-function scan: the first LOD band whose render distance covers
// the chunk wins; falling through every band returns maxLod (coarsest).
// Each band's render distance is scaled by that LOD's own voxel
// multiplier m(L) = 2^(L-1), since a chunk covers proportionally more
// world space the coarser its LOD — without this scaling every band
// collapses to the same physical threshold and the step function skips
// straight from LOD 1 to maxLod.
func (c LoaderConfig) ClosestLod(chunkX, chunkZ, loaderX, loaderZ float64, chunkSize int, maxLod int) int {
	dx := chunkX - loaderX
	dz := chunkZ - loaderZ
	distSq := dx*dx + dz*dz

	for i, radiusChunks := range c.LodRange {
		renderDist := float64(radiusChunks * chunkSize * voxel.Multiplier(i+1))
		if distSq < renderDist*renderDist {
			return i + 1
		}
	}
	return maxLod
}
