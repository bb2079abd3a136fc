// Package quadtree implements the per-tree LOD quadtree: an
// arena-of-nodes-by-handle structure that subdivides toward an
// observer's required LOD each tick (ascending, leaves only) and merges
// a branch back into a leaf once no observer needs it finer than its own
// LOD (descending, branches only); child readiness only decides when the
// branch's own mesh is hidden, not whether it merges. Grounded on original_source's chunk_loading package
// (chunk_node.rs's recurse_chunk_nodes subdivide pass, quad_tree_data.rs's
// child_count-gated merge/despawn), restructured onto a handle-indexed
// slice instead of ECS components.
package quadtree

import "voxelstream/internal/ivec"

// LodPosition locates a node within one tree: Lod is coarseness (higher
// = coarser, matching original_source's ChunkLod ordering), X/Z are the
// node's coordinate in units of chunks-at-this-lod relative to the
// tree's root.
type LodPosition struct {
	Lod int
	X, Z int
}

// Quadrant enumerates a node's four children in the order bottom-left
// (-x-z), bottom-right (+x-z), top-left (-x+z), top-right (+x+z), the
// same four quadrants chunk_node.rs's ChunkNodeChildren names.
type Quadrant int

const (
	QuadBottomLeft Quadrant = iota
	QuadBottomRight
	QuadTopLeft
	QuadTopRight
)

var quadrants = [4]struct{ dx, dz int }{
	QuadBottomLeft:  {0, 0},
	QuadBottomRight: {1, 0},
	QuadTopLeft:     {0, 1},
	QuadTopRight:    {1, 1},
}

// Child returns the LodPosition of the given quadrant one LOD level
// finer than p.
func (p LodPosition) Child(q Quadrant) LodPosition {
	off := quadrants[q]
	return LodPosition{Lod: p.Lod - 1, X: p.X*2 + off.dx, Z: p.Z*2 + off.dz}
}

// Parent returns the LodPosition one LOD level coarser that contains p.
func (p LodPosition) Parent() LodPosition {
	return LodPosition{Lod: p.Lod + 1, X: ivec.FloorDiv(p.X, 2), Z: ivec.FloorDiv(p.Z, 2)}
}

// AbsoluteChunk converts a tree-relative LodPosition into an absolute
// chunk coordinate given the tree's origin (in tree-grid units), mirroring
// chunk_pos.rs's AbsoluteChunkPos::to_absolute.
func (p LodPosition) AbsoluteChunk(treeOrigin ivec.IVec2) ivec.IVec2 {
	return ivec.IVec2{X: treeOrigin.X + p.X, Z: treeOrigin.Z + p.Z}
}

// CenterWorld returns the world-space XZ center of the chunk this
// position covers, in voxel units, used by closestLod distance checks.
func (p LodPosition) CenterWorld(treeOrigin ivec.IVec2, chunkSize int) (float64, float64) {
	abs := p.AbsoluteChunk(treeOrigin)
	lod := p.Lod
	if lod < 1 {
		lod = 1
	}
	mult := float64(uint64(1) << uint(lod-1))
	span := float64(chunkSize) * mult
	return (float64(abs.X) + 0.5) * span, (float64(abs.Z) + 0.5) * span
}
