// Package mesh builds greedy-meshed, ambient-occlusion-shaded triangle
// geometry from a voxel.Grid. The merge-loop structure runs a per-axis
// mask with width/height expansion and mask clearing; the ambient-occlusion
// corner sampling, diagonal-selection rule, and vertex position/UV
// transform follow original_source's mesh_generation.rs and
// ambient_occlusion.rs.
package mesh

// Mesh holds unpacked vertex attributes and a triangle index list. There
// is no GPU upload path to economize bits for here, so plain
// float32/uint32 slices are the natural CPU-side geometry buffer.
type Mesh struct {
	Positions []float32 // 3 per vertex
	Normals   []float32 // 3 per vertex
	UV        []float32 // 2 per vertex
	Color     []float32 // 4 per vertex (AO greyscale * tint, alpha=1)
	TextureID []uint32  // 1 per vertex
	Indices   []uint32
}

func (m *Mesh) empty() bool { return len(m.Indices) == 0 }

// Result is the two independently-indexed meshes a chunk produces: an
// opaque pass and a transparent pass (Leaf only), matching
// mesh_generation.rs's MeshResult split.
type Result struct {
	Opaque      *Mesh
	Transparent *Mesh
}
