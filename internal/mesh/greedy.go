package mesh

import (
	"voxelstream/internal/blocktype"
	"voxelstream/internal/registry"
	"voxelstream/internal/voxel"
)

// direction describes one of the six face-normal passes. height/width are
// the in-plane basis vectors for that normal axis — fixed per axis
// regardless of sign, mirroring original_source's rotate_into_direction
// swizzle (IVec3::X|NEG_X -> xyz, Y|NEG_Y -> yxz, Z|NEG_Z -> zyx).
type direction struct {
	dx, dy, dz    int
	hx, hy, hz    int
	wx, wy, wz    int
	axisIsX       bool
	face          blocktype.Face
}

var directions = []direction{
	{dx: 1, hy: 1, wz: 1, axisIsX: true, face: blocktype.FaceEast},
	{dx: -1, hy: 1, wz: 1, axisIsX: true, face: blocktype.FaceWest},
	{dy: 1, hx: 1, wz: 1, face: blocktype.FaceTop},
	{dy: -1, hx: 1, wz: 1, face: blocktype.FaceBottom},
	{dz: 1, hy: 1, wx: 1, face: blocktype.FaceNorth},
	{dz: -1, hy: 1, wx: 1, face: blocktype.FaceSouth},
}

type cell struct {
	block blocktype.Type
	ao    cornerAO
	set   bool
}

type builder struct {
	m Mesh
}

func (b *builder) pushVertex(x, y, z, nx, ny, nz, u, v float32, col [4]float32, texID uint32) uint32 {
	idx := uint32(len(b.m.Positions) / 3)
	b.m.Positions = append(b.m.Positions, x, y, z)
	b.m.Normals = append(b.m.Normals, nx, ny, nz)
	b.m.UV = append(b.m.UV, u, v)
	b.m.Color = append(b.m.Color, col[0], col[1], col[2], col[3])
	b.m.TextureID = append(b.m.TextureID, texID)
	return idx
}

// BuildChunkMesh greedy-meshes one voxel grid into an opaque pass (all
// solid blocks) and a transparent pass (Leaf only), matching
// mesh_generation.rs's generate_mesh split between get_mesh_for_blocks
// calls for the opaque set and the Leaf set.
func BuildChunkMesh(grid *voxel.Grid, minHeight, lod int) Result {
	mult := voxel.Multiplier(lod)
	minHeightLocal := float32(minHeight) / float32(mult)

	opaque := buildPass(grid, mult, minHeightLocal, blocktype.Type.IsOpaqueSet)
	transparent := buildPass(grid, mult, minHeightLocal, blocktype.Type.IsTransparentSet)

	var res Result
	if !opaque.empty() {
		res.Opaque = opaque
	}
	if !transparent.empty() {
		res.Transparent = transparent
	}
	return res
}

func buildPass(grid *voxel.Grid, mult int, minHeightLocal float32, inSet func(blocktype.Type) bool) *Mesh {
	b := &builder{}
	for _, d := range directions {
		buildDirection(b, grid, mult, minHeightLocal, inSet, d)
	}
	return &b.m
}

const size = voxel.Size

func buildDirection(b *builder, grid *voxel.Grid, mult int, minHeightLocal float32, inSet func(blocktype.Type) bool, d direction) {
	nx, ny, nz := axisUnit(d)

	for i := 1; i <= size; i++ {
		mask := make([]cell, size*size)

		for j := 1; j <= size; j++ {
			for k := 1; k <= size; k++ {
				x := i*nx + j*d.hx + k*d.wx
				y := i*ny + j*d.hy + k*d.wy
				z := i*nz + j*d.hz + k*d.wz

				block := grid.Get(x, y, z)
				if !inSet(block) {
					continue
				}
				neighbor := grid.Get(x+d.dx, y+d.dy, z+d.dz)
				if neighbor.Covers(block) {
					continue
				}

				ao := faceAO(grid, x, y, z, d.dx, d.dy, d.dz, d.hx, d.hy, d.hz, d.wx, d.wy, d.wz)
				mask[(j-1)*size+(k-1)] = cell{block: block, ao: ao, set: true}
			}
		}

		emitMaskQuads(b, mask, i, mult, minHeightLocal, d)
	}
}

func axisUnit(d direction) (int, int, int) {
	switch {
	case d.dx != 0:
		return 1, 0, 0
	case d.dy != 0:
		return 0, 1, 0
	default:
		return 0, 0, 1
	}
}

func emitMaskQuads(b *builder, mask []cell, slice, mult int, minHeightLocal float32, d direction) {
	idx := 0
	for idx < size*size {
		c := mask[idx]
		if !c.set {
			idx++
			continue
		}

		h0 := idx / size
		w0 := idx % size

		height := 1
		for h0+height < size && mask[(h0+height)*size+w0] == c {
			height++
		}

		width := 1
	widthLoop:
		for w0+width < size {
			for hh := 0; hh < height; hh++ {
				if mask[(h0+hh)*size+(w0+width)] != c {
					break widthLoop
				}
			}
			width++
		}

		emitQuad(b, c, slice, h0, w0, height, width, mult, minHeightLocal, d)

		for hh := 0; hh < height; hh++ {
			for ww := 0; ww < width; ww++ {
				mask[(h0+hh)*size+(w0+ww)] = cell{}
			}
		}
		idx++
	}
}

func emitQuad(b *builder, c cell, slice, h0, w0, height, width, mult int, minHeightLocal float32, d direction) {
	sign := 1
	if d.dx < 0 || d.dy < 0 || d.dz < 0 {
		sign = -1
	}
	faceCoord := float32(slice) + 0.5*float32(sign)

	lowH := float32(h0) + 0.5
	highH := float32(h0+height) + 0.5
	lowW := float32(w0) + 0.5
	highW := float32(w0+width) + 0.5

	var corners [4][3]float32
	nx, ny, nz := axisUnit(d)
	switch {
	case nx != 0:
		corners = [4][3]float32{
			{faceCoord, lowH, lowW}, {faceCoord, lowH, highW},
			{faceCoord, highH, highW}, {faceCoord, highH, lowW},
		}
	case ny != 0:
		corners = [4][3]float32{
			{lowH, faceCoord, lowW}, {lowH, faceCoord, highW},
			{highH, faceCoord, highW}, {highH, faceCoord, lowW},
		}
	default:
		corners = [4][3]float32{
			{lowW, lowH, faceCoord}, {highW, lowH, faceCoord},
			{highW, highH, faceCoord}, {lowW, highH, faceCoord},
		}
	}

	for n := range corners {
		corners[n][0] = (corners[n][0] - 0.5) * voxel.VoxelSize * float32(mult)
		corners[n][2] = (corners[n][2] - 0.5) * voxel.VoxelSize * float32(mult)
		corners[n][1] = (corners[n][1] + minHeightLocal - 0.5) * voxel.VoxelSize * float32(mult)
	}

	widthUV := float32(width) * float32(mult)
	heightUV := float32(height) * float32(mult)
	uvs := [4][2]float32{
		{widthUV, heightUV}, {0, heightUV}, {0, 0}, {widthUV, 0},
	}

	colors := c.ao.colors()
	tint := registry.TintColor(c.block, d.face)
	if tint != 0 {
		tr := float32((tint>>16)&0xFF) / 255
		tg := float32((tint>>8)&0xFF) / 255
		tb := float32(tint&0xFF) / 255
		for n := range colors {
			colors[n][0] *= tr
			colors[n][1] *= tg
			colors[n][2] *= tb
		}
	}

	texID := registry.TextureLayer(c.block, d.face)

	var base [4]uint32
	for n := 0; n < 4; n++ {
		base[n] = b.pushVertex(
			corners[n][0], corners[n][1], corners[n][2],
			float32(d.dx), float32(d.dy), float32(d.dz),
			uvs[n][0], uvs[n][1], colors[n], texID,
		)
	}

	invert := sign > 0
	if d.axisIsX {
		invert = !invert
	}

	if c.ao.turnQuad() {
		appendTri(b, base, 0, pick(invert, 1, 2), pick(invert, 2, 1))
		appendTri(b, base, 0, pick(invert, 2, 3), pick(invert, 3, 2))
	} else {
		appendTri(b, base, 0, pick(invert, 1, 3), pick(invert, 3, 1))
		appendTri(b, base, 1, pick(invert, 2, 3), pick(invert, 3, 2))
	}
}

func pick(invert bool, a, b int) int {
	if invert {
		return a
	}
	return b
}

func appendTri(b *builder, base [4]uint32, i0, i1, i2 int) {
	b.m.Indices = append(b.m.Indices, base[i0], base[i1], base[i2])
}
