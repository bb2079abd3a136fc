package mesh

import "voxelstream/internal/voxel"

// occlusion samples whether a neighbor cell blocks light (any non-air
// block counts, independent of which block-set pass is currently being
// meshed, matching the classic four-corner AO scheme).
func occludes(g *voxel.Grid, x, y, z int) bool {
	return g.Get(x, y, z) != 0 // blocktype.Air == 0
}

// cornerAO is the (corner1..corner4) quadruple for one unit face,
// ordered the way mesh_generation.rs's vecs array walks a face's four
// corners: (low height, low width), (low height, high width),
// (high height, high width), (high height, low width). Ported from
// ambient_occlusion.rs's AmbiantOcclusion, whose fields this type
// mirrors field-for-field.
type cornerAO struct {
	c1, c2, c3, c4 uint8
}

// colors returns the four corners' greyscale-with-alpha RGBA values,
// ported from AmbiantOcclusion::get_colors (corner/4 + 0.25, alpha 1).
func (a cornerAO) colors() [4][4]float32 {
	f := func(c uint8) float32 { return float32(c)/4 + 0.25 }
	v1, v2, v3, v4 := f(a.c1), f(a.c2), f(a.c3), f(a.c4)
	return [4][4]float32{
		{v1, v1, v1, 1},
		{v2, v2, v2, 1},
		{v3, v3, v3, 1},
		{v4, v4, v4, 1},
	}
}

// turnQuad reports whether the quad's diagonal should run corner1-corner3
// rather than corner2-corner4, ported verbatim from
// AmbiantOcclusion::turn_quad.
func (a cornerAO) turnQuad() bool {
	return int(a.c1)+int(a.c3) > int(a.c2)+int(a.c4)
}

// faceAO computes the corner quadruple for the unit face at pos with the
// given outward normal direction (dx,dy,dz) and in-plane height/width
// basis vectors. Each corner samples two side cells and one diagonal
// cell one layer past the face; three occluders darken a corner fully
// (value 0), none leave it fully lit (value 3).
func faceAO(g *voxel.Grid, x, y, z, dx, dy, dz int, hx, hy, hz, wx, wy, wz int) cornerAO {
	corner := func(hSign, wSign int) uint8 {
		sideH := occludes(g, x+dx+hx*hSign, y+dy+hy*hSign, z+dz+hz*hSign)
		sideW := occludes(g, x+dx+wx*wSign, y+dy+wy*wSign, z+dz+wz*wSign)
		diag := occludes(g, x+dx+hx*hSign+wx*wSign, y+dy+hy*hSign+wy*wSign, z+dz+hz*hSign+wz*wSign)

		if sideH && sideW {
			return 0
		}
		n := 0
		if sideH {
			n++
		}
		if sideW {
			n++
		}
		if diag {
			n++
		}
		return uint8(3 - n)
	}

	return cornerAO{
		c1: corner(-1, -1),
		c2: corner(-1, +1),
		c3: corner(+1, +1),
		c4: corner(+1, -1),
	}
}
