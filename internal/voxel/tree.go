package voxel

import (
	"math"
	"math/rand"

	"voxelstream/internal/blocktype"
	"voxelstream/internal/country"
)

// treeEntry is one rasterization primitive produced by the L-system:
// a sphere of the given thickness placed at pos, tagged with the block
// it should stamp. Ported from tree_l_system.rs's LSystemEntry, minus
// the rotation bookkeeping (recurse_entry's angle state) which the
// original used to grow branches off the trunk; kept here as a
// mid-growth branch spawn using the same "go straight, sometimes fork"
// recurrence.
type treeEntry struct {
	pos       [3]float64
	thickness float64
	leaf      bool
}

// growTree runs the recursive L-system rewrite: a trunk climbs straight
// up for a random height, occasionally forking into leaf-bearing
// branches, exactly mirroring create_straight_piece's "between piece,
// tip piece" shape but with Go-native recursion instead of the
// trait-based recurse_entry dispatch.
func growTree(seed int64) []treeEntry {
	rng := rand.New(rand.NewSource(seed))

	trunkHeight := 5 + rng.Intn(4)
	var entries []treeEntry

	pos := [3]float64{0, 0, 0}
	for i := 0; i < trunkHeight; i++ {
		entries = append(entries, treeEntry{pos: pos, thickness: 1.3})
		pos[1]++

		if i >= trunkHeight-3 && rng.Float64() < 0.5 {
			entries = append(entries, growBranch(pos, rng)...)
		}
	}

	entries = append(entries, canopy(pos, rng)...)
	return entries
}

func growBranch(origin [3]float64, rng *rand.Rand) []treeEntry {
	angle := rng.Float64() * 2 * math.Pi
	length := 2 + rng.Intn(2)
	dir := [3]float64{math.Cos(angle) * 0.7, 0.5, math.Sin(angle) * 0.7}

	var out []treeEntry
	p := origin
	for i := 0; i < length; i++ {
		p = [3]float64{p[0] + dir[0], p[1] + dir[1], p[2] + dir[2]}
		out = append(out, treeEntry{pos: p, thickness: 0.8})
	}
	out = append(out, canopy(p, rng)...)
	return out
}

func canopy(center [3]float64, rng *rand.Rand) []treeEntry {
	var out []treeEntry
	radius := 2
	for dx := -radius; dx <= radius; dx++ {
		for dy := -1; dy <= radius; dy++ {
			for dz := -radius; dz <= radius; dz++ {
				d2 := dx*dx + dy*dy*2 + dz*dz
				if d2 > radius*radius {
					continue
				}
				out = append(out, treeEntry{
					pos:       [3]float64{center[0] + float64(dx), center[1] + float64(dy) + 1, center[2] + float64(dz)},
					thickness: 1.6,
					leaf:      true,
				})
			}
		}
	}
	return out
}

// StampTree rasterizes a tree's L-system entries into grid as overlapping
// spheres, ported from tree_l_system.rs's grow_new: every entry paints a
// ball of radius thickness/VOXEL_SIZE around its center, with later
// entries overwriting earlier ones at the overlap, except that a leaf
// entry never replaces a Log voxel: canopy spheres fill around the trunk
// and branches at the crown without hollowing them out.
func StampTree(grid *Grid, s country.Structure, originX, originY, originZ, mult int) {
	entries := growTree(s.Seed)

	for _, e := range entries {
		block := blocktype.Log
		if e.leaf {
			block = blocktype.Leaf
		}

		wx := s.Origin.X + int(math.Round(e.pos[0]))
		wy := s.Origin.Y + int(math.Round(e.pos[1]))
		wz := s.Origin.Z + int(math.Round(e.pos[2]))

		thicknessVoxels := int(math.Ceil(e.thickness))
		for dx := -thicknessVoxels; dx <= thicknessVoxels; dx++ {
			for dy := -thicknessVoxels; dy <= thicknessVoxels; dy++ {
				for dz := -thicknessVoxels; dz <= thicknessVoxels; dz++ {
					if float64(dx*dx+dy*dy+dz*dz) > e.thickness*e.thickness {
						continue
					}
					worldX := wx + dx
					worldY := wy + dy
					worldZ := wz + dz

					if (worldX-originX)%mult != 0 || (worldY-originY)%mult != 0 || (worldZ-originZ)%mult != 0 {
						continue
					}
					lx := (worldX-originX)/mult + 1
					ly := (worldY-originY)/mult + 1
					lz := (worldZ-originZ)/mult + 1

					if e.leaf && grid.Get(lx, ly, lz) == blocktype.Log {
						continue
					}
					grid.Set(lx, ly, lz, block)
				}
			}
		}
	}
}
