package voxel

import (
	"testing"

	"voxelstream/internal/blocktype"
	"voxelstream/internal/ivec"
	"voxelstream/internal/noisefield"
)

func TestGridGetSetRoundTrip(t *testing.T) {
	g := NewGrid()
	g.Set(3, 4, 5, blocktype.Stone)
	if got := g.Get(3, 4, 5); got != blocktype.Stone {
		t.Errorf("Get after Set = %v, want Stone", got)
	}
}

func TestGridOutOfRangeIsAir(t *testing.T) {
	g := NewGrid()
	if got := g.Get(-1, 0, 0); got != blocktype.Air {
		t.Errorf("out-of-range Get = %v, want Air", got)
	}
	g.Set(-1, 0, 0, blocktype.Stone) // must not panic
}

func TestMultiplierDoublesPerLod(t *testing.T) {
	cases := []struct {
		lod  int
		want int
	}{{1, 1}, {2, 2}, {3, 4}, {8, 128}}
	for _, c := range cases {
		if got := Multiplier(c.lod); got != c.want {
			t.Errorf("Multiplier(%d) = %d, want %d", c.lod, got, c.want)
		}
	}
}

func TestGenerateFillsBedrockAtWorldZero(t *testing.T) {
	field := noisefield.New(1)
	p := Params{
		Coord:        ivec.IVec3{X: 0, Y: 0, Z: 0},
		Lod:          1,
		Field:        field,
		Seed:         1,
		CavesEnabled: false,
		SeaLevel:     3,
		SnowLine:     90,
	}
	// A column's grid Y origin is its terrain floor (minHeight), not world
	// Y=0, so pick the stack index whose grid holds world Y=0.
	_, minHeight, _ := Generate(p)
	p.Coord.Y = ivec.FloorDiv(-minHeight, Size)
	grid, originY, _ := Generate(p)
	ly := 1 - originY
	if got := grid.Get(1, ly, 1); got != blocktype.Bedrock {
		t.Errorf("expected Bedrock at world Y=0, got %v", got)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	field := noisefield.New(5)
	p := Params{Coord: ivec.IVec3{X: 1, Y: 0, Z: 1}, Lod: 1, Field: field, Seed: 5, SeaLevel: 3, SnowLine: 90}

	g1, mh1, _ := Generate(p)
	g2, mh2, _ := Generate(p)

	if mh1 != mh2 {
		t.Fatalf("minHeight differs: %d vs %d", mh1, mh2)
	}
	for i := range g1.blocks {
		if g1.blocks[i] != g2.blocks[i] {
			t.Fatalf("voxel %d differs across identical Generate calls", i)
		}
	}
}
