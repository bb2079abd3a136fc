package noisefield

import (
	"testing"

	"voxelstream/internal/blocktype"
)

func TestHeightDeterministic(t *testing.T) {
	f := New(42)
	a := f.Height(123.0, -45.0)
	b := f.Height(123.0, -45.0)
	if a != b {
		t.Errorf("Height not deterministic: %v != %v", a, b)
	}
}

func TestHeightVariesBySeed(t *testing.T) {
	f1 := New(1)
	f2 := New(2)
	if f1.Height(50, 50) == f2.Height(50, 50) {
		t.Errorf("expected different seeds to diverge")
	}
}

func TestStructureMaskRange(t *testing.T) {
	f := New(7)
	for _, p := range [][2]float64{{0, 0}, {1000, -1000}, {-500, 500}} {
		v := f.StructureMask(p[0], p[1])
		if v < 0 || v > 1 {
			t.Errorf("StructureMask(%v) = %v, want [0,1]", p, v)
		}
	}
}

func TestSelectBlockAboveSurfaceIsAir(t *testing.T) {
	if b := SelectBlock(10, 5, 0, 3, 90); b != blocktype.Air {
		t.Errorf("expected Air above surface, got %v", b)
	}
}

func TestSelectBlockSnowCap(t *testing.T) {
	if b := SelectBlock(100, 100, 0.2, 3, 90); b != blocktype.Snow {
		t.Errorf("expected Snow at surface above snow line, got %v", b)
	}
}

func TestSelectBlockDeepIsStone(t *testing.T) {
	if b := SelectBlock(0, 50, 0.1, 3, 90); b != blocktype.Stone {
		t.Errorf("expected Stone well below surface, got %v", b)
	}
}
