package observer

import (
	"testing"

	"voxelstream/internal/quadtree"
)

func TestTickSpawnsTreesAroundLoader(t *testing.T) {
	m := NewManager(64, 2)
	m.SetLoaders([]Loader{{WorldX: 0, WorldZ: 0, Config: quadtree.LoaderConfig{
		LoadRange: 1, UnloadRange: 2, LodRange: []int{2, 2},
	}}})

	m.Tick()

	trees := m.Trees()
	if got, want := len(trees), 9; got != want {
		t.Fatalf("tree count = %d, want %d (3x3 box)", got, want)
	}
}

func TestTickDoesNotDuplicateExistingTrees(t *testing.T) {
	m := NewManager(64, 2)
	cfg := quadtree.LoaderConfig{LoadRange: 1, UnloadRange: 2, LodRange: []int{2, 2}}
	m.SetLoaders([]Loader{{WorldX: 0, WorldZ: 0, Config: cfg}})

	m.Tick()
	first := len(m.Trees())
	m.Tick()
	second := len(m.Trees())

	if first != second {
		t.Errorf("tree count changed across ticks with a stationary loader: %d -> %d", first, second)
	}
}

func TestTickUnloadsTreesLoaderHasLeft(t *testing.T) {
	m := NewManager(64, 1)
	cfg := quadtree.LoaderConfig{LoadRange: 0, UnloadRange: 1, LodRange: []int{2}}
	m.SetLoaders([]Loader{{WorldX: 0, WorldZ: 0, Config: cfg}})
	m.Tick()
	if len(m.Trees()) == 0 {
		t.Fatal("expected at least one tree after initial load")
	}

	// Move the loader far away; its old tree should be dropped next tick.
	far := 100000.0
	m.SetLoaders([]Loader{{WorldX: far, WorldZ: far, Config: cfg}})
	m.Tick()

	for _, pos := range m.Trees() {
		if pos.X == 0 && pos.Z == 0 {
			t.Error("origin tree should have been unloaded once the loader moved away")
		}
	}
}

func TestTickSubdividesNearestTreeTowardLoader(t *testing.T) {
	m := NewManager(64, 2)
	cfg := quadtree.DefaultLoaderConfig()
	m.SetLoaders([]Loader{{WorldX: 0, WorldZ: 0, Config: cfg}})

	m.Tick()

	tree, ok := m.Tree(treePos(0, 0, m.treeSpan()))
	if !ok {
		t.Fatal("expected a tree at the loader's position")
	}
	if tree.Node(tree.Root()).IsLeaf {
		t.Error("expected the tree centered on the loader to have subdivided")
	}
}
