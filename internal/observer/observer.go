// Package observer ties loader positions (players, cameras, any other
// point that needs nearby terrain loaded) to the quadtree trees that
// cover them: creating trees within range, tearing them down once every
// loader has moved far enough away, and driving each tree's per-tick
// subdivide/merge pass toward whichever loader wants it finest. Grounded
// on original_source's chunk_loader.rs (load_chunks/unload_chunks
// systems), restructured around a tracked position instead of an ECS
// query.
package observer

import (
	"sync"

	"voxelstream/internal/ivec"
	"voxelstream/internal/quadtree"
	"voxelstream/internal/voxel"
)

// Loader is a point in the world that terrain should stream around —
// one per player/camera, mirroring the ChunkLoader component.
type Loader struct {
	WorldX, WorldZ float64
	Config         quadtree.LoaderConfig
}

// Manager owns every live quadtree.Tree, keyed by its tree-grid position,
// and the loaders driving them. One tree's footprint at MaxLod spans
// ChunkSize*Multiplier(MaxLod) world units on a side.
type Manager struct {
	mu      sync.Mutex
	trees   map[ivec.IVec2]*quadtree.Tree
	loaders []Loader

	ChunkSize int
	MaxLod    int
}

// NewManager creates an empty tree manager for the given chunk edge size
// (in voxels at LOD 1) and coarsest LOD level.
func NewManager(chunkSize, maxLod int) *Manager {
	return &Manager{
		trees:     make(map[ivec.IVec2]*quadtree.Tree),
		ChunkSize: chunkSize,
		MaxLod:    maxLod,
	}
}

// SetLoaders replaces the tracked loader set. Called once per tick by
// the engine facade with each loader's current world position.
func (m *Manager) SetLoaders(loaders []Loader) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loaders = append(m.loaders[:0], loaders...)
}

// treeSpan is the world-unit footprint of one tree, at its root LOD.
func (m *Manager) treeSpan() int {
	return m.ChunkSize * voxel.Multiplier(m.MaxLod)
}

func treePos(worldX, worldZ float64, span int) ivec.IVec2 {
	return ivec.IVec2{
		X: ivec.FloorDiv(int(worldX), span),
		Z: ivec.FloorDiv(int(worldZ), span),
	}
}

// Tick runs one full pass: spawn trees that came into range, despawn
// trees every loader has left behind, then subdivide/merge each
// surviving tree toward the nearest loader's required LOD.
func (m *Manager) Tick() {
	m.mu.Lock()
	defer m.mu.Unlock()

	span := m.treeSpan()
	m.loadTrees(span)
	m.unloadTrees(span)

	for pos, tree := range m.trees {
		tree.Tick(m.minLodFunc(pos))
	}
}

// loadTrees spawns a tree for every grid cell within LoadRange (a square
// box, matching load_chunks's nested x/z loop) of each loader that
// doesn't already have one.
func (m *Manager) loadTrees(span int) {
	for _, l := range m.loaders {
		center := treePos(l.WorldX, l.WorldZ, span)
		r := l.Config.LoadRange
		for dx := -r; dx <= r; dx++ {
			for dz := -r; dz <= r; dz++ {
				pos := ivec.IVec2{X: center.X + dx, Z: center.Z + dz}
				if _, ok := m.trees[pos]; !ok {
					m.trees[pos] = quadtree.NewTree(pos, m.MaxLod)
				}
			}
		}
	}
}

// unloadTrees despawns any tree that every loader has moved more than
// its UnloadRange away from (Chebyshev distance on the tree grid,
// matching unload_chunks's independent abs(x)/abs(z) checks).
func (m *Manager) unloadTrees(span int) {
	for pos := range m.trees {
		if m.anyLoaderKeeps(pos, span) {
			continue
		}
		delete(m.trees, pos)
	}
}

func (m *Manager) anyLoaderKeeps(pos ivec.IVec2, span int) bool {
	for _, l := range m.loaders {
		lp := treePos(l.WorldX, l.WorldZ, span)
		dx := pos.X - lp.X
		if dx < 0 {
			dx = -dx
		}
		dz := pos.Z - lp.Z
		if dz < 0 {
			dz = -dz
		}
		if dx <= l.Config.UnloadRange && dz <= l.Config.UnloadRange {
			return true
		}
	}
	return false
}

// minLodFunc closes over the current loader set so quadtree.Tree.Tick
// can ask, for any node position in the tree rooted at treeOrigin, the
// finest LOD any loader currently requires.
func (m *Manager) minLodFunc(treeOrigin ivec.IVec2) quadtree.MinLodFunc {
	return func(pos quadtree.LodPosition) int {
		if len(m.loaders) == 0 {
			return m.MaxLod
		}
		cx, cz := pos.CenterWorld(treeOrigin, m.ChunkSize)
		best := m.MaxLod
		for _, l := range m.loaders {
			want := l.Config.ClosestLod(cx, cz, l.WorldX, l.WorldZ, m.ChunkSize, m.MaxLod)
			if want < best {
				best = want
			}
		}
		return best
	}
}

// Trees returns a snapshot of the currently live tree positions, for
// diagnostics and tests.
func (m *Manager) Trees() []ivec.IVec2 {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]ivec.IVec2, 0, len(m.trees))
	for pos := range m.trees {
		out = append(out, pos)
	}
	return out
}

// Tree returns the live tree at pos, if any.
func (m *Manager) Tree(pos ivec.IVec2) (*quadtree.Tree, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.trees[pos]
	return t, ok
}
