// Package engine is the facade tying the streaming pipeline together:
// the quadtree-driven observer, the country/chunk worker pools, and the
// mesh results they produce. One World composes a noise field, a
// country cache, an observer manager, two worker pools, and a
// blueprint loader, driving the LOD quadtree through its two-stage
// generation pipeline.
package engine

import (
	"voxelstream/internal/blocktype"
	"voxelstream/internal/country"
	"voxelstream/internal/engineconfig"
	"voxelstream/internal/ivec"
	"voxelstream/internal/mesh"
	"voxelstream/internal/noisefield"
	"voxelstream/internal/observer"
	"voxelstream/internal/profiling"
	"voxelstream/internal/quadtree"
	"voxelstream/internal/scheduler"
	"voxelstream/internal/voxel"
)

const maxLod = 8

// ChunkKey identifies one generated vertical chunk: a tree origin, its
// horizontal LOD position within that tree, and a vertical stack index
// (0 = ground column chunk, 1 = the chunk above it, and so on — mirroring
// original_source's Chunk{generate_above, chunk_height} column stacking).
type ChunkKey struct {
	TreeOrigin ivec.IVec2
	Pos        quadtree.LodPosition
	Y          int
}

// ChunkResult is one generated chunk's mesh plus the minimum world-space
// Y its voxel grid starts at, needed to place it.
type ChunkResult struct {
	MinHeight int
	Mesh      mesh.Result
}

// World owns the full generation pipeline for one running world.
type World struct {
	field       *noisefield.Field
	countries   *country.Cache
	manager     *observer.Manager
	countryPool *scheduler.CountryPool
	chunkPool   *scheduler.ChunkPool
	blueprints  *voxel.Loader
	cfg         *engineconfig.Tunables

	results resultStore
	metrics metrics
}

// New creates a world generating from the given seed, loading blueprint
// assets from assetsPath (see voxel.NewLoader).
func New(seed int64, assetsPath string) *World {
	cfg := engineconfig.Global()
	cfg.SetSeed(uint64(seed))

	field := noisefield.New(seed)
	w := &World{
		field:       field,
		countries:   country.New(field, seed),
		manager:     observer.NewManager(voxel.Size, maxLod),
		countryPool: &scheduler.CountryPool{},
		chunkPool:   scheduler.NewChunkPool(cfg.ChunkTaskCap(), cfg.ChunkTaskPerTick()),
		blueprints:  voxel.NewLoader(assetsPath),
		cfg:         cfg,
	}
	w.results.init()
	w.metrics.init()
	return w
}

// Tick advances the world one step: loaders move trees into/out of
// range and toward their required LOD, then any newly-pending leaves
// are handed to the country and chunk pools.
func (w *World) Tick(loaders []observer.Loader) {
	profiling.ResetFrame()
	defer profiling.Track("engine.World.Tick")()

	w.manager.SetLoaders(loaders)
	w.manager.Tick()
	w.scheduleLeaves()
	w.chunkPool.Submit()
}

// scheduleLeaves walks every live tree's leaves and, for any leaf that
// hasn't been queued yet, resolves its country tile (scheduling
// generation on the country pool if needed) and — once the tile is
// ready — enqueues a chunk generation job on the chunk pool.
func (w *World) scheduleLeaves() {
	for _, origin := range w.manager.Trees() {
		tree, ok := w.manager.Tree(origin)
		if !ok {
			continue
		}
		for _, h := range tree.Leaves(nil) {
			node := tree.Node(h)
			if node.Status != quadtree.StatusPending {
				continue
			}

			cpos := countryPos(node.Pos, origin)
			data, ready, scheduled := w.countries.GetOrSchedule(cpos)
			if !ready {
				if scheduled {
					w.scheduleCountry(cpos)
				}
				continue
			}

			node.Status = quadtree.StatusQueued
			w.enqueueChunk(tree, h, origin, data)
		}
	}
}

func (w *World) scheduleCountry(pos country.Pos) {
	w.countryPool.Submit(func() {
		data := country.Generate(pos, w.field.Seed(), w.field)
		w.countries.Complete(pos, data)
	})
}

func (w *World) enqueueChunk(tree *quadtree.Tree, h quadtree.Handle, origin ivec.IVec2, data *country.Data) {
	node := tree.Node(h)
	pos := node.Pos
	seaLevel, snowLine := w.cfg.SeaLevel(), w.cfg.SnowLine()
	caves := w.cfg.CavesEnabled()

	w.chunkPool.Enqueue(scheduler.ChunkJob{
		Priority: pos.Lod,
		Run: func() {
			w.generateColumn(origin, pos, data, seaLevel, snowLine, caves)
			tree.ReportReady(h)
		},
	})
}

// generateColumn stacks vertical chunks upward from Y=0 until terrain no
// longer extends above the last one generated, storing each chunk's mesh
// result. The stack height is driven by Generate's extendsAbove flag
// rather than a fixed world height.
func (w *World) generateColumn(origin ivec.IVec2, pos quadtree.LodPosition, data *country.Data, seaLevel, snowLine int, caves bool) {
	defer profiling.Track("engine.World.generateColumn")()

	abs := pos.AbsoluteChunk(origin)
	const maxStack = 8

	for y := 0; y < maxStack; y++ {
		grid, minHeight, extendsAbove := voxel.Generate(voxel.Params{
			Coord:        ivec.IVec3{X: abs.X, Y: y, Z: abs.Z},
			Lod:          pos.Lod,
			Field:        w.field,
			Country:      data,
			Seed:         w.field.Seed(),
			CavesEnabled: caves,
			SeaLevel:     seaLevel,
			SnowLine:     snowLine,
			Blueprints:   w.blueprints,
		})

		res := mesh.BuildChunkMesh(grid, minHeight, pos.Lod)
		w.results.set(ChunkKey{TreeOrigin: origin, Pos: pos, Y: y}, ChunkResult{MinHeight: minHeight, Mesh: res})
		w.metrics.addTriangles(pos.Lod, triangleCount(res))

		if !extendsAbove {
			break
		}
	}
}

func triangleCount(res mesh.Result) uint64 {
	var n uint64
	if res.Opaque != nil {
		n += uint64(len(res.Opaque.Indices)) / 3
	}
	if res.Transparent != nil {
		n += uint64(len(res.Transparent.Indices)) / 3
	}
	return n
}

func countryPos(pos quadtree.LodPosition, treeOrigin ivec.IVec2) country.Pos {
	abs := pos.AbsoluteChunk(treeOrigin)
	mult := voxel.Multiplier(pos.Lod)
	worldX := abs.X * voxel.Size * mult
	worldZ := abs.Z * voxel.Size * mult
	return country.Pos{
		X: ivec.FloorDiv(worldX, country.Size),
		Z: ivec.FloorDiv(worldZ, country.Size),
	}
}

// Result returns the generated mesh for a chunk key, if it has finished.
func (w *World) Result(key ChunkKey) (ChunkResult, bool) {
	return w.results.get(key)
}

// BlockAt is a convenience accessor used by tests and tooling that only
// need a single block's type rather than a full mesh — it regenerates
// the owning chunk's voxel grid directly rather than reading back mesh
// geometry.
func (w *World) BlockAt(worldX, worldY, worldZ int, lod int) blocktype.Type {
	mult := voxel.Multiplier(lod)
	size := voxel.Size
	cx := ivec.FloorDiv(worldX, size*mult)
	cz := ivec.FloorDiv(worldZ, size*mult)

	cpos := country.Pos{
		X: ivec.FloorDiv(cx*size*mult, country.Size),
		Z: ivec.FloorDiv(cz*size*mult, country.Size),
	}
	data, ready, _ := w.countries.GetOrSchedule(cpos)
	if !ready {
		data = country.Generate(cpos, w.field.Seed(), w.field)
		w.countries.Complete(cpos, data)
	}

	params := voxel.Params{
		Coord:        ivec.IVec3{X: cx, Y: 0, Z: cz},
		Lod:          lod,
		Field:        w.field,
		Country:      data,
		Seed:         w.field.Seed(),
		CavesEnabled: w.cfg.CavesEnabled(),
		SeaLevel:     w.cfg.SeaLevel(),
		SnowLine:     w.cfg.SnowLine(),
		Blueprints:   w.blueprints,
	}
	grid, minHeight, _ := voxel.Generate(params)

	// A column's stack starts at its terrain floor (minHeight), so the
	// stack index holding worldY is counted from there, not from Y=0.
	if cy := ivec.FloorDiv(worldY-minHeight, size*mult); cy != 0 {
		params.Coord.Y = cy
		grid, minHeight, _ = voxel.Generate(params)
	}

	lx := ivec.Mod(worldX, size*mult) / mult
	ly := (worldY - minHeight) / mult
	lz := ivec.Mod(worldZ, size*mult) / mult
	return grid.Get(lx+1, ly+1, lz+1)
}
