// Package country implements the coarse-grain terrain cache: structure
// placement and path graphs computed once per (2^15)-voxel XZ tile and
// shared by every chunk task that reads that tile. Grounded on
// original_source's chunk_generation/country/country_cache.go and
// country_data.rs (GenerationState<T>::{Generating,Some}, CountryData's
// own/bottom(-X)/left(-Z) path caches), restructured as a Go
// double-checked-locking map keyed by tile position.
package country

import (
	"sync"

	"voxelstream/internal/ivec"
	"voxelstream/internal/noisefield"
)

// Size is the XZ edge length of one country tile, in world voxels: 2^15.
const Size = 1 << 15

// Pos identifies one country tile by its tile-space XZ coordinate (world
// position divided by Size, floored).
type Pos = ivec.IVec2

// state tags one cache slot as in-flight or resolved, mirroring
// original_source's GenerationState<T> enum.
type state int

const (
	stateGenerating state = iota
	stateReady
)

type slot struct {
	state state
	data  *Data
}

// Data is everything one country tile contributes to chunk generation:
// its own structure placements and three path caches (its own tile, plus
// the −X and −Z neighbors, matching country_data.rs's bottom/left
// caches so a chunk straddling a tile edge can still resolve path
// proximity without crossing into a tile that hasn't generated yet).
type Data struct {
	Pos        Pos
	Structures []Structure
	OwnPaths   *PathData
	NegXPaths  *PathData
	NegZPaths  *PathData
}

// Cache is the country store. The main loop calls GetOrSchedule; the
// country worker goroutine that ran Generate calls Complete with its
// result. Every access goes through mu, so those calls are serialized.
type Cache struct {
	mu    sync.RWMutex
	slots map[Pos]*slot
	field *noisefield.Field
	seed  int64
}

// New creates an empty country cache backed by the given noise field.
func New(field *noisefield.Field, seed int64) *Cache {
	return &Cache{
		slots: make(map[Pos]*slot),
		field: field,
		seed:  seed,
	}
}

// GetOrSchedule returns (data, true, false) if the tile at pos is ready.
// If the tile has never been requested, it marks the slot Generating and
// returns (nil, false, true); the true scheduled flag tells the caller
// this call is the one responsible for running Generate off the main
// thread and calling Complete with the result. If the tile is already
// Generating, it returns (nil, false, false) without re-scheduling.
func (c *Cache) GetOrSchedule(pos Pos) (data *Data, ready bool, scheduled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, ok := c.slots[pos]
	if !ok {
		c.slots[pos] = &slot{state: stateGenerating}
		return nil, false, true
	}
	if s.state == stateGenerating {
		return nil, false, false
	}
	return s.data, true, false
}

// Pending reports whether pos has already been scheduled (Generating or
// Ready), without mutating the cache — used by the scheduler to avoid
// submitting a duplicate generation task.
func (c *Cache) Pending(pos Pos) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.slots[pos]
	return ok
}

// Complete stores the result of a finished generation task, transitioning
// the slot from Generating to Ready. Called from the country worker
// goroutine once Generate returns (and by World.BlockAt, which generates
// synchronously).
func (c *Cache) Complete(pos Pos, data *Data) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.slots[pos] = &slot{state: stateReady, data: data}
}

// Seed returns the world seed this cache generates from.
func (c *Cache) Seed() int64 { return c.seed }

// Field returns the noise field this cache generates from.
func (c *Cache) Field() *noisefield.Field { return c.field }
