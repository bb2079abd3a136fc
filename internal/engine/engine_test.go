package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"voxelstream/internal/observer"
	"voxelstream/internal/quadtree"
)

func TestTickEventuallyProducesAChunkResult(t *testing.T) {
	w := New(1234, t.TempDir())
	cfg := quadtree.LoaderConfig{LoadRange: 0, UnloadRange: 1, LodRange: []int{2}}
	loaders := []observer.Loader{{WorldX: 0, WorldZ: 0, Config: cfg}}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		w.Tick(loaders)
		if hasAnyResult(w) {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("no chunk result was produced within the deadline")
}

func TestBlockAtIsDeterministic(t *testing.T) {
	w := New(99, t.TempDir())
	a := w.BlockAt(10, 60, 10, 1)
	b := w.BlockAt(10, 60, 10, 1)
	require.Equal(t, a, b)
}

func TestTriangleCountsAccumulateAfterGeneration(t *testing.T) {
	w := New(5, t.TempDir())
	cfg := quadtree.LoaderConfig{LoadRange: 0, UnloadRange: 1, LodRange: []int{2}}
	loaders := []observer.Loader{{WorldX: 0, WorldZ: 0, Config: cfg}}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		w.Tick(loaders)
		if len(w.TriangleCounts()) > 0 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("expected triangle counts to accumulate within the deadline")
}

func hasAnyResult(w *World) bool {
	w.results.mu.RLock()
	defer w.results.mu.RUnlock()
	return len(w.results.data) > 0
}
