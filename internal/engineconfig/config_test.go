package engineconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	tn := Global()
	if tn.ChunkTaskCap() != 20 {
		t.Errorf("default ChunkTaskCap = %d, want 20", tn.ChunkTaskCap())
	}
	if tn.ChunkTaskPerTick() != 5 {
		t.Errorf("default ChunkTaskPerTick = %d, want 5", tn.ChunkTaskPerTick())
	}
}

func TestSetChunkTaskCapClamps(t *testing.T) {
	tn := &Tunables{}
	tn.SetChunkTaskCap(0)
	if tn.ChunkTaskCap() != 1 {
		t.Errorf("SetChunkTaskCap(0) = %d, want clamped to 1", tn.ChunkTaskCap())
	}
	tn.SetChunkTaskCap(10000)
	if tn.ChunkTaskCap() != 256 {
		t.Errorf("SetChunkTaskCap(10000) = %d, want clamped to 256", tn.ChunkTaskCap())
	}
}

func TestLoadFileOverridesOnlySetFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.ron")
	if err := os.WriteFile(path, []byte("seed: 42\nsea_level: 70\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tn := &Tunables{chunkTaskCap: 20, chunkTaskPerTick: 5, countryPoolSize: 16, chunkPoolSize: 16, seaLevel: 63, snowLine: 96}
	if err := tn.LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if tn.Seed() != 42 {
		t.Errorf("Seed = %d, want 42", tn.Seed())
	}
	if tn.SeaLevel() != 70 {
		t.Errorf("SeaLevel = %d, want 70", tn.SeaLevel())
	}
	if tn.ChunkTaskCap() != 20 {
		t.Errorf("unset ChunkTaskCap should remain default 20, got %d", tn.ChunkTaskCap())
	}
}
