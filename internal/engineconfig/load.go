package engineconfig

import (
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the fields a .ron config file may override; zero
// values are left at their Tunables defaults.
type fileConfig struct {
	Seed             *uint64 `yaml:"seed"`
	SeaLevel         *int    `yaml:"sea_level"`
	SnowLine         *int    `yaml:"snow_line"`
	CavesEnabled     *bool   `yaml:"caves_enabled"`
	ChunkTaskCap     *int    `yaml:"chunk_task_cap"`
	ChunkTaskPerTick *int    `yaml:"chunk_task_per_tick"`
	CountryPoolSize  *int    `yaml:"country_pool_size"`
	ChunkPoolSize    *int    `yaml:"chunk_pool_size"`
}

// LoadFile reads a .ron config file (YAML-shaped content; see
// internal/voxel's Blueprint loader for the same substitution) and
// applies any fields it sets onto t. Missing fields keep their defaults.
func (t *Tunables) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return err
	}

	if fc.Seed != nil {
		t.SetSeed(*fc.Seed)
	}
	if fc.SeaLevel != nil {
		t.SetSeaLevel(*fc.SeaLevel)
	}
	if fc.SnowLine != nil {
		t.SetSnowLine(*fc.SnowLine)
	}
	if fc.CavesEnabled != nil {
		t.SetCavesEnabled(*fc.CavesEnabled)
	}
	if fc.ChunkTaskCap != nil {
		t.SetChunkTaskCap(*fc.ChunkTaskCap)
	}
	if fc.ChunkTaskPerTick != nil {
		t.SetChunkTaskPerTick(*fc.ChunkTaskPerTick)
	}
	if fc.CountryPoolSize != nil {
		t.SetCountryPoolSize(*fc.CountryPoolSize)
	}
	if fc.ChunkPoolSize != nil {
		t.SetChunkPoolSize(*fc.ChunkPoolSize)
	}
	return nil
}
