package voxel

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"voxelstream/internal/blocktype"
	"voxelstream/internal/country"
)

// Blueprint is a fixed-footprint structure loaded from a .ron asset file,
// the structured-placement counterpart to the procedural L-system trees.
// The on-disk format is YAML-shaped content kept under a .ron extension:
// no Go RON parser exists in this codebase's dependency stack, so
// blueprints are parsed with gopkg.in/yaml.v3 the way Gekko3D-gekko
// loads its scene descriptors.
type Blueprint struct {
	Name   string         `yaml:"name"`
	Size   [3]int         `yaml:"size"`
	Blocks []BlueprintBlock `yaml:"blocks"`
}

// BlueprintBlock is one voxel entry within a blueprint, relative to its
// origin corner.
type BlueprintBlock struct {
	Pos   [3]int `yaml:"pos"`
	Block string `yaml:"block"`
}

// Loader loads and caches blueprints from an assets directory: a path
// join plus an in-memory cache by name, with no parent-model
// inheritance needed since blueprints are flat.
type Loader struct {
	assetsPath string
	mu         sync.Mutex
	cache      map[string]*Blueprint
}

// NewLoader creates a blueprint loader rooted at assetsPath.
func NewLoader(assetsPath string) *Loader {
	return &Loader{
		assetsPath: assetsPath,
		cache:      make(map[string]*Blueprint),
	}
}

// Load reads and parses a blueprint by name (without extension), caching
// the result for subsequent calls.
func (l *Loader) Load(name string) (*Blueprint, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if bp, ok := l.cache[name]; ok {
		return bp, nil
	}

	path := filepath.Join(l.assetsPath, strings.TrimSuffix(name, ".ron")+".ron")
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("voxel: could not read blueprint %q: %w", name, err)
	}

	var bp Blueprint
	if err := yaml.Unmarshal(data, &bp); err != nil {
		return nil, fmt.Errorf("voxel: could not parse blueprint %q: %w", name, err)
	}
	l.cache[name] = &bp
	return &bp, nil
}

// StampBlueprint writes a blueprint's blocks into grid, anchored at the
// structure's origin. Blocks that fall outside the grid (including its
// halo) are silently clipped rather than treated as an error.
func StampBlueprint(grid *Grid, bp *Blueprint, s country.Structure, originX, originY, originZ, mult int) {
	for _, b := range bp.Blocks {
		wx := s.Origin.X + b.Pos[0]
		wy := s.Origin.Y + b.Pos[1]
		wz := s.Origin.Z + b.Pos[2]

		if (wx-originX)%mult != 0 || (wy-originY)%mult != 0 || (wz-originZ)%mult != 0 {
			continue
		}
		lx := (wx-originX)/mult + 1
		ly := (wy-originY)/mult + 1
		lz := (wz-originZ)/mult + 1

		grid.Set(lx, ly, lz, blocktype.FromName(b.Block))
	}
}
