// Package registry holds the block-definition table: per-block textures
// (by face), tint, and hardness, keyed onto blocktype.Type and reduced to
// the properties the mesher and voxel generator actually consume (no
// rendering-side atlas/HUD concerns — out of scope for this engine).
package registry

import "voxelstream/internal/blocktype"

// Definition describes one block type's mesh-facing properties.
type Definition struct {
	ID            blocktype.Type
	Name          string
	TextureTop    string
	TextureSide   string
	TextureBottom string
	TintColor     uint32 // 0xRRGGBB, 0 = no tint
	TintFaces     map[blocktype.Face]bool
	Hardness      float32
}

var (
	blocks       = make(map[blocktype.Type]*Definition)
	textureNames []string
	textureIndex = make(map[string]uint32)
)

func register(def *Definition) {
	blocks[def.ID] = def
	registerTexture(def.TextureTop)
	registerTexture(def.TextureSide)
	registerTexture(def.TextureBottom)
}

func registerTexture(name string) {
	if name == "" {
		return
	}
	if _, ok := textureIndex[name]; ok {
		return
	}
	textureIndex[name] = uint32(len(textureNames))
	textureNames = append(textureNames, name)
}

func init() {
	register(&Definition{ID: blocktype.Air, Name: "air"})

	register(&Definition{
		ID:            blocktype.Grass,
		Name:          "grass",
		TextureTop:    "grass_top.png",
		TextureSide:   "grass_side.png",
		TextureBottom: "dirt.png",
		TintColor:     0x7DFF5C,
		TintFaces:     map[blocktype.Face]bool{blocktype.FaceTop: true},
		Hardness:      0.6,
	})

	register(&Definition{
		ID:            blocktype.Dirt,
		Name:          "dirt",
		TextureTop:    "dirt.png",
		TextureSide:   "dirt.png",
		TextureBottom: "dirt.png",
		Hardness:      0.5,
	})

	register(&Definition{
		ID:            blocktype.Stone,
		Name:          "stone",
		TextureTop:    "stone.png",
		TextureSide:   "stone.png",
		TextureBottom: "stone.png",
		Hardness:      1.5,
	})

	register(&Definition{
		ID:            blocktype.Bedrock,
		Name:          "bedrock",
		TextureTop:    "bedrock.png",
		TextureSide:   "bedrock.png",
		TextureBottom: "bedrock.png",
		Hardness:      -1.0,
	})

	register(&Definition{
		ID:            blocktype.Log,
		Name:          "log",
		TextureTop:    "log_top.png",
		TextureSide:   "log_side.png",
		TextureBottom: "log_top.png",
		Hardness:      2.0,
	})

	register(&Definition{
		ID:            blocktype.Leaf,
		Name:          "leaf",
		TextureTop:    "leaf.png",
		TextureSide:   "leaf.png",
		TextureBottom: "leaf.png",
		TintColor:     0x5CB85C,
		TintFaces: map[blocktype.Face]bool{
			blocktype.FaceTop: true, blocktype.FaceBottom: true,
			blocktype.FaceNorth: true, blocktype.FaceSouth: true,
			blocktype.FaceEast: true, blocktype.FaceWest: true,
		},
		Hardness: 0.2,
	})

	register(&Definition{
		ID:            blocktype.Snow,
		Name:          "snow",
		TextureTop:    "snow.png",
		TextureSide:   "snow_side.png",
		TextureBottom: "dirt.png",
		Hardness:      0.1,
	})
}

// Get returns the definition for a block type, or nil if unregistered.
func Get(t blocktype.Type) *Definition {
	return blocks[t]
}

// TextureLayer returns the texture-atlas layer index for a block face,
// falling back to layer 0 for unregistered blocks/textures.
func TextureLayer(t blocktype.Type, face blocktype.Face) uint32 {
	def := blocks[t]
	if def == nil {
		return 0
	}
	var name string
	switch face {
	case blocktype.FaceTop:
		name = def.TextureTop
	case blocktype.FaceBottom:
		name = def.TextureBottom
	default:
		name = def.TextureSide
	}
	if idx, ok := textureIndex[name]; ok {
		return idx
	}
	return 0
}

// TintColor returns the tint color to apply to a block face, or 0 (no
// tint) if the face isn't tinted.
func TintColor(t blocktype.Type, face blocktype.Face) uint32 {
	def := blocks[t]
	if def == nil || def.TintColor == 0 {
		return 0
	}
	if def.TintFaces != nil && def.TintFaces[face] {
		return def.TintColor
	}
	return 0
}
