package texture

import (
	"math/rand"
	"time"
)

// GenerateFunc produces one frame of a material. frame is 0 for static
// materials. Every call fills a fresh bitmap; nothing is cached.
type GenerateFunc func(rng *rand.Rand, frame int) *Bitmap

// Material is one catalog entry: a named texture with a fixed frame count
// and the frame hold time the renderer cycles animated sets with.
type Material struct {
	Name     string
	Frames   int
	Duration time.Duration
	Generate GenerateFunc
}

// Options select between divergent generator variants.
type Options struct {
	WoodStyle WoodStyle
}

// Catalog returns the ordered material list driving a batch run. The order
// matters only for log output and seed derivation; generators have no data
// dependency on each other.
func Catalog(opts Options) []Material {
	wood := generateWoodRings
	if opts.WoodStyle == WoodDrawn {
		wood = generateWoodDrawn
	}

	return []Material{
		{Name: "grass_top", Frames: 1, Generate: generateGrassTop},
		{Name: "grass_side", Frames: 1, Generate: generateGrassSide},
		{Name: "dirt", Frames: 1, Generate: generateDirt},
		{Name: "stone", Frames: 1, Generate: generateStone},
		{Name: "wood", Frames: 1, Generate: wood},
		{Name: "leaves", Frames: 1, Generate: generateLeaves},
		{Name: "water", Frames: 4, Duration: 300 * time.Millisecond, Generate: generateWater},
		{Name: "lava", Frames: 4, Duration: 200 * time.Millisecond, Generate: generateLava},
		{Name: "portal", Frames: 6, Duration: 150 * time.Millisecond, Generate: generatePortal},
		{Name: "netherrack", Frames: 1, Generate: generateNetherrack},
		{Name: "nether_brick", Frames: 1, Generate: generateNetherBrick},
		{Name: "soul_sand", Frames: 1, Generate: generateSoulSand},
		{Name: "glowstone", Frames: 1, Generate: generateGlowstone},
		{Name: "diamond", Frames: 1, Generate: generateDiamond},
		{Name: "emerald", Frames: 1, Generate: generateEmerald},
		{Name: "obsidian", Frames: 1, Generate: generateObsidian},
		{Name: "ice", Frames: 1, Generate: generateIce},
		{Name: "brick", Frames: 1, Generate: generateBrick},
		{Name: "sand", Frames: 1, Generate: generateSand},
		{Name: "clouds", Frames: 4, Duration: 250 * time.Millisecond, Generate: generateClouds},
	}
}

// GenerateSet renders every frame of a material from the given randomness
// source. Frames are independent; the shared rng only threads the stream.
func GenerateSet(m Material, rng *rand.Rand) *TextureSet {
	set := &TextureSet{Name: m.Name, FrameDuration: m.Duration}
	for f := 0; f < m.Frames; f++ {
		set.Frames = append(set.Frames, m.Generate(rng, f))
	}
	return set
}
