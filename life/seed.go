package life

import (
	"math/rand"

	"github.com/aquilax/go-perlin"
)

// Dead leaves every cell dead.
func Dead(x, y int) bool { return false }

// Random makes each cell alive with probability p.
func Random(rng *rand.Rand, p float64) Initializer {
	return func(x, y int) bool {
		return rng.Float64() < p
	}
}

// Perlin noise parameters for PerlinSeed.
const (
	perlinAlpha = 2.0
	perlinBeta  = 2.0
	perlinN     = 3
	perlinScale = 0.15
)

// PerlinSeed makes cells alive where 2D Perlin noise sampled at the cell is
// above a threshold picked so that roughly a fraction p of the field is
// alive. Nearby cells get similar values, so the seed forms blobs rather
// than salt-and-pepper noise.
func PerlinSeed(seed int64, p float64) Initializer {
	switch {
	case p <= 0:
		return Dead
	case p >= 1:
		return func(x, y int) bool { return true }
	}
	noise := perlin.NewPerlin(perlinAlpha, perlinBeta, perlinN, seed)
	// With these parameters Noise2D mostly falls in [-0.5, 0.5].
	threshold := 0.5 - p
	return func(x, y int) bool {
		v := noise.Noise2D(float64(x)*perlinScale, float64(y)*perlinScale)
		return v > threshold
	}
}

// Cells returns an initializer that makes exactly the listed cells alive.
func Cells(alive ...[2]int) Initializer {
	set := make(map[[2]int]bool, len(alive))
	for _, c := range alive {
		set[c] = true
	}
	return func(x, y int) bool {
		return set[[2]int{x, y}]
	}
}
