package color

import (
	"fmt"
	"math/rand/v2"
)

// colorSpace is the number of distinct 24-bit colors (16^6).
const colorSpace = 1 << 24

// DefaultPaletteSize is the number of swatches in a generated palette.
const DefaultPaletteSize = 5

// Generator produces uniformly distributed random colors. It is not safe for
// concurrent use.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator seeded from seed. A zero seed draws a
// fresh seed from the runtime source.
func NewGenerator(seed uint64) *Generator {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Random returns a uniformly chosen color as "#rrggbb".
func (g *Generator) Random() string {
	return fmt.Sprintf("#%06x", g.rng.IntN(colorSpace))
}

// Palette returns n random colors. n <= 0 yields DefaultPaletteSize colors.
func (g *Generator) Palette(n int) []string {
	if n <= 0 {
		n = DefaultPaletteSize
	}
	out := make([]string, n)
	for i := range out {
		out[i] = g.Random()
	}
	return out
}
