package theme

import (
	"encoding/binary"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
)

// hueSteps is the resolution of a drawn hue; draws land on k/hueSteps of a
// full turn for k in [0, hueSteps], so both 0 and 360 are reachable.
const hueSteps = 1 << 53

// RandomizeColor keeps the Okhsl saturation and lightness of base and
// replaces its hue with one derived from seed. The same pair always yields
// the same color, on any platform.
func RandomizeColor(base Color, seed string) Color {
	hsl := ToHsl(base)
	hsl.Hue = seededHue(seed)
	return FromHsl(hsl)
}

func seededHue(seed string) float64 {
	rng := rand.New(newSeedSource(xxhash.Sum64String(seed)))
	n := rng.Uint64N(hueSteps + 1)
	return float64(n) / hueSteps * 360
}

// newSeedSource expands a 64-bit seed into a ChaCha8 key.
func newSeedSource(seed uint64) *rand.ChaCha8 {
	var key [32]byte
	for i := range 4 {
		binary.LittleEndian.PutUint64(key[i*8:], seed+uint64(i)*0x9e3779b97f4a7c15)
	}
	return rand.NewChaCha8(key)
}
