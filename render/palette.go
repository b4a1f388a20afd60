package render

import (
	"math"

	"github.com/marben/mandelzoom/kernel"
)

// Color maps an escape count to its 8-bit channels: black for samples
// treated as inside the set, otherwise the sine palette
// round(sin(0.1n + phase)*127 + 128) with phases 0, 2 and 4.
func Color(n int) (r, g, b uint8) {
	if n >= kernel.MaxIterations {
		return 0, 0, 0
	}
	fn := float64(n)
	r = uint8(math.Round(math.Sin(0.1*fn)*127 + 128))
	g = uint8(math.Round(math.Sin(0.1*fn+2)*127 + 128))
	b = uint8(math.Round(math.Sin(0.1*fn+4)*127 + 128))
	return r, g, b
}

// PackARGB packs 8-bit channels with a fixed opaque alpha into a 32-bit
// ARGB word.
func PackARGB(r, g, b uint8) uint32 {
	return 0xFF000000 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// palette caches the packed word for every possible count.
var palette [kernel.MaxIterations + 1]uint32

func init() {
	for n := range palette {
		palette[n] = PackARGB(Color(n))
	}
}

// shade returns the packed ARGB word for a count in [0, MaxIterations].
func shade(n int) uint32 {
	return palette[n]
}
