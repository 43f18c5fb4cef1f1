// Package colour holds linear RGB values as produced by the shading pipeline.
// Channels are unclamped; clamping happens only when an image is written.
package colour

import (
	"fmt"
	"math"

	"whitted-renderer/internal/mathutil"
)

// Colour is an RGB triple. Value type.
type Colour struct {
	R, G, B float64
}

var (
	Black  = Colour{0, 0, 0}
	White  = Colour{1, 1, 1}
	Red    = Colour{1, 0, 0}
	Green  = Colour{0, 1, 0}
	Blue   = Colour{0, 0, 1}
	Yellow = Colour{1, 1, 0}
)

func New(r, g, b float64) Colour {
	return Colour{r, g, b}
}

func (c Colour) Add(o Colour) Colour {
	return Colour{c.R + o.R, c.G + o.G, c.B + o.B}
}

func (c Colour) Sub(o Colour) Colour {
	return Colour{c.R - o.R, c.G - o.G, c.B - o.B}
}

// Scale multiplies every channel by s.
func (c Colour) Scale(s float64) Colour {
	return Colour{c.R * s, c.G * s, c.B * s}
}

// Mul is the Hadamard (channel-wise) product, used to tint by a light.
func (c Colour) Mul(o Colour) Colour {
	return Colour{c.R * o.R, c.G * o.G, c.B * o.B}
}

// Lerp blends linearly from c (f=0) to o (f=1).
func (c Colour) Lerp(o Colour, f float64) Colour {
	return c.Add(o.Sub(c).Scale(f))
}

func (c Colour) ApproxEqual(o Colour) bool {
	return mathutil.ApproxEqual(c.R, o.R) &&
		mathutil.ApproxEqual(c.G, o.G) &&
		mathutil.ApproxEqual(c.B, o.B)
}

// Quantize clamps each channel to [0, 1] and maps it onto 0..max,
// rounding half away from zero.
func (c Colour) Quantize(max int) (r, g, b int) {
	return quantize(c.R, max), quantize(c.G, max), quantize(c.B, max)
}

func quantize(v float64, max int) int {
	switch {
	case v <= 0 || math.IsNaN(v):
		return 0
	case v >= 1:
		return max
	}
	return int(math.Round(v * float64(max)))
}

func (c Colour) String() string {
	return fmt.Sprintf("rgb(%.5f, %.5f, %.5f)", c.R, c.G, c.B)
}
