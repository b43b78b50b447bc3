package color

import (
	"fmt"
	"math"
)

// AlphaValue is the placeholder design-token pipelines substitute with an opacity.
const AlphaValue = "<alpha-value>"

// RGB is a color as three 8-bit channels.
type RGB struct {
	R, G, B uint8
}

// Black and White are the endpoints shades are blended toward.
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

// String formats c as "rgb(R, G, B)".
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Alpha formats c as "rgb(R G B / <alpha-value>)" so an opacity can be
// composed in later.
func (c RGB) Alpha() string {
	return fmt.Sprintf("rgb(%d %d %d / %s)", c.R, c.G, c.B, AlphaValue)
}

// Hex formats c as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Sum returns R+G+B, a cheap lightness ordering.
func (c RGB) Sum() int {
	return int(c.R) + int(c.G) + int(c.B)
}

// Round rounds half away from zero for positive values and half up in general,
// giving the same result as JavaScript's Math.round.
func Round(x float64) int {
	return int(math.Floor(x + 0.5))
}
