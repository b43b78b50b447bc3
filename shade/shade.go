// Package shade derives the 50..950 design-token scale from a single color.
//
// Lighter shades blend the base toward white and darker shades blend it
// toward black, linearly per channel. 500 is always the base color itself.
package shade

import (
	"strconv"

	"github.com/twshades/twshades/color"
)

// Base is the identifier of the unmodified input color.
const Base = 500

// Shades lists the scale identifiers from lightest to darkest.
var Shades = [...]int{50, 100, 200, 300, 400, 500, 600, 700, 800, 900, 950}

// Swatch is a single entry of a Scale.
type Swatch struct {
	Shade int
	Color color.RGB
}

// Key returns the shade identifier as a map key, e.g. "50".
func (s Swatch) Key() string {
	return strconv.Itoa(s.Shade)
}

// String formats the swatch color as "rgb(R, G, B)".
func (s Swatch) String() string {
	return s.Color.String()
}

// Scale holds one swatch per identifier in Shades order.
type Scale [len(Shades)]Swatch

// Generate computes the scale for base.
func Generate(base color.RGB) Scale {
	var scale Scale

	for i, shade := range Shades {
		scale[i] = Swatch{Shade: shade, Color: base}
		if shade == Base {
			continue
		}

		if shade > Base {
			scale[i].Color = Mix(float64(shade-Base)/Base, color.Black, base)
		} else {
			scale[i].Color = Mix(float64(shade)/Base, base, color.White)
		}
	}

	return scale
}

// Mix returns the color at percentage along the way from end back to start,
// so percentage 0 is end and 1 is start. Each channel is rounded half-up.
func Mix(percentage float64, start, end color.RGB) color.RGB {
	mix := func(s, e uint8) uint8 {
		return uint8(color.Round(float64(e) + percentage*(float64(s)-float64(e))))
	}

	return color.RGB{
		R: mix(start.R, end.R),
		G: mix(start.G, end.G),
		B: mix(start.B, end.B),
	}
}

// Get returns the color for the given identifier.
func (s Scale) Get(shade int) (color.RGB, bool) {
	for _, swatch := range s {
		if swatch.Shade == shade {
			return swatch.Color, true
		}
	}
	return color.RGB{}, false
}

// Map returns the scale keyed by identifier with formatted colors.
func (s Scale) Map() map[int]string {
	m := make(map[int]string, len(s))
	for _, swatch := range s {
		m[swatch.Shade] = swatch.String()
	}
	return m
}

// Strings returns the formatted colors in Shades order.
func (s Scale) Strings() []string {
	out := make([]string, len(s))
	for i, swatch := range s {
		out[i] = swatch.String()
	}
	return out
}
