package color

import (
	"regexp"
	"strconv"
	"strings"
)

// space widens RE2's \s to the whitespace browsers accept, adding \v and
// the Unicode space separators.
const space = `[\s\v\p{Z}\x{FEFF}]`

var (
	rgbPattern = pattern(`^rgb\s*\(\s*(\d{1,3})\s*[, ]\s*(\d{1,3})\s*[, ]\s*(\d{1,3})\s*\)$`)
	hslPattern = pattern(`^hsl\(\s*(\d{1,3})\s*,\s*(\d{1,3})%\s*,\s*(\d{1,3})%\s*\)$`)
)

func pattern(expr string) *regexp.Regexp {
	return regexp.MustCompile(strings.ReplaceAll(expr, `\s`, space))
}

// Parse converts a hex (#rgb, #rrggbb), rgb() or hsl() color string into
// an RGB triple. Prefixes are matched case-sensitively.
//
// Errors are *ParseError values wrapping ErrUnsupportedFormat,
// ErrInvalidHex, ErrInvalidRGB or ErrInvalidHSL.
func Parse(input string) (RGB, error) {
	var (
		channels [3]int
		err      error
	)

	switch {
	case strings.HasPrefix(input, "#"):
		channels, err = parseHex(input)
	case strings.HasPrefix(input, "rgb("):
		channels, err = parseRGB(input)
	case strings.HasPrefix(input, "hsl("):
		channels, err = parseHSL(input)
	default:
		err = &ParseError{Input: input, Err: ErrUnsupportedFormat}
	}

	if err != nil {
		return RGB{}, err
	}

	return validate(input, channels)
}

// MustParse is like Parse but panics on error.
func MustParse(input string) RGB {
	c, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return c
}

func validate(input string, channels [3]int) (RGB, error) {
	for _, v := range channels {
		if v < 0 || v > 255 {
			return RGB{}, &ParseError{Input: input, Err: ErrInvalidRGB, Channels: channels[:]}
		}
	}

	return RGB{uint8(channels[0]), uint8(channels[1]), uint8(channels[2])}, nil
}

func parseHex(input string) (channels [3]int, err error) {
	hex := strings.TrimPrefix(input, "#")

	switch len(hex) {
	case 3:
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return channels, &ParseError{Input: input, Err: ErrInvalidHex}
	}

	for i := range channels {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return channels, &ParseError{Input: input, Err: ErrInvalidHex}
		}
		channels[i] = int(v)
	}

	return channels, nil
}

func parseRGB(input string) (channels [3]int, err error) {
	match := rgbPattern.FindStringSubmatch(input)
	if match == nil {
		return channels, &ParseError{Input: input, Err: ErrInvalidRGB}
	}

	for i := range channels {
		// at most three digits, Atoi cannot fail
		channels[i], _ = strconv.Atoi(match[i+1])
	}

	return channels, nil
}

func parseHSL(input string) (channels [3]int, err error) {
	match := hslPattern.FindStringSubmatch(input)
	if match == nil {
		return channels, &ParseError{Input: input, Err: ErrInvalidHSL}
	}

	var hsl [3]float64
	for i := range hsl {
		v, _ := strconv.Atoi(match[i+1])
		hsl[i] = float64(v)
	}

	r, g, b := HSLToRGB(hsl[0]/360, hsl[1]/100, hsl[2]/100)
	return [3]int{Round(r * 255), Round(g * 255), Round(b * 255)}, nil
}
