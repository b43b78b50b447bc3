package color

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParseHex(t *testing.T) {
	Convey("Given hex colors", t, func() {
		Convey("Six digits are decoded pairwise", func() {
			So(MustParse("#3498db"), ShouldResemble, RGB{52, 152, 219})
		})

		Convey("Digits are case-insensitive", func() {
			So(MustParse("#3498DB"), ShouldResemble, MustParse("#3498db"))
		})

		Convey("Three digits are duplicated", func() {
			So(MustParse("#abc"), ShouldResemble, MustParse("#aabbcc"))
			So(MustParse("#fff"), ShouldResemble, White)
		})

		Convey("Any other length is rejected", func() {
			for _, input := range []string{"#12", "#", "#1234", "#12345678"} {
				_, err := Parse(input)
				So(errors.Is(err, ErrInvalidHex), ShouldBeTrue)
				So(err.Error(), ShouldContainSubstring, input)
			}
		})

		Convey("Non-hex digits are rejected", func() {
			_, err := Parse("#zzzzzz")
			So(errors.Is(err, ErrInvalidHex), ShouldBeTrue)
		})
	})
}

func TestParseRGB(t *testing.T) {
	Convey("Given rgb() literals", t, func() {
		Convey("Commas, spaces and mixed separators parse identically", func() {
			want := RGB{1, 2, 3}
			for _, input := range []string{"rgb(1,2,3)", "rgb(1 2 3)", "rgb(1, 2, 3)", "rgb( 1 ,2 , 3 )"} {
				So(MustParse(input), ShouldResemble, want)
			}
		})

		Convey("Vertical tabs and Unicode spaces are whitespace", func() {
			So(MustParse("rgb(\v1,\u00a02 ,3\u3000)"), ShouldResemble, RGB{1, 2, 3})

			_, err := Parse("rgb(1\v2\v3)")
			So(errors.Is(err, ErrInvalidRGB), ShouldBeTrue)
		})

		Convey("Malformed literals are invalid RGB", func() {
			for _, input := range []string{"rgb(1,2)", "rgb(1,2,3,4)", "rgb(a,b,c)", "rgb(1234,0,0)", "rgb(1,2,3"} {
				_, err := Parse(input)
				So(errors.Is(err, ErrInvalidRGB), ShouldBeTrue)
				So(errors.Is(err, ErrOutOfRange), ShouldBeFalse)
			}
		})

		Convey("Out of range channels are invalid RGB listing the triple", func() {
			_, err := Parse("rgb(999,999,999)")
			So(errors.Is(err, ErrInvalidRGB), ShouldBeTrue)
			So(errors.Is(err, ErrOutOfRange), ShouldBeTrue)
			So(err.Error(), ShouldEqual, "invalid RGB color: 999,999,999")

			var parseErr *ParseError
			So(errors.As(err, &parseErr), ShouldBeTrue)
			So(parseErr.Input, ShouldEqual, "rgb(999,999,999)")
		})

		Convey("The boundaries are accepted", func() {
			So(MustParse("rgb(0,0,0)"), ShouldResemble, Black)
			So(MustParse("rgb(255,255,255)"), ShouldResemble, White)
		})
	})
}

func TestParseHSL(t *testing.T) {
	Convey("Given hsl() literals", t, func() {
		Convey("Primary hues convert exactly", func() {
			So(MustParse("hsl(0, 100%, 50%)"), ShouldResemble, RGB{255, 0, 0})
			So(MustParse("hsl(120, 100%, 50%)"), ShouldResemble, RGB{0, 255, 0})
			So(MustParse("hsl(240, 100%, 50%)"), ShouldResemble, RGB{0, 0, 255})
		})

		Convey("Zero saturation is gray at the lightness value", func() {
			So(MustParse("hsl(0, 0%, 50%)"), ShouldResemble, RGB{128, 128, 128})
			So(MustParse("hsl(200, 0%, 100%)"), ShouldResemble, White)
			So(MustParse("hsl(0,0%,0%)"), ShouldResemble, Black)
		})

		Convey("Hues past 360 are accepted and wrap", func() {
			So(MustParse("hsl(400, 50%, 50%)"), ShouldResemble, MustParse("hsl(40, 50%, 50%)"))
			So(MustParse("hsl(40, 50%, 50%)"), ShouldResemble, RGB{191, 149, 64})
		})

		Convey("Unicode spaces are whitespace", func() {
			So(MustParse("hsl(\ufeff0,\v100%,\u200950%)"), ShouldResemble, RGB{255, 0, 0})
		})

		Convey("Malformed literals are invalid HSL", func() {
			for _, input := range []string{"hsl(0 100% 50%)", "hsl(0, 100, 50)", "hsl(0deg, 100%, 50%)", "hsl(0, 100%)"} {
				_, err := Parse(input)
				So(errors.Is(err, ErrInvalidHSL), ShouldBeTrue)
			}
		})

		Convey("Oversaturated values that leave the gamut fail validation", func() {
			_, err := Parse("hsl(0, 300%, 50%)")
			So(errors.Is(err, ErrInvalidRGB), ShouldBeTrue)
			So(errors.Is(err, ErrOutOfRange), ShouldBeTrue)
		})
	})
}

func TestParseDispatch(t *testing.T) {
	Convey("Given an unknown notation", t, func() {
		for _, input := range []string{"notacolor", "red", "RGB(1,2,3)", "--brand", "", "hwb(0 0% 0%)"} {
			_, err := Parse(input)
			So(errors.Is(err, ErrUnsupportedFormat), ShouldBeTrue)
			So(err.Error(), ShouldEqual, "unsupported color format: "+input)
		}
	})
}

func TestRoundTrip(t *testing.T) {
	Convey("Given representable triples", t, func() {
		cases := []struct {
			rgb RGB
			hsl string
		}{
			{RGB{255, 0, 0}, "hsl(0, 100%, 50%)"},
			{RGB{0, 255, 0}, "hsl(120, 100%, 50%)"},
			{RGB{0, 0, 255}, "hsl(240, 100%, 50%)"},
			{RGB{255, 255, 0}, "hsl(60, 100%, 50%)"},
			{RGB{128, 128, 128}, "hsl(0, 0%, 50%)"},
			{White, "hsl(0, 0%, 100%)"},
			{Black, "hsl(0, 0%, 0%)"},
		}

		for _, c := range cases {
			Convey(c.rgb.Hex(), func() {
				So(MustParse(c.rgb.Hex()), ShouldResemble, c.rgb)
				So(MustParse(c.rgb.String()), ShouldResemble, c.rgb)

				got := MustParse(c.hsl)
				So(int(got.R), ShouldAlmostEqual, int(c.rgb.R), 1)
				So(int(got.G), ShouldAlmostEqual, int(c.rgb.G), 1)
				So(int(got.B), ShouldAlmostEqual, int(c.rgb.B), 1)
			})
		}
	})
}

func TestFormat(t *testing.T) {
	Convey("Given a triple", t, func() {
		c := RGB{52, 152, 219}
		So(c.String(), ShouldEqual, "rgb(52, 152, 219)")
		So(c.Alpha(), ShouldEqual, "rgb(52 152 219 / <alpha-value>)")
		So(c.Hex(), ShouldEqual, "#3498db")
		So(c.Sum(), ShouldEqual, 423)
		So(string(c.Lipgloss()), ShouldEqual, "#3498db")
	})

	Convey("Round matches half-up rounding", t, func() {
		So(Round(127.5), ShouldEqual, 128)
		So(Round(234.4), ShouldEqual, 234)
		So(Round(-127.5), ShouldEqual, -127)
	})
}
