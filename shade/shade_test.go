package shade

import (
	"errors"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/twshades/twshades/color"
)

func TestGenerate(t *testing.T) {
	Convey("Given #3498db", t, func() {
		scale, err := Of("#3498db")
		So(err, ShouldBeNil)

		Convey("Every shade matches the reference table", func() {
			So(scale.Map(), ShouldResemble, map[int]string{
				50:  "rgb(235, 245, 251)",
				100: "rgb(214, 234, 248)",
				200: "rgb(174, 214, 241)",
				300: "rgb(133, 193, 233)",
				400: "rgb(93, 173, 226)",
				500: "rgb(52, 152, 219)",
				600: "rgb(42, 122, 175)",
				700: "rgb(31, 91, 131)",
				800: "rgb(21, 61, 88)",
				900: "rgb(10, 30, 44)",
				950: "rgb(5, 15, 22)",
			})
		})

		Convey("Swatches are ordered from lightest to darkest", func() {
			for i, swatch := range scale {
				So(swatch.Shade, ShouldEqual, Shades[i])
			}
			So(scale.Strings()[0], ShouldEqual, "rgb(235, 245, 251)")
			So(scale[len(scale)-1].Key(), ShouldEqual, "950")
		})

		Convey("Get looks up by identifier", func() {
			c, ok := scale.Get(950)
			So(ok, ShouldBeTrue)
			So(c, ShouldResemble, color.RGB{R: 5, G: 15, B: 22})

			_, ok = scale.Get(550)
			So(ok, ShouldBeFalse)
		})
	})
}

func TestScaleProperties(t *testing.T) {
	inputs := []string{"#3498db", "#abc", "rgb(12 200 99)", "hsl(300, 40%, 30%)", "#000", "#fff", "#808080"}

	Convey("For any valid color", t, func() {
		for _, input := range inputs {
			Convey(input, func() {
				base := color.MustParse(input)
				scale := Generate(base)

				Convey("500 is the input unchanged", func() {
					c, _ := scale.Get(Base)
					So(c, ShouldResemble, base)
					So(scale.Map()[Base], ShouldEqual, base.String())
				})

				Convey("Lightness does not increase from 50 to 950", func() {
					for i := 1; i < len(scale); i++ {
						So(scale[i].Color.Sum(), ShouldBeLessThanOrEqualTo, scale[i-1].Color.Sum())
					}
				})
			})
		}
	})

	Convey("White and black degenerate at one end", t, func() {
		white := Generate(color.White)
		for _, swatch := range white[:6] {
			So(swatch.Color, ShouldResemble, color.White)
		}
		So(white[len(white)-1].Color.Sum(), ShouldBeLessThan, color.White.Sum())

		black := Generate(color.Black)
		for _, swatch := range black[5:] {
			So(swatch.Color, ShouldResemble, color.Black)
		}
		So(black[0].Color.Sum(), ShouldBeGreaterThan, 0)
	})
}

func TestMix(t *testing.T) {
	Convey("Mix interpolates from end toward start", t, func() {
		base := color.RGB{R: 100, G: 50, B: 0}
		So(Mix(0, color.White, base), ShouldResemble, base)
		So(Mix(1, color.White, base), ShouldResemble, color.White)
		So(Mix(0.5, color.Black, base), ShouldResemble, color.RGB{R: 50, G: 25, B: 0})
	})
}

func TestMake(t *testing.T) {
	Convey("Given the extended variant", t, func() {
		Convey("Variable references pass through regardless of makeShades", func() {
			for _, makeShades := range []bool{true, false} {
				result, err := OfExtended("--brand-color", makeShades)
				So(err, ShouldBeNil)
				So(result.IsRight(), ShouldBeTrue)
				So(result.MustRight(), ShouldEqual, "rgb(var(--brand-color) / <alpha-value>)")
			}
		})

		Convey("makeShades=false returns the space separated alpha form", func() {
			result, err := OfExtended("#ffffff", false)
			So(err, ShouldBeNil)
			So(result.MustRight(), ShouldEqual, "rgb(255 255 255 / <alpha-value>)")
		})

		Convey("makeShades=true returns the scale", func() {
			result, err := OfExtended("#3498db", true)
			So(err, ShouldBeNil)
			So(result.IsLeft(), ShouldBeTrue)
			So(result.MustLeft().Map()[500], ShouldEqual, "rgb(52, 152, 219)")
		})

		Convey("Invalid colors still fail", func() {
			_, err := OfExtended("#12", false)
			So(errors.Is(err, color.ErrInvalidHex), ShouldBeTrue)
		})
	})

	Convey("Given the basic variant", t, func() {
		Convey("Variable references are unsupported", func() {
			_, err := Of("--brand-color")
			So(errors.Is(err, color.ErrUnsupportedFormat), ShouldBeTrue)
		})

		Convey("Errors propagate from the parser", func() {
			_, err := Of("notacolor")
			So(errors.Is(err, color.ErrUnsupportedFormat), ShouldBeTrue)

			_, err = Of("rgb(999,999,999)")
			So(errors.Is(err, color.ErrInvalidRGB), ShouldBeTrue)
		})
	})
}
