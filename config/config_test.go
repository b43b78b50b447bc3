package config

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/twshades/twshades/filesystem"
	"github.com/twshades/twshades/key"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		Convey("Should initialize without a config file", func() {
			So(Setup(), ShouldBeNil)
		})

		Convey("Should have default values populated", func() {
			So(Setup(), ShouldBeNil)
			for name, field := range Default {
				So(viper.Get(name), ShouldResemble, field.Value)
			}
		})

		Convey("Should read environment overrides", func() {
			t.Setenv("TWSHADES_OUTPUT_FORMAT", "css")
			So(Setup(), ShouldBeNil)
			So(viper.GetString(key.OutputFormat), ShouldEqual, "css")
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("shades.make"), ShouldEqual, "shades_make")
		})
	})
}

func TestField(t *testing.T) {
	Convey("Given a registered field", t, func() {
		field := Default[key.TUISwatchWidth]

		Convey("Env is prefixed and upper-cased", func() {
			So(field.Env(), ShouldEqual, "TWSHADES_TUI_SWATCH_WIDTH")
		})

		Convey("MarshalJSON reports its type and default", func() {
			data, err := json.Marshal(&field)
			So(err, ShouldBeNil)

			var decoded map[string]any
			So(json.Unmarshal(data, &decoded), ShouldBeNil)
			So(decoded["key"], ShouldEqual, key.TUISwatchWidth)
			So(decoded["type"], ShouldEqual, "int")
			So(decoded["default"], ShouldEqual, float64(10))
		})

		Convey("Pretty mentions the key", func() {
			So(field.Pretty(), ShouldContainSubstring, key.TUISwatchWidth)
		})
	})
}
