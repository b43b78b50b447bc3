package log

import (
	"path/filepath"
	"testing"

	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/twshades/twshades/filesystem"
	"github.com/twshades/twshades/key"
	"github.com/twshades/twshades/where"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Given logging is disabled", t, func() {
		viper.Set(key.LogsWrite, false)
		So(Setup(), ShouldBeNil)

		Convey("Calls are no-ops", func() {
			So(func() { Infof("ignored %d", 1) }, ShouldNotPanic)
			So(func() { With(Fields{"a": 1}).Info("ignored") }, ShouldNotPanic)
		})
	})

	Convey("Given logging is enabled", t, func() {
		viper.Set(key.LogsWrite, true)
		viper.Set(key.LogsJson, true)
		viper.Set(key.LogsLevel, "not a level")
		defer viper.Set(key.LogsWrite, false)

		So(Setup(), ShouldBeNil)

		Convey("Entries are written to the daily file", func() {
			Info("hello from the test")

			files := lo.Must(filesystem.API().ReadDir(where.Logs()))
			So(files, ShouldNotBeEmpty)

			data := lo.Must(filesystem.API().ReadFile(filepath.Join(where.Logs(), files[0].Name())))
			So(string(data), ShouldContainSubstring, "hello from the test")
		})
	})
}
