package cmd

import (
	"bytes"
	"os"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/twshades/twshades/config"
	"github.com/twshades/twshades/filesystem"
	"github.com/twshades/twshades/history"
	"github.com/twshades/twshades/key"
	"github.com/twshades/twshades/where"
)

func init() {
	filesystem.SetMemMapFs()
	_ = os.Setenv(where.EnvConfigPath, "/twshades")
	if err := config.Setup(); err != nil {
		panic(err)
	}
	viper.Set(key.CliColored, false)
}

func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
}

func execute(args ...string) string {
	defer resetFlags(rootCmd)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs(moveVariableArg(args))
	So(rootCmd.Execute(), ShouldBeNil)
	return buf.String()
}

func TestMoveVariableArg(t *testing.T) {
	Convey("Variable references are moved behind a terminator", t, func() {
		So(moveVariableArg([]string{"--brand"}), ShouldResemble, []string{"--", "--brand"})
		So(moveVariableArg([]string{"--brand", "-f", "css"}), ShouldResemble, []string{"-f", "css", "--", "--brand"})
		So(moveVariableArg([]string{"prompt", "--brand"}), ShouldResemble, []string{"prompt", "--", "--brand"})
	})

	Convey("Known flags are left alone", t, func() {
		args := []string{"#fff", "--format", "css", "--single", "--help"}
		So(moveVariableArg(args), ShouldResemble, args)

		args = []string{"--format=css", "#fff"}
		So(moveVariableArg(args), ShouldResemble, args)
	})

	Convey("Other commands are left alone", t, func() {
		args := []string{"config", "get", "--key"}
		So(moveVariableArg(args), ShouldResemble, args)
	})
}

func TestRoot(t *testing.T) {
	Convey("Given a color argument", t, func() {
		So(history.Clear(), ShouldBeNil)

		Convey("The configured format is used", func() {
			out := execute("#3498db")
			So(out, ShouldContainSubstring, "50   rgb(235, 245, 251)")
			So(out, ShouldContainSubstring, "950  rgb(5, 15, 22)")
		})

		Convey("Flags override the configuration", func() {
			out := execute("hsl(204, 70%, 53%)", "-f", "css", "-n", "brand")
			So(out, ShouldContainSubstring, "--brand-500: rgb(")
		})

		Convey("--single produces one expression", func() {
			out := execute("rgb(52, 152, 219)", "--single", "-f", "json")
			So(out, ShouldContainSubstring, `"value": "rgb(52 152 219 / <alpha-value>)"`)
		})

		Convey("Variable references pass through", func() {
			out := execute("--brand", "-f", "css")
			So(out, ShouldContainSubstring, "--primary: rgb(var(--brand) / <alpha-value>);")
		})

		Convey("--output writes to a file", func() {
			out := execute("#3498db", "-f", "json", "-o", "/out/primary.json")
			So(out, ShouldBeEmpty)

			contents, err := filesystem.API().ReadFile("/out/primary.json")
			So(err, ShouldBeNil)
			So(string(contents), ShouldContainSubstring, `"500": "rgb(52, 152, 219)"`)
		})

		Convey("A failed export leaves an existing --output file alone", func() {
			defer resetFlags(rootCmd)

			path := "/out/keep.css"
			So(filesystem.API().WriteFile(path, []byte("KEEP"), 0o644), ShouldBeNil)
			So(rootCmd.Flags().Set("output", path), ShouldBeNil)

			for _, input := range []string{"notacolor", "#12"} {
				So(runExport(rootCmd, exportOptions(rootCmd, input)), ShouldNotBeNil)
			}

			So(rootCmd.Flags().Set("format", "nope"), ShouldBeNil)
			So(runExport(rootCmd, exportOptions(rootCmd, "#3498db")), ShouldNotBeNil)

			contents, err := filesystem.API().ReadFile(path)
			So(err, ShouldBeNil)
			So(string(contents), ShouldEqual, "KEEP")
		})

		Convey("The input is remembered", func() {
			execute("#3498db")
			So(history.Suggest("3498"), ShouldResemble, []string{"#3498db"})
		})
	})
}

func TestFormatsNew(t *testing.T) {
	Convey("Given a scaffolded exporter", t, func() {
		execute("formats", "new", "scss")
		path := where.Exporters() + "/scss.lua"
		defer func() { _ = filesystem.API().Remove(path) }()

		contents, err := filesystem.API().ReadFile(path)
		So(err, ShouldBeNil)
		So(string(contents), ShouldContainSubstring, "-- @name    scss")

		Convey("It can be used as a format right away", func() {
			out := execute("#3498db", "-f", "scss")
			So(out, ShouldContainSubstring, "primary-500 = rgb(52, 152, 219)\n")
		})
	})
}

func TestExporterFile(t *testing.T) {
	Convey("Exporter names are sanitized", t, func() {
		path, err := exporterFile("my brand")
		So(err, ShouldBeNil)
		So(path, ShouldEqual, where.Exporters()+"/my_brand.lua")
	})

	Convey("Builtin names are refused", t, func() {
		for _, name := range []string{"text", "css", " json "} {
			_, err := exporterFile(name)
			So(err, ShouldNotBeNil)
		}
	})

	Convey("Empty names are refused", t, func() {
		_, err := exporterFile("///")
		So(err, ShouldNotBeNil)
	})
}

func TestFormatsRemove(t *testing.T) {
	Convey("An exporter created with spaces is removed by the same name", t, func() {
		execute("formats", "new", "my brand")
		path := where.Exporters() + "/my_brand.lua"

		exists, err := filesystem.API().Exists(path)
		So(err, ShouldBeNil)
		So(exists, ShouldBeTrue)

		execute("formats", "remove", "my brand")

		exists, err = filesystem.API().Exists(path)
		So(err, ShouldBeNil)
		So(exists, ShouldBeFalse)
	})
}
