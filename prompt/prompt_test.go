package prompt

import (
	"errors"
	"os"
	"testing"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/twshades/twshades/export"
	"github.com/twshades/twshades/filesystem"
	"github.com/twshades/twshades/shade"
	"github.com/twshades/twshades/where"
)

func init() {
	filesystem.SetMemMapFs()
	_ = os.Setenv(where.EnvConfigPath, "/twshades")
}

// answer returns an asker that replies by prompt message and records the
// questions it saw.
func answer(replies map[string]any, asked *[]string) func(survey.Prompt, interface{}, ...survey.AskOpt) error {
	return func(p survey.Prompt, response interface{}, _ ...survey.AskOpt) error {
		var message string
		switch q := p.(type) {
		case *survey.Input:
			message = q.Message
		case *survey.Select:
			message = q.Message
		case *survey.Confirm:
			message = q.Message
		}
		*asked = append(*asked, message)

		reply, ok := replies[message]
		if !ok {
			return terminal.InterruptErr
		}

		switch r := response.(type) {
		case *string:
			*r = reply.(string)
		case *bool:
			*r = reply.(bool)
		}
		return nil
	}
}

func TestRun(t *testing.T) {
	defaults := export.Options{
		Format: "text",
		Name:   "primary",
		Shades: shade.Options{Variables: true, MakeShades: true},
	}

	Convey("Given answers to every question", t, func() {
		var asked []string
		ask = answer(map[string]any{
			"Color":                            " #3498db ",
			"Format":                           "css",
			"Token name":                       "brand",
			"Generate the full 50-950 scale?": false,
		}, &asked)
		defer func() { ask = survey.AskOne }()

		options, err := Run(defaults)
		So(err, ShouldBeNil)

		Convey("They are collected into export options", func() {
			So(asked, ShouldResemble, []string{"Color", "Format", "Token name", "Generate the full 50-950 scale?"})
			So(options.Input, ShouldEqual, "#3498db")
			So(options.Format, ShouldEqual, "css")
			So(options.Name, ShouldEqual, "brand")
			So(options.Shades.MakeShades, ShouldBeFalse)
			So(options.Shades.Variables, ShouldBeTrue)
		})
	})

	Convey("Variable references skip the scale question", t, func() {
		var asked []string
		ask = answer(map[string]any{
			"Color":      "--brand",
			"Format":     "json",
			"Token name": "primary",
		}, &asked)
		defer func() { ask = survey.AskOne }()

		options, err := Run(defaults)
		So(err, ShouldBeNil)
		So(asked, ShouldHaveLength, 3)
		So(options.Input, ShouldEqual, "--brand")
	})

	Convey("Interrupting stops the flow", t, func() {
		var asked []string
		ask = answer(map[string]any{"Color": "#fff"}, &asked)
		defer func() { ask = survey.AskOne }()

		_, err := Run(defaults)
		So(errors.Is(err, terminal.InterruptErr), ShouldBeTrue)
		So(asked, ShouldHaveLength, 2)
	})
}
