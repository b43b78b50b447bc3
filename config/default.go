package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/twshades/twshades/color"
	"github.com/twshades/twshades/constant"
	"github.com/twshades/twshades/key"
	"github.com/twshades/twshades/style"
)

// Field is a single configurable setting and its default value.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Env returns the environment variable that overrides this field.
func (f *Field) Env() string {
	return strings.ToUpper(constant.Twshades + "_" + EnvKeyReplacer.Replace(f.Key))
}

// Type is the kind of the default value, e.g. "bool" or "int".
func (f *Field) Type() string {
	return reflect.TypeOf(f.Value).Kind().String()
}

type fieldJSON struct {
	Key         string `json:"key"`
	Value       any    `json:"value"`
	Default     any    `json:"default"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Env         string `json:"env"`
}

func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(fieldJSON{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.Type(),
		Env:         f.Env(),
	})
}

// Pretty renders the field for the "config info" listing.
func (f *Field) Pretty() string {
	label := style.Fg(color.Blue)
	lines := []string{
		style.Faint(f.Description),
		label("Key:") + "     " + style.Fg(color.Purple)(f.Key),
		label("Env:") + "     " + f.Env(),
		label("Value:") + "   " + highlight(viper.Get(f.Key)),
		label("Default:") + " " + highlight(f.Value),
		label("Type:") + "    " + f.Type(),
	}

	return strings.Join(lines, "\n")
}

func highlight(v any) string {
	switch value := v.(type) {
	case bool:
		if value {
			return style.Fg(color.Green)(strconv.FormatBool(value))
		}
		return style.Fg(color.Red)(strconv.FormatBool(value))
	case string:
		return style.Fg(color.Yellow)(value)
	default:
		return fmt.Sprint(value)
	}
}

var fields = []Field{
	{key.ShadesVariables, true, "Pass \"--name\" variable references through as rgb(var(--name) / <alpha-value>)\nWhen disabled they are rejected as an unsupported format"},
	{key.ShadesMake, true, "Generate the full 50-950 scale.\nWhen disabled a single rgb(R G B / <alpha-value>) expression is produced"},
	{key.OutputFormat, "text", "Default output format.\nType \"twshades formats list\" to show available formats"},
	{key.OutputName, "primary", "Token name used by the css, tailwind, json, toml and yaml formats"},
	{key.HistorySave, true, "Remember generated colors"},
	{key.HistorySuggestions, true, "Suggest previously used colors in completions and prompts"},
	{key.TUISwatchWidth, 10, "Width of each swatch in the interactive preview"},
	{key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)"},
	{key.LogsWrite, false, "Write logs"},
	{key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace"},
	{key.LogsJson, false, "Use json format for logs"},
	{key.CliColored, true, "Enable colored CLI output"},
	{key.CliVersionCheck, false, "Check for a newer release when showing help and version"},
}

// Default maps every key to its field.
var Default = lo.KeyBy(fields, func(f Field) string { return f.Key })

// EnvExposed lists the keys that can be overridden from the environment.
var EnvExposed = lo.Map(fields, func(f Field, _ int) string { return f.Key })

func init() {
	if len(Default) != len(fields) {
		panic("duplicate config key")
	}
}
