package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/pelletier/go-toml/v2"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"github.com/twshades/twshades/key"
	"github.com/twshades/twshades/shade"
	"github.com/twshades/twshades/style"
	"gopkg.in/yaml.v3"
)

type textExporter struct{}

func (textExporter) Name() string        { return "text" }
func (textExporter) Description() string { return "Human readable list, with swatches when colors are enabled" }

func (textExporter) Export(w io.Writer, doc *Document) error {
	scale, ok := doc.Scale()
	if !ok {
		_, err := fmt.Fprintln(w, doc.Value)
		return err
	}

	colored := viper.GetBool(key.CliColored) && !doc.plain
	for _, swatch := range scale {
		label := fmt.Sprintf("%-4s", swatch.Key())
		if colored {
			label = style.Swatch(swatch.Color, swatch.Key(), 6)
		}

		if _, err := fmt.Fprintf(w, "%s %s\n", label, swatch); err != nil {
			return err
		}
	}
	return nil
}

type jsonExporter struct{}

func (jsonExporter) Name() string        { return "json" }
func (jsonExporter) Description() string { return "JSON document, see \"twshades schema\"" }

func (jsonExporter) Export(w io.Writer, doc *Document) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}

var jsEscaper = strings.NewReplacer(`\`, `\\`, "'", `\'`, "\n", `\n`)

// quote renders s as a single-quoted JavaScript string literal.
func quote(s string) string {
	return "'" + jsEscaper.Replace(s) + "'"
}

var templateFuncs = template.FuncMap{
	"quote": quote,
}

var cssTemplate = lo.Must(template.New("css").Funcs(templateFuncs).Parse(`:root {
{{- if .Scale }}
{{- range .Scale }}
  --{{ $.Name }}-{{ .Key }}: {{ .String }};
{{- end }}
{{- else }}
  --{{ .Name }}: {{ .Value }};
{{- end }}
}
`))

type cssExporter struct{}

func (cssExporter) Name() string        { return "css" }
func (cssExporter) Description() string { return "CSS custom properties on :root" }

func (cssExporter) Export(w io.Writer, doc *Document) error {
	return cssTemplate.Execute(w, templateData(doc))
}

var tailwindTemplate = lo.Must(template.New("tailwind").Funcs(templateFuncs).Parse(`module.exports = {
  theme: {
    extend: {
      colors: {
{{- if .Scale }}
        {{ quote .Name }}: {
{{- range .Scale }}
          {{ .Key }}: {{ quote .String }},
{{- end }}
        },
{{- else }}
        {{ quote .Name }}: {{ quote .Value }},
{{- end }}
      },
    },
  },
};
`))

type tailwindExporter struct{}

func (tailwindExporter) Name() string        { return "tailwind" }
func (tailwindExporter) Description() string { return "tailwind.config.js theme extension" }

func (tailwindExporter) Export(w io.Writer, doc *Document) error {
	return tailwindTemplate.Execute(w, templateData(doc))
}

type templateView struct {
	Name  string
	Value string
	Scale []shade.Swatch
}

func templateData(doc *Document) templateView {
	view := templateView{Name: doc.Name, Value: doc.Value}
	if scale, ok := doc.Scale(); ok {
		view.Scale = scale[:]
	}
	return view
}

// tomlShades fixes the key order of a scale, which go-toml would otherwise sort
// lexically. Fields follow shade.Shades.
type tomlShades struct {
	S50  string `toml:"50"`
	S100 string `toml:"100"`
	S200 string `toml:"200"`
	S300 string `toml:"300"`
	S400 string `toml:"400"`
	S500 string `toml:"500"`
	S600 string `toml:"600"`
	S700 string `toml:"700"`
	S800 string `toml:"800"`
	S900 string `toml:"900"`
	S950 string `toml:"950"`
}

type tomlExporter struct{}

func (tomlExporter) Name() string        { return "toml" }
func (tomlExporter) Description() string { return "TOML table named after the token" }

func (tomlExporter) Export(w io.Writer, doc *Document) error {
	encoder := toml.NewEncoder(w)

	scale, ok := doc.Scale()
	if !ok {
		return encoder.Encode(map[string]string{doc.Name: doc.Value})
	}

	v := scale.Strings()
	return encoder.Encode(map[string]tomlShades{
		doc.Name: {v[0], v[1], v[2], v[3], v[4], v[5], v[6], v[7], v[8], v[9], v[10]},
	})
}

type yamlExporter struct{}

func (yamlExporter) Name() string        { return "yaml" }
func (yamlExporter) Description() string { return "YAML mapping named after the token" }

func (yamlExporter) Export(w io.Writer, doc *Document) error {
	scalar := func(v string) *yaml.Node {
		return &yaml.Node{Kind: yaml.ScalarNode, Value: v}
	}

	var value *yaml.Node
	if scale, ok := doc.Scale(); ok {
		value = &yaml.Node{Kind: yaml.MappingNode}
		for _, swatch := range scale {
			value.Content = append(value.Content, scalar(swatch.Key()), scalar(swatch.String()))
		}
	} else {
		value = scalar(doc.Value)
	}

	root := &yaml.Node{
		Kind:    yaml.MappingNode,
		Content: []*yaml.Node{scalar(doc.Name), value},
	}

	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(root); err != nil {
		return err
	}
	return encoder.Close()
}
