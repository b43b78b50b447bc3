package export

import (
	"errors"
	"fmt"
	"io"
	"os"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/twshades/twshades/log"
	"github.com/twshades/twshades/shade"
)

// Exporter writes a Document in a particular format.
type Exporter interface {
	Name() string
	Description() string
	Export(w io.Writer, doc *Document) error
}

// Builtins returns the exporters compiled into the binary.
func Builtins() []Exporter {
	return []Exporter{
		textExporter{},
		jsonExporter{},
		cssExporter{},
		tailwindExporter{},
		tomlExporter{},
		yamlExporter{},
	}
}

// Names returns the names of every builtin and custom exporter.
func Names() []string {
	names := lo.Map(Builtins(), func(e Exporter, _ int) string { return e.Name() })
	return append(names, lo.Map(Customs(), func(e Exporter, _ int) string { return e.Name() })...)
}

// Get returns the exporter with the given name. Builtins shadow custom
// exporters of the same name. Unknown names yield an error suggesting the
// closest known one.
func Get(name string) (Exporter, error) {
	all := append(Builtins(), Customs()...)
	if e, ok := lo.Find(all, func(e Exporter) bool { return e.Name() == name }); ok {
		return e, nil
	}

	closest := lo.MinBy(Names(), func(a, b string) bool {
		return levenshtein.Distance(name, a) < levenshtein.Distance(name, b)
	})
	return nil, fmt.Errorf("unknown format %q, did you mean %q?", name, closest)
}

// Options configures a single Run.
type Options struct {
	// Out receives the rendered document; defaults to stdout.
	Out io.Writer
	// Input is the color string to generate from.
	Input  string
	Name   string
	Format string
	Shades shade.Options
	// Plain disables terminal styling, e.g. when Out is a file.
	Plain bool
}

// Run generates the palette for options.Input and writes it in options.Format.
func Run(options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	if options.Name == "" {
		return errors.New("token name is empty")
	}

	exporter, err := Get(options.Format)
	if err != nil {
		return err
	}

	result, err := shade.Make(options.Input, options.Shades)
	if err != nil {
		return err
	}

	log.With(log.Fields{
		"input":  options.Input,
		"format": exporter.Name(),
		"single": result.IsRight(),
	}).Info("exporting palette")

	doc := NewDocument(options.Name, options.Input, result)
	doc.plain = options.Plain
	return exporter.Export(options.Out, doc)
}
