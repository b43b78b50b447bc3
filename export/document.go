// Package export serializes generated palettes into design-token formats.
package export

import (
	"github.com/invopop/jsonschema"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/twshades/twshades/shade"
)

// Document is the serializable form of a generated palette. Exactly one of
// Shades and Value is set.
type Document struct {
	// Name is the token name, e.g. "primary".
	Name string `json:"name" jsonschema:"description=Token name the palette is published under"`
	// Input is the color string the palette was generated from.
	Input string `json:"input" jsonschema:"description=Color the palette was generated from"`
	// Shades maps each identifier to its rgb() color, lightest first.
	Shades *Shades `json:"shades,omitempty"`
	// Value is the single expression produced for variable references or when
	// shade generation is disabled.
	Value string `json:"value,omitempty" jsonschema:"description=Single rgb() expression with an <alpha-value> placeholder"`

	scale *shade.Scale
	plain bool
}

// Shades is an insertion-ordered map from shade identifier to color.
type Shades struct {
	*orderedmap.OrderedMap[string, string]
}

// JSONSchema describes Shades as an object of numeric keys to strings.
func (Shades) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:                 "object",
		Description:          "Shade identifiers (50 to 950) mapped to rgb() colors",
		PropertyNames:        &jsonschema.Schema{Pattern: "^[0-9]+$"},
		AdditionalProperties: &jsonschema.Schema{Type: "string"},
	}
}

// NewDocument builds a Document from a shade.Make result.
func NewDocument(name, input string, result shade.Result) *Document {
	doc := &Document{Name: name, Input: input}

	if scale, ok := result.Left(); ok {
		doc.scale = &scale
		doc.Shades = &Shades{orderedmap.New[string, string]()}
		for _, swatch := range scale {
			doc.Shades.Set(swatch.Key(), swatch.String())
		}
		return doc
	}

	doc.Value = result.MustRight()
	return doc
}

// Scale returns the generated scale, if the document holds one.
func (d *Document) Scale() (shade.Scale, bool) {
	if d.scale == nil {
		return shade.Scale{}, false
	}
	return *d.scale, true
}
