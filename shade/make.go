package shade

import (
	"fmt"
	"strings"

	"github.com/samber/mo"
	"github.com/twshades/twshades/color"
)

// VariablePrefix marks a CSS custom property reference.
const VariablePrefix = "--"

// Options selects between the basic and extended behaviour.
type Options struct {
	// Variables passes "--name" inputs through as an opacity-aware var() expression.
	Variables bool
	// MakeShades produces the full scale. When false a single
	// "rgb(R G B / <alpha-value>)" expression is produced instead.
	MakeShades bool
}

// Result is either a full Scale (left) or a single color expression (right).
type Result = mo.Either[Scale, string]

// Make parses input and produces a scale or a single expression as
// selected by options.
func Make(input string, options Options) (Result, error) {
	if options.Variables && strings.HasPrefix(input, VariablePrefix) {
		return mo.Right[Scale](Variable(input)), nil
	}

	base, err := color.Parse(input)
	if err != nil {
		return Result{}, err
	}

	if !options.MakeShades {
		return mo.Right[Scale](base.Alpha()), nil
	}

	return mo.Left[Scale, string](Generate(base)), nil
}

// Of returns the scale for input. Variable references are not supported.
func Of(input string) (Scale, error) {
	result, err := Make(input, Options{MakeShades: true})
	if err != nil {
		return Scale{}, err
	}
	return result.MustLeft(), nil
}

// OfExtended is like Of but accepts "--name" variable references, and
// returns a single expression instead of a scale when makeShades is false.
func OfExtended(input string, makeShades bool) (Result, error) {
	return Make(input, Options{Variables: true, MakeShades: makeShades})
}

// Variable formats a custom property reference so that an opacity can be
// composed with it.
func Variable(name string) string {
	return fmt.Sprintf("rgb(var(%s) / %s)", name, color.AlphaValue)
}
