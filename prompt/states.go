package prompt

import (
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/twshades/twshades/export"
	"github.com/twshades/twshades/history"
	"github.com/twshades/twshades/shade"
)

func (p *prompt) handleColorState() error {
	input := survey.Input{
		Message: "Color",
		Default: p.options.Input,
		Help:    "A hex (#3498db), rgb(52, 152, 219) or hsl(204, 70%, 53%) color, or a --variable",
		Suggest: history.Suggest,
	}

	var response string
	err := ask(&input, &response, survey.WithValidator(func(ans interface{}) error {
		_, err := shade.Make(strings.TrimSpace(ans.(string)), p.options.Shades)
		return err
	}))
	if err != nil {
		return err
	}

	p.options.Input = strings.TrimSpace(response)
	p.state = formatState
	return nil
}

func (p *prompt) handleFormatState() error {
	formats := export.Names()
	selection := survey.Select{
		Message: "Format",
		Options: formats,
		Default: p.options.Format,
		Description: func(value string, _ int) string {
			if e, err := export.Get(value); err == nil {
				return e.Description()
			}
			return ""
		},
	}

	if selection.Default == "" {
		selection.Default = formats[0]
	}

	var response string
	if err := ask(&selection, &response); err != nil {
		return err
	}

	p.options.Format = response
	p.state = nameState
	return nil
}

func (p *prompt) handleNameState() error {
	input := survey.Input{
		Message: "Token name",
		Default: p.options.Name,
	}

	var response string
	if err := ask(&input, &response, survey.WithValidator(survey.Required)); err != nil {
		return err
	}

	p.options.Name = strings.TrimSpace(response)

	// Variable references always produce a single expression.
	if p.options.Shades.Variables && strings.HasPrefix(p.options.Input, shade.VariablePrefix) {
		p.state = doneState
	} else {
		p.state = scaleState
	}
	return nil
}

func (p *prompt) handleScaleState() error {
	confirm := survey.Confirm{
		Message: "Generate the full 50-950 scale?",
		Default: p.options.Shades.MakeShades,
		Help:    "Otherwise a single rgb() expression with an <alpha-value> placeholder is produced",
	}

	var response bool
	if err := ask(&confirm, &response); err != nil {
		return err
	}

	p.options.Shades.MakeShades = response
	p.state = doneState
	return nil
}
