// Package prompt asks for everything a palette export needs, one question at a time.
package prompt

import (
	"github.com/AlecAivazis/survey/v2"
	"github.com/twshades/twshades/export"
)

// ask is replaced in tests.
var ask = survey.AskOne

type state int

const (
	colorState state = iota + 1
	formatState
	nameState
	scaleState
	doneState
)

type prompt struct {
	state   state
	options export.Options
}

// Run asks the questions, starting from the values in defaults, and returns
// the completed export options.
func Run(defaults export.Options) (*export.Options, error) {
	p := &prompt{
		state:   colorState,
		options: defaults,
	}

	for p.state != doneState {
		if err := p.handleState(); err != nil {
			return nil, err
		}
	}

	return &p.options, nil
}

func (p *prompt) handleState() error {
	switch p.state {
	case colorState:
		return p.handleColorState()
	case formatState:
		return p.handleFormatState()
	case nameState:
		return p.handleNameState()
	case scaleState:
		return p.handleScaleState()
	}

	return nil
}
