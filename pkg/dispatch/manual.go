package dispatch

import (
	"context"

	"github.com/matzehuels/surepatch/pkg/component"
	"github.com/matzehuels/surepatch/pkg/errors"
)

// Prompter asks the user questions on an interactive terminal.
type Prompter interface {
	Confirm(message string) (bool, error)
	Input(message string) (string, error)
}

// Prompt messages used by manual entry.
const (
	PromptContinue = "Continue (y/n)?"
	PromptName     = "Enter component name:"
	PromptVersion  = "Enter component version:"
)

// manual collects name/version pairs until the user declines to continue.
// Declining before the first pair is an INVALID_INPUT error.
func (d *Dispatcher) manual(ctx context.Context, _ Context) ([]component.Component, error) {
	if d.prompter == nil {
		return nil, errors.New(errors.ErrCodeUnsupported, "manual entry needs an interactive terminal")
	}

	var list []component.Component
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		more, err := d.prompter.Confirm(PromptContinue)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read answer")
		}
		if !more {
			break
		}
		name, err := d.prompter.Input(PromptName)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read component name")
		}
		version, err := d.prompter.Input(PromptVersion)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read component version")
		}
		list = append(list, component.New(name, version))
	}

	if len(list) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no components entered")
	}
	return list, nil
}
