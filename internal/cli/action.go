package cli

import (
	"context"

	"github.com/matzehuels/surepatch/pkg/dispatch"
	"github.com/matzehuels/surepatch/pkg/pipeline"
)

// runAction loads the config, runs action and returns its result. src is
// nil for actions that extract nothing. A spinner shows progress unless
// debug logging is on.
func (c *CLI) runAction(ctx context.Context, action string, req pipeline.Request, src *sourceFlags, message string) (*pipeline.Result, error) {
	manual := false
	if src != nil {
		if err := src.validate(); err != nil {
			return nil, err
		}
		req.Source = src.context()
		manual = req.Source.Key().Method == dispatch.MethodManual
	} else {
		src = &sourceFlags{}
	}

	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	req.Credentials = cfg.Credentials()
	runner := c.newRunner(cfg, src)

	// Manual entry prompts on the terminal, which the spinner would overwrite.
	if c.verbose || manual {
		p := newProgress(c.Logger, action)
		result, err := runner.Run(ctx, action, req)
		if err == nil {
			p.done(result)
		}
		return result, err
	}

	spinner := newSpinnerWithContext(ctx, message)
	spinner.Start()
	result, err := runner.Run(ctx, action, req)
	spinner.Stop()
	return result, err
}
