// Package runner executes external package-manager commands (powershell,
// pip, npm, gem) and hands their raw output to the loaders.
//
// Command lines are split with shell quoting rules but never passed to a
// shell, so pipes and redirections inside a quoted argument reach the
// invoked program unchanged:
//
//	powershell "Get-AppxPackage -AllUsers | Select Name, PackageFullName"
//
// runs powershell with a single script argument.
package runner

import (
	"bytes"
	"context"
	stderrors "errors"
	"io"
	"os/exec"
	"strings"
	"time"

	"github.com/kballard/go-shellquote"

	"github.com/matzehuels/surepatch/pkg/errors"
	"github.com/matzehuels/surepatch/pkg/observability"
)

// DefaultTimeout bounds every command started by [Exec].
const DefaultTimeout = 5 * time.Minute

// Command describes one external invocation.
type Command struct {
	Line   string    // Command line, split with shell quoting rules
	Dir    string    // Working directory (empty: current directory)
	Stdout io.Writer // Optional sink; when set, Result.Stdout stays empty
}

// Result holds the captured output of a finished command.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Runner runs a command to completion.
//
// Implementations return an error only when the command could not be
// started or did not finish in time. A command that ran and wrote to its
// error stream is reported through Result.Stderr.
type Runner interface {
	Run(ctx context.Context, cmd Command) (*Result, error)
}

// Func adapts a plain function to the Runner interface.
type Func func(ctx context.Context, cmd Command) (*Result, error)

// Run calls f.
func (f Func) Run(ctx context.Context, cmd Command) (*Result, error) {
	return f(ctx, cmd)
}

// Exec runs commands with os/exec.
type Exec struct {
	Timeout time.Duration // Zero means DefaultTimeout
}

// Run implements Runner.
func (e *Exec) Run(ctx context.Context, cmd Command) (res *Result, err error) {
	hooks := observability.Command()
	hooks.OnCommandStart(ctx, cmd.Line, cmd.Dir)
	start := time.Now()
	defer func() {
		code := -1
		if res != nil {
			code = res.ExitCode
		}
		hooks.OnCommandComplete(ctx, cmd.Line, code, time.Since(start), err)
	}()

	argv, err := shellquote.Split(cmd.Line)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse command %q", cmd.Line)
	}
	if len(argv) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "empty command")
	}

	timeout := e.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	c := exec.CommandContext(runCtx, argv[0], argv[1:]...)
	c.Dir = cmd.Dir
	c.WaitDelay = time.Second
	c.Stdout = &stdout
	if cmd.Stdout != nil {
		c.Stdout = cmd.Stdout
	}
	c.Stderr = &stderr

	runErr := c.Run()
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if runCtx.Err() == context.DeadlineExceeded {
		return nil, errors.New(errors.ErrCodeTimeout, "command %q did not finish within %s", cmd.Line, timeout)
	}

	res = &Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if runErr != nil {
		var ee *exec.ExitError
		if !stderrors.As(runErr, &ee) {
			return nil, errors.Wrap(errors.ErrCodeCommandFailed, runErr, "start %q", argv[0])
		}
		res.ExitCode = ee.ExitCode()
	}
	return res, nil
}

// Output runs cmd and returns its standard output.
//
// Any text on the error stream is treated as failure: the command is
// reported as COMMAND_FAILED and its output is discarded. Exit codes are
// not interpreted beyond that.
func Output(ctx context.Context, r Runner, cmd Command) ([]byte, error) {
	res, err := r.Run(ctx, cmd)
	if err != nil {
		if errors.GetCode(err) != "" {
			return nil, err
		}
		return nil, errors.Wrap(errors.ErrCodeCommandFailed, err, "run %q", cmd.Line)
	}
	if msg := strings.TrimSpace(string(res.Stderr)); msg != "" {
		return nil, errors.New(errors.ErrCodeCommandFailed, "command %q exited with code %d: %s", cmd.Line, res.ExitCode, msg)
	}
	return res.Stdout, nil
}
