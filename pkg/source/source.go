// Package source loads raw package listings from files and from the output
// of package-manager commands.
//
// Loaders only read. Text files go through encoding detection in
// [charset]; command output is decoded the same way before it is handed to
// a parser. The one scratch file (npm list capture) is removed before the
// loader returns, on success and on error.
//
// [charset]: github.com/matzehuels/surepatch/pkg/charset
package source

import (
	"context"
	"os"
	"strings"

	"github.com/matzehuels/surepatch/pkg/charset"
	"github.com/matzehuels/surepatch/pkg/deps/javascript"
	"github.com/matzehuels/surepatch/pkg/deps/python"
	"github.com/matzehuels/surepatch/pkg/deps/ruby"
	"github.com/matzehuels/surepatch/pkg/deps/windows"
	"github.com/matzehuels/surepatch/pkg/errors"
	"github.com/matzehuels/surepatch/pkg/runner"
)

// NPMGlobalListCommand lists globally installed npm packages.
const NPMGlobalListCommand = javascript.ListCommand + " --global"

// Loader runs listing commands through a Runner.
type Loader struct {
	Runner runner.Runner
}

// New returns a Loader backed by r.
func New(r runner.Runner) *Loader {
	return &Loader{Runner: r}
}

// ReadText reads and decodes a text file.
func ReadText(path string) (string, error) {
	text, _, err := charset.ReadFile(path)
	return text, err
}

// ReadLines reads a text file and splits it into lines without trailing
// carriage returns.
func ReadLines(path string) ([]string, error) {
	text, err := ReadText(path)
	if err != nil {
		return nil, err
	}
	return splitLines(text), nil
}

// ReadJSON reads a JSON file with member order preserved.
func ReadJSON(path string) (javascript.Object, error) {
	text, err := ReadText(path)
	if err != nil {
		return nil, err
	}
	obj, err := javascript.DecodeString(text)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse %s", path)
	}
	return obj, nil
}

// ReadRequirements reads a requirements file. All spaces are removed, so
// "requests >= 2.0" reads as "requests>=2.0".
func ReadRequirements(path string) ([]string, error) {
	text, err := ReadText(path)
	if err != nil {
		return nil, err
	}
	return splitLines(strings.ReplaceAll(text, " ", "")), nil
}

// ReadWindowsListing reads a saved Get-AppxPackage listing and drops its
// banner.
func ReadWindowsListing(path string) ([]string, error) {
	text, err := ReadText(path)
	if err != nil {
		return nil, err
	}
	return windows.Lines(text), nil
}

// WindowsListing runs the Appx package listing and drops its banner.
func (l *Loader) WindowsListing(ctx context.Context) ([]string, error) {
	text, err := l.output(ctx, runner.Command{Line: windows.ListCommand})
	if err != nil {
		return nil, err
	}
	return windows.Lines(text), nil
}

// PipFreeze lists installed Python distributions.
func (l *Loader) PipFreeze(ctx context.Context) ([]string, error) {
	text, err := l.output(ctx, runner.Command{Line: python.FreezeCommand})
	if err != nil {
		return nil, err
	}
	return splitLines(text), nil
}

// GemList lists installed gems. dir selects the working directory (empty
// for the current one).
func (l *Loader) GemList(ctx context.Context, dir string) (string, error) {
	return l.output(ctx, runner.Command{Line: ruby.ListCommand, Dir: dir})
}

// NPMList captures npm list --json into a scratch file and decodes it.
// An empty dir lists global packages; otherwise the project in dir is
// listed.
func (l *Loader) NPMList(ctx context.Context, dir string) (javascript.Object, error) {
	line := javascript.ListCommand
	if dir == "" {
		line = NPMGlobalListCommand
	} else if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, errors.New(errors.ErrCodeFileNotFound, "directory %s does not exist", dir)
	}

	f, err := os.CreateTemp("", "surepatch-npm-*.json")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create scratch file")
	}
	path := f.Name()
	defer os.Remove(path)

	_, runErr := runner.Output(ctx, l.Runner, runner.Command{Line: line, Dir: dir, Stdout: f})
	if err := f.Close(); err != nil && runErr == nil {
		runErr = errors.Wrap(errors.ErrCodeInternal, err, "write scratch file")
	}
	if runErr != nil {
		return nil, runErr
	}
	return ReadJSON(path)
}

func (l *Loader) output(ctx context.Context, cmd runner.Command) (string, error) {
	out, err := runner.Output(ctx, l.Runner, cmd)
	if err != nil {
		return "", err
	}
	enc := charset.DetectBytes(out)
	text, ok := enc.Decode(out)
	if !ok {
		return "", errors.New(errors.ErrCodeEncodingUndefined, "undefined encoding of %q output", cmd.Line)
	}
	return text, nil
}

// splitLines splits on newlines and drops trailing carriage returns.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
