package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/surepatch/pkg/deps"
	"github.com/matzehuels/surepatch/pkg/deps/javascript"
	"github.com/matzehuels/surepatch/pkg/deps/python"
	"github.com/matzehuels/surepatch/pkg/dispatch"
	"github.com/matzehuels/surepatch/pkg/errors"
	"github.com/matzehuels/surepatch/pkg/integrations/npm"
	"github.com/matzehuels/surepatch/pkg/integrations/pypi"
	"github.com/matzehuels/surepatch/pkg/runner"
)

// Resolver modes for bare names in manifests.
const (
	resolverCommand  = "command"
	resolverRegistry = "registry"
)

// sourceFlags holds the flags that describe where components come from.
type sourceFlags struct {
	target    string
	method    string
	format    string
	file      string
	osType    string
	osVersion string

	pipResolver string
	npmResolver string
}

// bind registers the source flags on cmd.
func (s *sourceFlags) bind(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&s.target, "target", "t", "", "component source ("+strings.Join(dispatch.Targets, ", ")+")")
	f.StringVarP(&s.method, "method", "m", dispatch.MethodAuto, "acquisition method (auto, manual)")
	f.StringVar(&s.format, "format", dispatch.FormatSystem, "input format (system, user)")
	f.StringVarP(&s.file, "file", "f", "", "input file; omit to run the ecosystem's listing command")
	f.StringVar(&s.osType, "os-type", "", "host OS type, required for the os target (windows)")
	f.StringVar(&s.osVersion, "os-version", "", "host OS version (8, 10)")
	f.StringVar(&s.pipResolver, "pip-resolver", resolverCommand, "how to resolve unpinned PIP packages (command, registry)")
	f.StringVar(&s.npmResolver, "npm-resolver", resolverCommand, "how to resolve unpinned NPM packages (command, registry)")

	_ = cmd.RegisterFlagCompletionFunc("target", fixedCompletion(dispatch.Targets...))
	_ = cmd.RegisterFlagCompletionFunc("method", fixedCompletion(dispatch.MethodAuto, dispatch.MethodManual))
	_ = cmd.RegisterFlagCompletionFunc("format", fixedCompletion(dispatch.FormatSystem, dispatch.FormatUser))
	_ = cmd.RegisterFlagCompletionFunc("os-type", fixedCompletion(dispatch.OSWindows))
	_ = cmd.RegisterFlagCompletionFunc("pip-resolver", fixedCompletion(resolverCommand, resolverRegistry))
	_ = cmd.RegisterFlagCompletionFunc("npm-resolver", fixedCompletion(resolverCommand, resolverRegistry))
}

// context returns the acquisition context described by the flags.
func (s *sourceFlags) context() dispatch.Context {
	return dispatch.Context{
		Target:    s.target,
		Method:    s.method,
		Format:    s.format,
		File:      s.file,
		OSType:    s.osType,
		OSVersion: s.osVersion,
	}
}

// validate checks the flags that have a fixed set of values.
func (s *sourceFlags) validate() error {
	if strings.TrimSpace(s.target) == "" && !strings.EqualFold(s.format, dispatch.FormatUser) {
		return errors.New(errors.ErrCodeInvalidInput, "--target is required").
			WithHint("run '" + appName + " components --list' to see supported sources")
	}
	for _, f := range []struct{ name, value string }{
		{"pip-resolver", s.pipResolver},
		{"npm-resolver", s.npmResolver},
	} {
		switch f.value {
		case resolverCommand, resolverRegistry:
		default:
			return errors.New(errors.ErrCodeInvalidInput, "--%s must be %s or %s", f.name, resolverCommand, resolverRegistry)
		}
	}
	return nil
}

// resolvers returns the version resolvers selected by the flags. The
// command resolvers run through r.
func (s *sourceFlags) resolvers(r runner.Runner) (pip, node deps.VersionResolver) {
	pip = python.PipShow(r)
	if s.pipResolver == resolverRegistry {
		pip = python.Registry(pypi.NewClient(""))
	}
	node = javascript.NPMView(r)
	if s.npmResolver == resolverRegistry {
		node = javascript.Registry(npm.NewClient(""))
	}
	return pip, node
}

func fixedCompletion(values ...string) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return values, cobra.ShellCompDirectiveNoFileComp
	}
}
