package deps

import (
	"context"
	"strings"

	"github.com/matzehuels/surepatch/pkg/component"
)

// Options configures a parse call.
type Options struct {
	Resolver VersionResolver      // Looks up versions of bare names (default: always Wildcard)
	Logger   func(string, ...any) // Progress/error callback (optional)
}

// WithDefaults returns a copy of Options with zero values replaced by defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.Resolver == nil {
		opts.Resolver = Unresolved
	}
	if opts.Logger == nil {
		opts.Logger = func(string, ...any) {}
	}
	return opts
}

// ResolveVersion asks the configured resolver for the version of name.
// Errors and empty answers are logged and yield component.Wildcard.
func (o Options) ResolveVersion(ctx context.Context, name string) string {
	opts := o.WithDefaults()
	v, err := opts.Resolver.ResolveVersion(ctx, name)
	if err != nil {
		opts.Logger("resolve version failed: %s: %v", name, err)
		return component.Wildcard
	}
	if v = strings.TrimSpace(v); v == "" {
		return component.Wildcard
	}
	return v
}
