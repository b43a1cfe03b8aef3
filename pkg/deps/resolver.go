package deps

import (
	"context"

	"github.com/matzehuels/surepatch/pkg/errors"
)

// VersionResolver finds a version for a package that was listed by name only.
type VersionResolver interface {
	ResolveVersion(ctx context.Context, name string) (string, error)
}

// ResolverFunc adapts a function to the VersionResolver interface.
type ResolverFunc func(ctx context.Context, name string) (string, error)

// ResolveVersion calls f.
func (f ResolverFunc) ResolveVersion(ctx context.Context, name string) (string, error) {
	return f(ctx, name)
}

// Unresolved never finds a version. Options without a resolver use it, so
// bare names end up with the wildcard version.
var Unresolved VersionResolver = ResolverFunc(func(_ context.Context, name string) (string, error) {
	return "", errors.New(errors.ErrCodeUnsupported, "no version resolver for %s", name)
})
