package javascript

import (
	"context"
	"strings"

	"github.com/matzehuels/surepatch/pkg/deps"
	"github.com/matzehuels/surepatch/pkg/errors"
	"github.com/matzehuels/surepatch/pkg/integrations/npm"
	"github.com/matzehuels/surepatch/pkg/runner"
)

// NPMView returns a resolver that runs npm view <name> version.
func NPMView(r runner.Runner) deps.VersionResolver {
	return deps.ResolverFunc(func(ctx context.Context, name string) (string, error) {
		out, err := runner.Output(ctx, r, runner.Command{Line: "npm view " + name + " version"})
		if err != nil {
			return "", err
		}
		v := strings.TrimSpace(strings.ReplaceAll(string(out), "\n", ""))
		if v == "" {
			return "", errors.New(errors.ErrCodeNotFound, "npm view printed no version for %s", name)
		}
		return v, nil
	})
}

// Registry returns a resolver backed by the npm registry HTTP API.
func Registry(c *npm.Client) deps.VersionResolver {
	return deps.ResolverFunc(c.LatestVersion)
}
