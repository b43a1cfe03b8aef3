// Package python parses PIP requirement listings: requirements files and
// the output of pip freeze.
//
// Requirement lines that name a package without a version specifier are
// resolved through a [deps.VersionResolver]. Two resolvers are provided:
// [PipShow] asks the local interpreter for the installed version and
// [Registry] asks PyPI for the latest release.
package python

import (
	"bufio"
	"bytes"
	"context"
	"strings"

	"github.com/matzehuels/surepatch/pkg/deps"
	"github.com/matzehuels/surepatch/pkg/errors"
	"github.com/matzehuels/surepatch/pkg/integrations/pypi"
	"github.com/matzehuels/surepatch/pkg/runner"
)

// FreezeCommand lists every installed distribution as name==version.
const FreezeCommand = "pip freeze --all"

// PipShow returns a resolver that reads the "Version:" field printed by
// pip show <name>.
func PipShow(r runner.Runner) deps.VersionResolver {
	return deps.ResolverFunc(func(ctx context.Context, name string) (string, error) {
		out, err := runner.Output(ctx, r, runner.Command{Line: "pip show " + name})
		if err != nil {
			return "", err
		}
		return showVersion(out)
	})
}

func showVersion(out []byte) (string, error) {
	sc := bufio.NewScanner(bytes.NewReader(out))
	for sc.Scan() {
		if v, ok := strings.CutPrefix(sc.Text(), "Version:"); ok {
			return strings.TrimSpace(v), nil
		}
	}
	return "", errors.New(errors.ErrCodeNotFound, "pip show printed no version")
}

// Registry returns a resolver backed by the PyPI JSON API.
func Registry(c *pypi.Client) deps.VersionResolver {
	return deps.ResolverFunc(c.LatestVersion)
}
