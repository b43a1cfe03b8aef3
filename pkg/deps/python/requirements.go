package python

import (
	"context"
	"strings"

	"github.com/matzehuels/surepatch/pkg/component"
	"github.com/matzehuels/surepatch/pkg/deps"
)

// operators are tried in order; the first one contained in a line splits it.
// Two-character operators come before their one-character prefixes so that
// "a<=1" splits on "<=" and keeps "1" as the version.
var operators = []string{"==", ">=", "<=", ">", "<"}

// ParseRequirements converts requirement lines into components.
//
// A line is split at the first operator it contains; the text on the right
// is the version, verbatim. Lines without an operator are bare names whose
// version comes from opts.Resolver (wildcard when that fails). Blank lines,
// comments, pip options (-r, -e, --index-url ...) and URL requirements are
// skipped.
func ParseRequirements(ctx context.Context, lines []string, opts deps.Options) []component.Component {
	opts = opts.WithDefaults()

	components := make([]component.Component, 0, len(lines))
	for _, line := range lines {
		line = stripComment(line)
		if skip(line) {
			continue
		}
		if c, ok := splitOperator(line); ok {
			components = append(components, c)
			continue
		}
		components = append(components, component.Component{
			Name:    line,
			Version: opts.ResolveVersion(ctx, line),
		})
	}
	return components
}

func splitOperator(line string) (component.Component, bool) {
	for _, op := range operators {
		if name, version, ok := strings.Cut(line, op); ok {
			return component.Component{Name: name, Version: version}, true
		}
	}
	return component.Component{}, false
}

func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	return strings.TrimSpace(line)
}

func skip(line string) bool {
	return line == "" ||
		line[0] == '-' ||
		strings.Contains(line, "://") ||
		strings.HasPrefix(line, "git+")
}
