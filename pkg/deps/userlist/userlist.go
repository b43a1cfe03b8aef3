// Package userlist parses free-form component lists written by hand, one
// name=version pair per line.
package userlist

import (
	"strings"

	"github.com/matzehuels/surepatch/pkg/component"
)

// Parse converts name=version lines into components.
//
// A line must split on "=" into exactly two parts; lines with no "=" or
// with more than one (foo=1.0=2.0) are skipped as a whole. Blank lines are
// ignored.
func Parse(lines []string) []component.Component {
	components := []component.Component{}
	for _, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		parts := strings.Split(line, "=")
		if len(parts) != 2 {
			continue
		}
		components = append(components, component.Component{Name: parts[0], Version: parts[1]})
	}
	return components
}
