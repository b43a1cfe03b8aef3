package ruby

import (
	"regexp"
	"strings"

	"github.com/matzehuels/surepatch/pkg/component"
)

// gemArgsPattern matches the quoted name followed by one or two quoted
// version bounds, in any mix of single and double quotes. The last bound
// must contain a digit.
var gemArgsPattern = regexp.MustCompile(`'.*',\s*'.*\d.*?'|".*",\s*".*\d.*?"|".*",\s*'.*\d.*?'|'.*',\s*".*\d.*?"`)

var boundPattern = regexp.MustCompile(`\d.*`)

// ParseGemfile converts Gemfile lines into components.
//
// Only gem declarations with at least one version bound are reported:
//
//	gem 'rails', '~> 7.0'             ->  rails 7.0
//	gem 'rails', '>= 5.0', '< 6.0'    ->  rails 5.0, rails 6.0
//	gem 'pry'                          ->  (skipped)
//
// Everything after a "#" is treated as a comment, even inside quotes.
func ParseGemfile(lines []string) []component.Component {
	var components []component.Component
	for _, line := range lines {
		args, ok := gemArgs(line)
		if !ok {
			continue
		}
		match := gemArgsPattern.FindString(args)
		if match == "" {
			continue
		}
		fields := strings.Split(match, ",")
		name := unquote(fields[0])

		switch len(fields) {
		case 2:
			if v, ok := bound(fields[1]); ok {
				components = append(components, component.Component{Name: name, Version: v})
			}
		case 3:
			lower, _ := bound(fields[1])
			upper, _ := bound(fields[2])
			components = append(components, component.ExpandRange(name, lower, upper)...)
		}
	}
	return component.DedupeLastWins(components)
}

// gemArgs strips comments and the gem keyword; ok is false for lines that
// do not declare a gem.
func gemArgs(line string) (string, bool) {
	line = strings.TrimLeft(line, " \t")
	if line == "" || strings.HasPrefix(line, "#") {
		return "", false
	}
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	if rest, ok := strings.CutPrefix(line, "gem "); ok {
		return rest, true
	}
	if rest, ok := strings.CutPrefix(line, "gem("); ok {
		return rest, true
	}
	return "", false
}

func unquote(field string) string {
	if len(field) < 2 {
		return ""
	}
	return field[1 : len(field)-1]
}

// bound returns the text from the first digit of a quoted bound up to, but
// not including, its closing quote.
func bound(field string) (string, bool) {
	v := boundPattern.FindString(field)
	if v == "" {
		return "", false
	}
	return v[:len(v)-1], true
}
