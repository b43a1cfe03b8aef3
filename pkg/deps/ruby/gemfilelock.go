package ruby

import (
	"regexp"
	"strings"

	"github.com/matzehuels/surepatch/pkg/component"
)

// lockSections are the section headers and section-level keys of a
// Gemfile.lock that never describe a gem.
var lockSections = []string{
	"GIT", "remote", "revision", "specs", "PATH",
	"GEM", "PLATFORMS", "DEPENDENCIES", "BUNDLED",
}

var lockEntryPattern = regexp.MustCompile(`.*\s*\(.*\)`)

// ParseGemfileLock converts Gemfile.lock lines into components.
//
// Entries are recognised by a parenthesised version and split on single
// spaces:
//
//	rails (7.0.4)               ->  rails 7.0.4
//	actionpack (= 7.0.4)        ->  actionpack 7.0.4
//	nokogiri (>= 1.6, < 2.0)    ->  nokogiri 1.6, nokogiri 2.0
//
// Entries with any other number of tokens are skipped.
func ParseGemfileLock(lines []string) []component.Component {
	var components []component.Component
	for _, line := range lines {
		line = strings.TrimLeft(line, " \t")
		if isLockSection(line) {
			continue
		}
		entry := lockEntryPattern.FindString(line)
		if entry == "" {
			continue
		}

		tokens := strings.Split(entry, " ")
		name := tokens[0]
		switch len(tokens) {
		case 2:
			components = append(components, component.Component{Name: name, Version: trim(tokens[1], 1, 1)})
		case 3:
			components = append(components, component.Component{Name: name, Version: trim(tokens[2], 0, 1)})
		case 5:
			components = append(components, component.ExpandRange(name, trim(tokens[2], 0, 1), trim(tokens[4], 0, 1))...)
		}
	}
	return component.DedupeLastWins(components)
}

func isLockSection(line string) bool {
	for _, s := range lockSections {
		if strings.HasPrefix(line, s) {
			return true
		}
	}
	return false
}

// trim drops head bytes from the front and tail bytes from the end of s.
func trim(s string, head, tail int) string {
	if len(s) < head+tail {
		return ""
	}
	return s[head : len(s)-tail]
}
