package ruby

import (
	"strings"

	"github.com/matzehuels/surepatch/pkg/component"
)

var gemListCleaner = strings.NewReplacer("default: ", "", " ", "", ")", "")

// ParseGemList converts gem list output into components.
//
// "default: " markers, spaces and closing parentheses are removed, then
// each line must split on "(" into exactly a name and a version list:
//
//	rake (13.0.6, default: 13.0.3)  ->  {rake 13.0.6,13.0.3}
//
// Any other line (banners, blank lines) is skipped.
func ParseGemList(text string) []component.Component {
	components := []component.Component{}
	for _, line := range Lines(gemListCleaner.Replace(text)) {
		if line == "" {
			continue
		}
		parts := strings.Split(line, "(")
		if len(parts) != 2 {
			continue
		}
		components = append(components, component.Component{Name: parts[0], Version: parts[1]})
	}
	return components
}
