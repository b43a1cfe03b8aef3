package javascript

import (
	"github.com/matzehuels/surepatch/pkg/component"
)

// ParseManifest converts a package.json document into components.
//
// devDependencies come first, then dependencies, each in file order and
// with every "^" removed from the version. Names present in both sections
// are reported twice. Missing sections are treated as empty.
func ParseManifest(root Object) []component.Component {
	components := []component.Component{}
	for _, section := range []string{"devDependencies", "dependencies"} {
		entries, ok := root.Object(section)
		if !ok {
			continue
		}
		for _, m := range entries {
			version, _ := scalar(m.Value)
			components = append(components, component.Component{
				Name:    m.Key,
				Version: component.StripAll(version, "^"),
			})
		}
	}
	return components
}
