package javascript

import (
	"strings"

	"github.com/matzehuels/surepatch/pkg/component"
	"github.com/matzehuels/surepatch/pkg/errors"
)

// ParseLock converts a package-lock.json document into components.
//
// Every direct dependency is recorded first, in file order. A second pass
// then adds each entry's "requires" map and nested "dependencies". A name
// already recorded is never added again, so a direct dependency keeps its
// own version even when an earlier entry requires a different range.
//
// Lock files that only carry the "packages" section (lockfileVersion 3)
// are read from there, keyed by the last node_modules/ path segment.
func ParseLock(root Object) ([]component.Component, error) {
	direct, ok := root.Object("dependencies")
	if !ok {
		packages, ok := root.Object("packages")
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidManifest, "lock file has no dependencies section")
		}
		return parsePackages(packages), nil
	}

	seen := component.Names{}
	components := []component.Component{}
	for _, m := range direct {
		entry, _ := m.Value.(Object)
		version, _ := entry.Scalar("version")
		components = component.AppendFirst(components, seen, component.Component{Name: m.Key, Version: version})
	}

	for _, m := range direct {
		entry, _ := m.Value.(Object)
		if requires, ok := entry.Object("requires"); ok {
			for _, r := range requires {
				v, _ := scalar(r.Value)
				components = component.AppendFirst(components, seen, component.Component{Name: r.Key, Version: v})
			}
		}
		if nested, ok := entry.Object("dependencies"); ok {
			for _, d := range nested {
				components = component.AppendFirst(components, seen, component.Component{Name: d.Key, Version: nestedVersion(d.Value)})
			}
		}
	}
	return components, nil
}

// nestedVersion accepts both a bare version string and a lock entry object.
func nestedVersion(v any) string {
	if obj, ok := v.(Object); ok {
		s, _ := obj.Scalar("version")
		return s
	}
	s, _ := scalar(v)
	return s
}

// parsePackages reads top-level node_modules/<name> keys before nested
// node_modules/<a>/node_modules/<name> keys, so hoisted versions win.
func parsePackages(packages Object) []component.Component {
	seen := component.Names{}
	components := []component.Component{}
	for _, nested := range []bool{false, true} {
		for _, m := range packages {
			i := strings.LastIndex(m.Key, "node_modules/")
			if i < 0 || (i > 0) != nested {
				continue
			}
			entry, _ := m.Value.(Object)
			version, _ := entry.Scalar("version")
			name := m.Key[i+len("node_modules/"):]
			components = component.AppendFirst(components, seen, component.Component{Name: name, Version: version})
		}
	}
	return components
}
