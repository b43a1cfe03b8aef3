package javascript

import (
	"context"
	"strings"

	"github.com/matzehuels/surepatch/pkg/component"
	"github.com/matzehuels/surepatch/pkg/deps"
)

// ListCommand prints the installed dependency tree as JSON.
const ListCommand = "npm list --json"

// provenanceKey is the per-dependency field of npm list output that records
// the requested spec ("express@~4.17.1").
const provenanceKey = "from"

// Leaf is a scalar member found while flattening a tree.
type Leaf struct {
	Key   string
	Value any
}

// Flatten walks obj depth-first and returns every scalar member (strings,
// numbers, booleans, null and arrays) in document order, regardless of
// depth. The result is freshly allocated on every call.
func Flatten(obj Object) []Leaf {
	return flatten(obj, nil)
}

func flatten(obj Object, acc []Leaf) []Leaf {
	for _, m := range obj {
		if child, ok := m.Value.(Object); ok {
			acc = flatten(child, acc)
			continue
		}
		acc = append(acc, Leaf{Key: m.Key, Value: m.Value})
	}
	return acc
}

// ParseTree converts npm list --json output into components.
//
// Every "from" value in the flattened tree yields one component. A value
// of the form name@version is split at its last "@" (a leading "@" belongs
// to a scoped name) and "~" is removed from the version. A value without
// a version is resolved through opts.Resolver, falling back to the
// wildcard.
//
// Newer npm releases no longer print "from". When the tree has no such
// field at all, the dependencies sections are walked instead and the first
// version seen for a name wins.
func ParseTree(ctx context.Context, root Object, opts deps.Options) []component.Component {
	opts = opts.WithDefaults()

	var components []component.Component
	found := false
	for _, leaf := range Flatten(root) {
		if leaf.Key != provenanceKey {
			continue
		}
		spec, ok := leaf.Value.(string)
		if !ok {
			continue
		}
		found = true
		name, version, ok := splitSpec(spec)
		if !ok {
			components = append(components, component.Component{
				Name:    spec,
				Version: opts.ResolveVersion(ctx, spec),
			})
			continue
		}
		components = append(components, component.Component{
			Name:    name,
			Version: component.StripAll(version, "~"),
		})
	}
	if !found {
		return walkInstalled(root, nil, component.Names{})
	}
	if components == nil {
		components = []component.Component{}
	}
	return components
}

// splitSpec splits "name@version" at the last "@" that is not the first
// character.
func splitSpec(spec string) (name, version string, ok bool) {
	i := strings.LastIndex(spec, "@")
	if i <= 0 {
		return "", "", false
	}
	return spec[:i], spec[i+1:], true
}

func walkInstalled(node Object, list []component.Component, seen component.Names) []component.Component {
	section, ok := node.Object("dependencies")
	if !ok {
		if list == nil {
			return []component.Component{}
		}
		return list
	}
	for _, m := range section {
		child, _ := m.Value.(Object)
		version, _ := child.Scalar("version")
		list = component.AppendFirst(list, seen, component.Component{Name: m.Key, Version: version})
		if child != nil {
			list = walkInstalled(child, list, seen)
		}
	}
	if list == nil {
		return []component.Component{}
	}
	return list
}
