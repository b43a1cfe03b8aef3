package component

import "strings"

// Normalize returns a copy of list in which records with an empty name are
// dropped and empty versions are replaced by Wildcard. Order is preserved
// and no de-duplication is done: duplicate-name policy belongs to the
// parser that produced the list.
func Normalize(list []Component) []Component {
	out := make([]Component, 0, len(list))
	for _, c := range list {
		c = New(c.Name, c.Version)
		if c.Name == "" {
			continue
		}
		if c.Version == "" {
			c.Version = Wildcard
		}
		out = append(out, c)
	}
	return out
}

// Names is a set of component names used for first-occurrence-wins
// accumulation.
type Names map[string]struct{}

// Add records name and reports whether it was not present before.
func (n Names) Add(name string) bool {
	if _, ok := n[name]; ok {
		return false
	}
	n[name] = struct{}{}
	return true
}

// AppendFirst appends c to list unless a component with the same name has
// already been recorded in seen.
func AppendFirst(list []Component, seen Names, c Component) []Component {
	if seen.Add(c.Name) {
		return append(list, c)
	}
	return list
}

// UniqueNames keeps the first component of each name and drops later
// ones, preserving order.
func UniqueNames(list []Component) []Component {
	seen := make(Names, len(list))
	out := make([]Component, 0, len(list))
	for _, c := range list {
		out = AppendFirst(out, seen, c)
	}
	return out
}

// DedupeLastWins removes structurally identical {name, version} pairs.
// The list is walked from the end so the last occurrence of each pair is
// the one kept; the survivors are returned in declaration order.
func DedupeLastWins(list []Component) []Component {
	seen := make(map[Component]struct{}, len(list))
	kept := make([]Component, 0, len(list))
	for i := len(list) - 1; i >= 0; i-- {
		c := list[i]
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		kept = append(kept, c)
	}
	for i, j := 0, len(kept)-1; i < j; i, j = i+1, j-1 {
		kept[i], kept[j] = kept[j], kept[i]
	}
	return kept
}

// StripAll removes every occurrence of each marker from version, e.g.
// StripAll("^1.2.0", "^") == "1.2.0".
func StripAll(version string, markers ...string) string {
	for _, m := range markers {
		version = strings.ReplaceAll(version, m, "")
	}
	return version
}

// ExpandRange returns one component per bound of a version range, all
// sharing name. Empty bounds are skipped.
func ExpandRange(name string, bounds ...string) []Component {
	out := make([]Component, 0, len(bounds))
	for _, b := range bounds {
		if b == "" {
			continue
		}
		out = append(out, Component{Name: name, Version: b})
	}
	return out
}
