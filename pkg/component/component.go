// Package component defines the normalised {name, version} record produced
// by every format parser, and the list-level clean-up shared between them.
//
// A Component is immutable once it is placed in a list. Clean-up functions
// such as [Normalize] and [DedupeLastWins] return a new list rather than
// editing entries in place.
package component

import "strings"

// Wildcard is the version recorded when a component's version cannot be
// resolved.
const Wildcard = "*"

// Component is one discovered dependency.
type Component struct {
	Name    string `json:"name"`    // Ecosystem-specific identifier, never empty after Normalize
	Version string `json:"version"` // Exact version, range bound, or Wildcard
}

// New returns a Component with surrounding whitespace removed from both fields.
func New(name, version string) Component {
	return Component{Name: strings.TrimSpace(name), Version: strings.TrimSpace(version)}
}

// String formats the component as name@version.
func (c Component) String() string {
	return c.Name + "@" + c.Version
}

// HasWildcard reports whether the version is unresolved.
func (c Component) HasWildcard() bool {
	return c.Version == Wildcard
}
