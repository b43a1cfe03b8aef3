// Package inventory models the organisation tree kept by the backend:
// platforms hold projects, and each project has a current component set.
//
// The types mirror the JSON the backend returns for the organisation. The
// lookup helpers are what actions use to validate names before they call
// the backend.
package inventory

import (
	"strconv"

	"github.com/matzehuels/surepatch/pkg/component"
	"github.com/matzehuels/surepatch/pkg/errors"
)

// DefaultPlatformDescription is used when a platform is created without one.
const DefaultPlatformDescription = "default platform"

// DefaultProjectDescription is shown for projects, which carry no
// description of their own.
const DefaultProjectDescription = "default project"

// Organization is the root of a team's inventory.
type Organization struct {
	Name      string     `json:"name"`
	Platforms []Platform `json:"platforms"`
}

// Platform groups the projects of one host or environment.
type Platform struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Projects    []Project `json:"projects"`
}

// Project is one application with its latest component set.
type Project struct {
	Name                string       `json:"name"`
	CurrentComponentSet ComponentSet `json:"current_component_set"`
}

// ComponentSet is a named snapshot of a project's components.
type ComponentSet struct {
	Name       string                `json:"name"`
	Components []component.Component `json:"components"`
}

// PlatformNames returns the platform names in backend order.
func (o *Organization) PlatformNames() []string {
	names := make([]string, 0, len(o.Platforms))
	for _, p := range o.Platforms {
		names = append(names, p.Name)
	}
	return names
}

// Platform returns the platform called name.
func (o *Organization) Platform(name string) (*Platform, error) {
	for i := range o.Platforms {
		if o.Platforms[i].Name == name {
			return &o.Platforms[i], nil
		}
	}
	return nil, errors.New(errors.ErrCodeNotFound, "platform %s does not exist", name).
		WithHint("run 'surepatch platform show' to list platforms")
}

// HasPlatform reports whether a platform called name exists.
func (o *Organization) HasPlatform(name string) bool {
	_, err := o.Platform(name)
	return err == nil
}

// Project returns the project called project inside platform.
func (o *Organization) Project(platform, project string) (*Project, error) {
	p, err := o.Platform(platform)
	if err != nil {
		return nil, err
	}
	for i := range p.Projects {
		if p.Projects[i].Name == project {
			return &p.Projects[i], nil
		}
	}
	return nil, errors.New(errors.ErrCodeNotFound, "project %s does not exist in platform %s", project, platform).
		WithHint("run 'surepatch project show --platform " + platform + "' to list projects")
}

// ProjectNames returns the project names of the platform in backend order.
func (p *Platform) ProjectNames() []string {
	names := make([]string, 0, len(p.Projects))
	for _, q := range p.Projects {
		names = append(names, q.Name)
	}
	return names
}

// NextSetName derives the name of the set that follows current. A trailing
// digit is incremented on its own ("1.0" -> "1.1", "1.9" -> "1.10"); any
// other name gets ".1" appended. An empty name starts at "1".
func NextSetName(current string) string {
	if current == "" {
		return "1"
	}
	last := current[len(current)-1]
	if last < '0' || last > '9' {
		return current + ".1"
	}
	return current[:len(current)-1] + strconv.Itoa(int(last-'0')+1)
}
