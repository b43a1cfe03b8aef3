// Package backend is the HTTP client of the surepatch inventory service.
//
// The service is organised as organisation → platform → project →
// component set. A session starts with [Client.Login], which stores a
// bearer token on the client; every later call sends it. Every request also
// carries a fresh X-Request-ID so calls can be traced on the server side.
//
// Endpoints (relative to the base URL):
//
//	POST   /api/auth/login
//	GET    /api/organization
//	POST   /api/platforms
//	DELETE /api/platforms/{platform}
//	POST   /api/platforms/{platform}/archive
//	POST   /api/platforms/{platform}/projects
//	DELETE /api/platforms/{platform}/projects/{project}
//	POST   /api/platforms/{platform}/projects/{project}/archive
//	POST   /api/platforms/{platform}/projects/{project}/sets
//
// Failed calls are not retried.
package backend

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/matzehuels/surepatch/pkg/buildinfo"
	"github.com/matzehuels/surepatch/pkg/component"
	"github.com/matzehuels/surepatch/pkg/errors"
	"github.com/matzehuels/surepatch/pkg/integrations"
	"github.com/matzehuels/surepatch/pkg/inventory"
)

// DefaultBaseURL is the public surepatch service.
const DefaultBaseURL = "https://api.surepatch.com"

// RequestIDHeader carries the per-request trace id.
const RequestIDHeader = "X-Request-ID"

// DefaultSetName names the first component set of a new project.
const DefaultSetName = "1.0"

// Credentials identify a user of a team.
type Credentials struct {
	Team      string `json:"team"`
	User      string `json:"user"`
	Password  string `json:"password"`
	AuthToken string `json:"auth_token,omitempty"`
}

// Client talks to the inventory service.
type Client struct {
	*integrations.Client
	baseURL string
	token   string
}

// NewClient creates a client for baseURL. An empty baseURL selects
// DefaultBaseURL.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		Client:  integrations.NewClient(map[string]string{"User-Agent": buildinfo.UserAgent()}),
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// Token returns the bearer token obtained by Login.
func (c *Client) Token() string { return c.token }

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a bearer token and keeps it on the
// client.
func (c *Client) Login(ctx context.Context, cred Credentials) error {
	var resp loginResponse
	if err := c.call(ctx, http.MethodPost, "/api/auth/login", cred, &resp); err != nil {
		if errors.Is(err, errors.ErrCodeUnauthorized) {
			return errors.Wrap(errors.ErrCodeUnauthorized, err, "login as %s in team %s", cred.User, cred.Team).
				WithHint("check team, user and password with 'surepatch config save'")
		}
		return err
	}
	if resp.Token == "" {
		return errors.New(errors.ErrCodeUnauthorized, "login returned no token")
	}
	c.token = resp.Token
	c.SetHeader("Authorization", "Bearer "+resp.Token)
	return nil
}

// Organization fetches the organisation tree of the logged-in team.
func (c *Client) Organization(ctx context.Context) (*inventory.Organization, error) {
	var org inventory.Organization
	if err := c.call(ctx, http.MethodGet, "/api/organization", nil, &org); err != nil {
		return nil, err
	}
	return &org, nil
}

type platformRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// CreatePlatform creates an empty platform.
func (c *Client) CreatePlatform(ctx context.Context, name, description string) error {
	return c.call(ctx, http.MethodPost, "/api/platforms", platformRequest{Name: name, Description: description}, nil)
}

// DeletePlatform removes a platform and its projects.
func (c *Client) DeletePlatform(ctx context.Context, platform string) error {
	return c.call(ctx, http.MethodDelete, platformPath(platform), nil, nil)
}

// ArchivePlatform archives a platform.
func (c *Client) ArchivePlatform(ctx context.Context, platform string) error {
	return c.call(ctx, http.MethodPost, platformPath(platform)+"/archive", nil, nil)
}

type projectRequest struct {
	Name         string                 `json:"name"`
	ComponentSet inventory.ComponentSet `json:"component_set"`
}

// CreateProject creates a project whose first component set holds
// components.
func (c *Client) CreateProject(ctx context.Context, platform, project, set string, components []component.Component) error {
	if set == "" {
		set = DefaultSetName
	}
	body := projectRequest{
		Name:         project,
		ComponentSet: inventory.ComponentSet{Name: set, Components: components},
	}
	return c.call(ctx, http.MethodPost, platformPath(platform)+"/projects", body, nil)
}

// DeleteProject removes a project.
func (c *Client) DeleteProject(ctx context.Context, platform, project string) error {
	return c.call(ctx, http.MethodDelete, projectPath(platform, project), nil, nil)
}

// ArchiveProject archives a project.
func (c *Client) ArchiveProject(ctx context.Context, platform, project string) error {
	return c.call(ctx, http.MethodPost, projectPath(platform, project)+"/archive", nil, nil)
}

// CreateSet adds a component set to a project and makes it current.
func (c *Client) CreateSet(ctx context.Context, platform, project, set string, components []component.Component) error {
	body := inventory.ComponentSet{Name: set, Components: components}
	return c.call(ctx, http.MethodPost, projectPath(platform, project)+"/sets", body, nil)
}

func (c *Client) call(ctx context.Context, method, path string, in, out any) error {
	headers := map[string]string{RequestIDHeader: uuid.NewString()}
	return c.Do(ctx, method, c.baseURL+path, headers, in, out)
}

func platformPath(platform string) string {
	return "/api/platforms/" + integrations.PathEscape(platform)
}

func projectPath(platform, project string) string {
	return platformPath(platform) + "/projects/" + integrations.PathEscape(project)
}
