package npm

import (
	"context"
	"strings"

	"github.com/matzehuels/surepatch/pkg/errors"
	"github.com/matzehuels/surepatch/pkg/integrations"
)

// DefaultBaseURL is the public npm registry.
const DefaultBaseURL = "https://registry.npmjs.org"

type PackageInfo struct {
	Name        string
	Version     string
	Description string
	License     string
}

type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a registry client. An empty baseURL selects the public
// registry.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		Client:  integrations.NewClient(nil),
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// FetchPackage returns the registry document of pkg reduced to the version
// tagged "latest".
func (c *Client) FetchPackage(ctx context.Context, pkg string) (*PackageInfo, error) {
	pkg = strings.TrimSpace(pkg)
	if pkg == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "empty npm package name")
	}

	var data registryResponse
	if err := c.Get(ctx, c.baseURL+"/"+integrations.PathEscape(pkg), &data); err != nil {
		if errors.Is(err, errors.ErrCodeNotFound) {
			return nil, errors.Wrap(errors.ErrCodeNotFound, err, "npm package %s", pkg)
		}
		return nil, err
	}

	latest := data.DistTags.Latest
	if latest == "" {
		return nil, errors.New(errors.ErrCodeNotFound, "npm package %s has no latest tag", pkg)
	}
	v := data.Versions[latest]

	return &PackageInfo{
		Name:        data.Name,
		Version:     latest,
		Description: v.Description,
		License:     extractField(v.License, "type"),
	}, nil
}

// LatestVersion returns the version tagged "latest" for pkg.
func (c *Client) LatestVersion(ctx context.Context, pkg string) (string, error) {
	info, err := c.FetchPackage(ctx, pkg)
	if err != nil {
		return "", err
	}
	return info.Version, nil
}

func extractField(v any, field string) string {
	switch val := v.(type) {
	case string:
		return val
	case map[string]any:
		if s, ok := val[field].(string); ok {
			return s
		}
	}
	return ""
}

type registryResponse struct {
	Name     string                    `json:"name"`
	DistTags distTags                  `json:"dist-tags"`
	Versions map[string]versionDetails `json:"versions"`
}

type distTags struct {
	Latest string `json:"latest"`
}

type versionDetails struct {
	Description string `json:"description"`
	License     any    `json:"license"`
}
