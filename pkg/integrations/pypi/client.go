package pypi

import (
	"context"
	"fmt"
	"strings"

	"github.com/matzehuels/surepatch/pkg/errors"
	"github.com/matzehuels/surepatch/pkg/integrations"
)

// DefaultBaseURL is the public PyPI JSON API.
const DefaultBaseURL = "https://pypi.org/pypi"

// PackageInfo holds metadata for a Python package from PyPI.
//
// Package names are normalized following PEP 503 (lowercase, underscores→hyphens).
type PackageInfo struct {
	Name    string // Normalized package name
	Version string // Latest released version
	Summary string // Short package description (may be empty)
	License string // License identifier (may be empty)
}

// Client provides access to the PyPI package registry API.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a PyPI client. An empty baseURL selects the public index.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		Client:  integrations.NewClient(nil),
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// FetchPackage retrieves metadata for a Python package from PyPI.
//
// Returns:
//   - PackageInfo populated with metadata on success
//   - NOT_FOUND if the package doesn't exist
//   - NETWORK_ERROR for HTTP failures (timeout, 5xx, etc.)
func (c *Client) FetchPackage(ctx context.Context, pkg string) (*PackageInfo, error) {
	pkg = integrations.NormalizePkgName(pkg)
	if pkg == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "empty pypi package name")
	}

	var data apiResponse
	if err := c.Get(ctx, fmt.Sprintf("%s/%s/json", c.baseURL, integrations.PathEscape(pkg)), &data); err != nil {
		if errors.Is(err, errors.ErrCodeNotFound) {
			return nil, errors.Wrap(errors.ErrCodeNotFound, err, "pypi package %s", pkg)
		}
		return nil, err
	}

	return &PackageInfo{
		Name:    integrations.NormalizePkgName(data.Info.Name),
		Version: data.Info.Version,
		Summary: data.Info.Summary,
		License: extractLicenseType(data.Info.License, data.Info.Classifiers),
	}, nil
}

// LatestVersion returns the latest released version of pkg.
func (c *Client) LatestVersion(ctx context.Context, pkg string) (string, error) {
	info, err := c.FetchPackage(ctx, pkg)
	if err != nil {
		return "", err
	}
	return info.Version, nil
}

type apiResponse struct {
	Info apiInfo `json:"info"`
}

type apiInfo struct {
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	Summary     string   `json:"summary"`
	License     string   `json:"license"`
	Classifiers []string `json:"classifiers"`
}

// extractLicenseType prefers the trove classifier
// ("License :: OSI Approved :: MIT License" -> "MIT License") and falls
// back to a single-line license field.
func extractLicenseType(license string, classifiers []string) string {
	for _, c := range classifiers {
		if strings.HasPrefix(c, "License :: ") {
			parts := strings.Split(c, " :: ")
			if len(parts) >= 3 {
				return parts[len(parts)-1]
			}
		}
	}
	if license != "" && len(license) < 100 && !strings.Contains(license, "\n") {
		return strings.TrimSpace(license)
	}
	return ""
}
