// Package pypi provides an HTTP client for the Python Package Index API.
//
// # Overview
//
// The client reads https://pypi.org/pypi/<name>/json and reports the latest
// released version. It backs the "registry" resolver for requirement lines
// that name a package without a version specifier.
//
// # Usage
//
//	client := pypi.NewClient("")
//	v, err := client.LatestVersion(ctx, "requests")
//
// Names are normalized following PEP 503 before the lookup, so
// "Flask_SQLAlchemy" and "flask-sqlalchemy" hit the same document.
package pypi
