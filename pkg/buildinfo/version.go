// Package buildinfo holds version information stamped in at build time.
//
//	go build -ldflags "-X github.com/matzehuels/surepatch/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/surepatch/pkg/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/matzehuels/surepatch/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" \
//	    ./cmd/surepatch
package buildinfo

import "fmt"

var (
	// Version is the release tag ("v1.2.3"), "dev" for local builds.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// String returns the formatted build information.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the version template for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}

// UserAgent identifies the client in HTTP requests.
func UserAgent() string {
	return "surepatch/" + Version
}
