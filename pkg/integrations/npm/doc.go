// Package npm provides an HTTP client for the npm registry API.
//
// # Overview
//
// The client looks up the version tagged "latest" in a package's
// dist-tags. It is used to fill in versions for npm packages that a
// dependency listing names without a version.
//
// # Usage
//
//	client := npm.NewClient("") // public registry
//	v, err := client.LatestVersion(ctx, "express")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(v)
//
// Scoped names ("@babel/core") are escaped into a single path segment.
package npm
