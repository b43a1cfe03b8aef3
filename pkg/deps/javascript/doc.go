// Package javascript parses npm dependency listings.
//
// # Formats
//
//   - npm list --json output: [ParseTree]
//   - package-lock.json: [ParseLock]
//   - package.json: [ParseManifest]
//
// All three take an [Object], a JSON object decoded with member order
// preserved, because the order of the resulting component list follows
// the order of the document.
//
//	root, err := javascript.DecodeString(text)
//	if err != nil {
//	    return err
//	}
//	list := javascript.ParseManifest(root)
//
// # Version Resolution
//
// npm list can report a dependency by name only. [ParseTree] resolves those
// through a [deps.VersionResolver]: [NPMView] shells out to npm, [Registry]
// queries the registry over HTTP.
//
// [deps.VersionResolver]: github.com/matzehuels/surepatch/pkg/deps.VersionResolver
package javascript
