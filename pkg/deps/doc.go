// Package deps holds the contracts shared by the format parsers in its
// subpackages.
//
// # Overview
//
// Each subpackage turns one family of raw package listings into a flat,
// ordered list of [component.Component] values:
//
//   - [windows]: Get-AppxPackage listings (OS packages)
//   - [python]: requirements files and pip freeze output
//   - [javascript]: npm list trees, package-lock.json, package.json
//   - [ruby]: gem list output, Gemfile, Gemfile.lock
//   - [userlist]: free-form name=version lists
//
// Parsers are plain functions of their input. They keep no state between
// calls, so running a parser twice on the same input gives the same list.
//
// # Version Resolution
//
// Two formats may name a package without a version: bare requirement
// lines and npm provenance values without an "@". Those parsers ask a
// [VersionResolver] for the installed or latest version. Resolution
// failures never fail the batch; the component gets [component.Wildcard]
// instead.
//
//	opts := deps.Options{Resolver: python.PipShow(runner)}
//	list := python.ParseRequirements(ctx, lines, opts)
//
// [component.Component]: github.com/matzehuels/surepatch/pkg/component.Component
// [component.Wildcard]: github.com/matzehuels/surepatch/pkg/component.Wildcard
// [windows]: github.com/matzehuels/surepatch/pkg/deps/windows
// [python]: github.com/matzehuels/surepatch/pkg/deps/python
// [javascript]: github.com/matzehuels/surepatch/pkg/deps/javascript
// [ruby]: github.com/matzehuels/surepatch/pkg/deps/ruby
// [userlist]: github.com/matzehuels/surepatch/pkg/deps/userlist
package deps
