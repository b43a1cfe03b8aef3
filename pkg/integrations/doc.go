// Package integrations provides the shared HTTP client used for package
// registry lookups and for the surepatch backend.
//
// # Overview
//
// Registry subpackages answer a single question: what is the current
// version of a package that was listed by name only?
//
//   - [npm]: npm registry (https://registry.npmjs.org)
//   - [pypi]: Python Package Index (https://pypi.org)
//
// # Shared Infrastructure
//
// [Client] sends JSON requests, applies default headers, maps HTTP status
// codes to coded errors (see [checkStatus]) and reports every call through
// the observability HTTP hooks. There is no caching and no retry: a failed
// request is reported once and the caller decides what to do.
//
// [npm]: github.com/matzehuels/surepatch/pkg/integrations/npm
// [pypi]: github.com/matzehuels/surepatch/pkg/integrations/pypi
package integrations
