// Package dispatch selects and runs the loader/parser pair for an
// acquisition request.
//
// A request is described by a [Context]: the target ecosystem, the
// acquisition method, the input format, an optional file and the host OS.
// The context reduces to a [Key], and the key selects an [Extractor] from a
// table built once by [New]. Keys are looked up exactly first, then with
// an empty target, which is how the ecosystem-agnostic user formats
// (auto/user/file and manual/user/none) are registered. A key with no entry
// is an UNSUPPORTED error naming the combination.
//
// Every list returned by [Dispatcher.Extract] has been through
// [component.Normalize]: no empty names, no empty versions.
//
// # Usage
//
//	d := dispatch.New(dispatch.Config{Runner: &runner.Exec{}})
//	comps, err := d.Extract(ctx, dispatch.Context{
//	    Target: dispatch.TargetGemfileLock,
//	    Method: dispatch.MethodAuto,
//	    Format: dispatch.FormatSystem,
//	    File:   "Gemfile.lock",
//	})
//
// [component.Normalize]: github.com/matzehuels/surepatch/pkg/component.Normalize
package dispatch
