// Package pkg holds the libraries behind the surepatch CLI.
//
// # Overview
//
// surepatch inventories the software installed on a host and reports it to
// the surepatch service, which organises it as platform → project →
// component set. The libraries are layered:
//
//  1. [component] - the {name, version} record and list clean-up
//  2. [charset], [runner], [source] - reading files and command output
//  3. [deps] - one parser package per listing format
//  4. [dispatch] - picks the loader and parser for an acquisition context
//  5. [backend], [inventory], [config] - the service, its data model, credentials
//  6. [pipeline] - actions: login → organisation → extract → submit
//
// # Data Flow
//
//	file / command output
//	         ↓
//	    [source] (encoding detection, line split, JSON decode)
//	         ↓
//	    [deps] parsers (format-specific edge cases)
//	         ↓
//	    [component.Normalize] (no empty names or versions)
//	         ↓
//	    [backend] (new project or component set)
//
// # Quick Start
//
//	d := dispatch.New(dispatch.Config{})
//	comps, err := d.Extract(ctx, dispatch.Context{
//	    Target: dispatch.TargetGemfileLock,
//	    Method: dispatch.MethodAuto,
//	    Format: dispatch.FormatSystem,
//	    File:   "Gemfile.lock",
//	})
//
// [component]: github.com/matzehuels/surepatch/pkg/component
// [component.Normalize]: github.com/matzehuels/surepatch/pkg/component.Normalize
// [charset]: github.com/matzehuels/surepatch/pkg/charset
// [runner]: github.com/matzehuels/surepatch/pkg/runner
// [source]: github.com/matzehuels/surepatch/pkg/source
// [deps]: github.com/matzehuels/surepatch/pkg/deps
// [dispatch]: github.com/matzehuels/surepatch/pkg/dispatch
// [backend]: github.com/matzehuels/surepatch/pkg/backend
// [inventory]: github.com/matzehuels/surepatch/pkg/inventory
// [config]: github.com/matzehuels/surepatch/pkg/config
// [pipeline]: github.com/matzehuels/surepatch/pkg/pipeline
package pkg
