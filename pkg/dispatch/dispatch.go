package dispatch

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/matzehuels/surepatch/pkg/component"
	"github.com/matzehuels/surepatch/pkg/deps"
	"github.com/matzehuels/surepatch/pkg/deps/javascript"
	"github.com/matzehuels/surepatch/pkg/deps/python"
	"github.com/matzehuels/surepatch/pkg/errors"
	"github.com/matzehuels/surepatch/pkg/observability"
	"github.com/matzehuels/surepatch/pkg/runner"
	"github.com/matzehuels/surepatch/pkg/source"
)

// Extractor loads a raw listing for c and parses it into components.
type Extractor func(ctx context.Context, c Context) ([]component.Component, error)

// Result is the outcome of one extraction: a component list or an error,
// never both.
type Result struct {
	Key        Key
	Components []component.Component
	Err        error
}

// OK reports whether the extraction succeeded.
func (r Result) OK() bool { return r.Err == nil }

// Config wires a Dispatcher to its collaborators.
type Config struct {
	Runner      runner.Runner        // Runs listing commands (default: runner.Exec)
	PipResolver deps.VersionResolver // Versions of bare requirement names (default: pip show)
	NPMResolver deps.VersionResolver // Versions of bare npm names (default: npm view)
	Prompter    Prompter             // Interactive entry; manual/user/none fails without it
	Logger      func(string, ...any) // Debug callback (optional)
}

// Dispatcher owns the extractor table.
type Dispatcher struct {
	table    map[Key]Extractor
	loader   *source.Loader
	pip      deps.Options
	npm      deps.Options
	prompter Prompter
}

// New builds a Dispatcher and its extractor table.
func New(cfg Config) *Dispatcher {
	if cfg.Runner == nil {
		cfg.Runner = &runner.Exec{}
	}
	if cfg.PipResolver == nil {
		cfg.PipResolver = python.PipShow(cfg.Runner)
	}
	if cfg.NPMResolver == nil {
		cfg.NPMResolver = javascript.NPMView(cfg.Runner)
	}
	d := &Dispatcher{
		loader:   source.New(cfg.Runner),
		pip:      deps.Options{Resolver: cfg.PipResolver, Logger: cfg.Logger}.WithDefaults(),
		npm:      deps.Options{Resolver: cfg.NPMResolver, Logger: cfg.Logger}.WithDefaults(),
		prompter: cfg.Prompter,
	}
	d.table = d.extractors()
	return d
}

// Lookup returns the extractor registered for k. The exact key wins over
// the target-agnostic one.
func (d *Dispatcher) Lookup(k Key) (Extractor, error) {
	if x, ok := d.table[k]; ok {
		return x, nil
	}
	if x, ok := d.table[k.anyTarget()]; ok {
		return x, nil
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unsupported combination %s", k).
		WithHint("run 'surepatch components --list' to see supported combinations")
}

// Keys returns every registered key, sorted by its string form.
func (d *Dispatcher) Keys() []Key {
	keys := make([]Key, 0, len(d.table))
	for k := range d.table {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	return keys
}

// Extract runs the extractor selected by c and normalises its output:
// empty names are dropped, empty versions become the wildcard and, except
// for package.json and Gemfile sources, only the first entry of each name
// is kept.
func (d *Dispatcher) Extract(ctx context.Context, c Context) ([]component.Component, error) {
	key := c.Key()
	hooks := observability.Extraction()
	hooks.OnExtractStart(ctx, key.String())
	start := time.Now()

	list, err := d.extract(ctx, key, c)
	hooks.OnExtractComplete(ctx, key.String(), len(list), time.Since(start), err)
	return list, err
}

// Run is Extract returning a tagged Result.
func (d *Dispatcher) Run(ctx context.Context, c Context) Result {
	list, err := d.Extract(ctx, c)
	return Result{Key: c.Key(), Components: list, Err: err}
}

func (d *Dispatcher) extract(ctx context.Context, key Key, c Context) ([]component.Component, error) {
	x, err := d.Lookup(key)
	if err != nil {
		return nil, err
	}
	list, err := x(ctx, c)
	if err != nil {
		return nil, err
	}
	list = component.Normalize(list)
	if keepsDuplicates(key) {
		return list, nil
	}
	return component.UniqueNames(list), nil
}

// keepsDuplicates reports whether the parser for k may emit one name more
// than once: package.json lists a name under both dependency sections, and
// Gemfile ranges expand to one entry per bound.
func keepsDuplicates(k Key) bool {
	if k.Format != FormatSystem {
		return false
	}
	switch k.Target {
	case TargetPackageJSON, TargetGemfile, TargetGemfileLock:
		return true
	}
	return false
}

// checkOS accepts Windows 8 and 10, the only hosts with a package listing.
func checkOS(c Context) error {
	if !strings.EqualFold(strings.TrimSpace(c.OSType), OSWindows) {
		return errors.New(errors.ErrCodeUnsupported, "os packages are not supported for os type %q", c.OSType)
	}
	switch strings.TrimSpace(c.OSVersion) {
	case "8", "10":
		return nil
	}
	return errors.New(errors.ErrCodeUnsupported, "os packages are not supported for windows %q", c.OSVersion).
		WithHint("supported windows versions are 8 and 10")
}
