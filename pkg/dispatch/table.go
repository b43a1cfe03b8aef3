package dispatch

import (
	"context"

	"github.com/matzehuels/surepatch/pkg/component"
	"github.com/matzehuels/surepatch/pkg/deps/javascript"
	"github.com/matzehuels/surepatch/pkg/deps/python"
	"github.com/matzehuels/surepatch/pkg/deps/ruby"
	"github.com/matzehuels/surepatch/pkg/deps/userlist"
	"github.com/matzehuels/surepatch/pkg/deps/windows"
	"github.com/matzehuels/surepatch/pkg/source"
)

func system(target string, file bool) Key {
	return Key{Target: target, Method: MethodAuto, Format: FormatSystem, HasFile: file}
}

func (d *Dispatcher) extractors() map[Key]Extractor {
	requirements := d.requirementsFile

	return map[Key]Extractor{
		system(TargetOS, false): d.osCommand,
		system(TargetOS, true):  d.osFile,

		system(TargetPip, false):         d.pipCommand,
		system(TargetPip, true):          requirements,
		system(TargetReq, true):          requirements,
		system(TargetRequirements, true): requirements,

		system(TargetNPM, false):            d.npmGlobal,
		system(TargetNPM, true):             d.npmFile,
		system(TargetNPMLocal, true):        d.npmLocal,
		system(TargetPackageJSON, true):     d.packageJSON,
		system(TargetPackageLockJSON, true): d.packageLock,

		system(TargetGem, false):        d.gemCommand,
		system(TargetGem, true):         d.gemFile,
		system(TargetGemfile, true):     d.gemfile,
		system(TargetGemfileLock, true): d.gemfileLock,

		{Method: MethodAuto, Format: FormatUser, HasFile: true}:    d.userFile,
		{Method: MethodManual, Format: FormatUser, HasFile: false}: d.manual,
	}
}

func (d *Dispatcher) osCommand(ctx context.Context, c Context) ([]component.Component, error) {
	if err := checkOS(c); err != nil {
		return nil, err
	}
	rows, err := d.loader.WindowsListing(ctx)
	if err != nil {
		return nil, err
	}
	return windows.Parse(rows)
}

func (d *Dispatcher) osFile(_ context.Context, c Context) ([]component.Component, error) {
	if err := checkOS(c); err != nil {
		return nil, err
	}
	rows, err := source.ReadWindowsListing(c.File)
	if err != nil {
		return nil, err
	}
	return windows.Parse(rows)
}

func (d *Dispatcher) pipCommand(ctx context.Context, _ Context) ([]component.Component, error) {
	lines, err := d.loader.PipFreeze(ctx)
	if err != nil {
		return nil, err
	}
	return python.ParseRequirements(ctx, lines, d.pip), nil
}

func (d *Dispatcher) requirementsFile(ctx context.Context, c Context) ([]component.Component, error) {
	lines, err := source.ReadRequirements(c.File)
	if err != nil {
		return nil, err
	}
	return python.ParseRequirements(ctx, lines, d.pip), nil
}

func (d *Dispatcher) npmGlobal(ctx context.Context, _ Context) ([]component.Component, error) {
	root, err := d.loader.NPMList(ctx, "")
	if err != nil {
		return nil, err
	}
	return javascript.ParseTree(ctx, root, d.npm), nil
}

func (d *Dispatcher) npmLocal(ctx context.Context, c Context) ([]component.Component, error) {
	root, err := d.loader.NPMList(ctx, c.File)
	if err != nil {
		return nil, err
	}
	return javascript.ParseTree(ctx, root, d.npm), nil
}

func (d *Dispatcher) npmFile(ctx context.Context, c Context) ([]component.Component, error) {
	root, err := source.ReadJSON(c.File)
	if err != nil {
		return nil, err
	}
	return javascript.ParseTree(ctx, root, d.npm), nil
}

func (d *Dispatcher) packageJSON(_ context.Context, c Context) ([]component.Component, error) {
	root, err := source.ReadJSON(c.File)
	if err != nil {
		return nil, err
	}
	return javascript.ParseManifest(root), nil
}

func (d *Dispatcher) packageLock(_ context.Context, c Context) ([]component.Component, error) {
	root, err := source.ReadJSON(c.File)
	if err != nil {
		return nil, err
	}
	return javascript.ParseLock(root)
}

func (d *Dispatcher) gemCommand(ctx context.Context, _ Context) ([]component.Component, error) {
	text, err := d.loader.GemList(ctx, "")
	if err != nil {
		return nil, err
	}
	return ruby.ParseGemList(text), nil
}

func (d *Dispatcher) gemFile(_ context.Context, c Context) ([]component.Component, error) {
	text, err := source.ReadText(c.File)
	if err != nil {
		return nil, err
	}
	return ruby.ParseGemList(text), nil
}

func (d *Dispatcher) gemfile(_ context.Context, c Context) ([]component.Component, error) {
	lines, err := source.ReadLines(c.File)
	if err != nil {
		return nil, err
	}
	return ruby.ParseGemfile(lines), nil
}

func (d *Dispatcher) gemfileLock(_ context.Context, c Context) ([]component.Component, error) {
	lines, err := source.ReadLines(c.File)
	if err != nil {
		return nil, err
	}
	return ruby.ParseGemfileLock(lines), nil
}

func (d *Dispatcher) userFile(_ context.Context, c Context) ([]component.Component, error) {
	lines, err := source.ReadLines(c.File)
	if err != nil {
		return nil, err
	}
	return userlist.Parse(lines), nil
}
