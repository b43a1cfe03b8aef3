package dispatch

import (
	"fmt"
	"strings"
)

// Target ecosystems.
const (
	TargetOS              = "os"
	TargetPip             = "pip"
	TargetReq             = "req"
	TargetRequirements    = "requirements"
	TargetNPM             = "npm"
	TargetNPMLocal        = "npm_local"
	TargetPackageJSON     = "package_json"
	TargetPackageLockJSON = "package_lock_json"
	TargetGem             = "gem"
	TargetGemfile         = "gemfile"
	TargetGemfileLock     = "gemfile_lock"
)

// Acquisition methods.
const (
	MethodAuto   = "auto"
	MethodManual = "manual"
)

// Input formats.
const (
	FormatSystem = "system"
	FormatUser   = "user"
)

// OSWindows is the only OS type with a package listing.
const OSWindows = "windows"

// Targets lists every target ecosystem in the order the CLI shows them.
var Targets = []string{
	TargetOS, TargetPip, TargetReq, TargetRequirements,
	TargetNPM, TargetNPMLocal, TargetPackageJSON, TargetPackageLockJSON,
	TargetGem, TargetGemfile, TargetGemfileLock,
}

// Context is the acquisition context of one extraction. It is never
// modified by the dispatch layer.
type Context struct {
	Target    string // Ecosystem ("pip", "gemfile_lock", ...)
	Method    string // "auto" or "manual"
	Format    string // "system" or "user"
	File      string // Input path; empty when the listing comes from a command
	OSType    string // Host OS type ("windows")
	OSVersion string // Host OS version ("10")
}

// Key returns the lookup key for c. Values are compared case-insensitively.
func (c Context) Key() Key {
	return Key{
		Target:  strings.ToLower(strings.TrimSpace(c.Target)),
		Method:  strings.ToLower(strings.TrimSpace(c.Method)),
		Format:  strings.ToLower(strings.TrimSpace(c.Format)),
		HasFile: strings.TrimSpace(c.File) != "",
	}
}

// Key is the tagged tuple the extractor table is keyed by. An empty Target
// matches any ecosystem.
type Key struct {
	Target  string
	Method  string
	Format  string
	HasFile bool
}

// String renders the key as target/method/format/input.
func (k Key) String() string {
	target, input := k.Target, "none"
	if target == "" {
		target = "any"
	}
	if k.HasFile {
		input = "file"
	}
	return fmt.Sprintf("%s/%s/%s/%s", target, k.Method, k.Format, input)
}

func (k Key) anyTarget() Key {
	k.Target = ""
	return k
}
