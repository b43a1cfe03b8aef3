// Package pipeline runs surepatch actions against the inventory service.
//
// Every action except the offline extract follows the same sequence:
//
//  1. Login: exchange the configured credentials for a session
//  2. Organization: fetch the platform → project → set tree
//  3. Validate: check names against the tree
//  4. Extract: run the dispatch layer when the action submits components
//  5. Submit: call the backend
//
// The CLI loads the configuration, builds a Runner from it and renders the
// Result. Saving the configuration is not an action; it never reaches the
// backend.
//
// # Usage
//
//	runner := pipeline.NewRunner(client, dispatcher, logger)
//	result, err := runner.Run(ctx, pipeline.ActionCreateSet, pipeline.Request{
//	    Credentials: cfg.Credentials(),
//	    Platform:    "web",
//	    Project:     "shop",
//	    Source: dispatch.Context{
//	        Target: dispatch.TargetPackageLockJSON,
//	        Method: dispatch.MethodAuto,
//	        Format: dispatch.FormatSystem,
//	        File:   "package-lock.json",
//	    },
//	})
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/surepatch/pkg/backend"
	"github.com/matzehuels/surepatch/pkg/component"
	"github.com/matzehuels/surepatch/pkg/dispatch"
	"github.com/matzehuels/surepatch/pkg/errors"
	"github.com/matzehuels/surepatch/pkg/inventory"
)

// Action names.
const (
	ActionCreatePlatform  = "create_platform"
	ActionCreateProject   = "create_project"
	ActionCreateSet       = "create_set"
	ActionShowPlatforms   = "show_platforms"
	ActionShowProjects    = "show_projects"
	ActionShowSet         = "show_set"
	ActionDeletePlatform  = "delete_platform"
	ActionDeleteProject   = "delete_project"
	ActionArchivePlatform = "archive_platform"
	ActionArchiveProject  = "archive_project"
	ActionExtract         = "extract"
)

// ValidActions is the set of actions Run accepts.
var ValidActions = map[string]bool{
	ActionCreatePlatform:  true,
	ActionCreateProject:   true,
	ActionCreateSet:       true,
	ActionShowPlatforms:   true,
	ActionShowProjects:    true,
	ActionShowSet:         true,
	ActionDeletePlatform:  true,
	ActionDeleteProject:   true,
	ActionArchivePlatform: true,
	ActionArchiveProject:  true,
	ActionExtract:         true,
}

// =============================================================================
// Request - Action Input
// =============================================================================

// Request carries the inputs of one action. Only the fields the action
// needs are read.
type Request struct {
	Credentials backend.Credentials

	Platform    string
	Description string // create_platform; defaults to inventory.DefaultPlatformDescription
	Project     string
	Set         string // create_project/create_set; defaults to the next set name

	Source dispatch.Context // Where components come from (create_project, create_set, extract)
}

// Result is what an action produced. Fields not touched by the action stay
// zero.
type Result struct {
	Action string

	// Platforms is filled by show_platforms.
	Platforms []inventory.Platform

	// Platform is the platform an action worked on.
	Platform *inventory.Platform

	// Set is the component set shown (show_set) or submitted (create_*).
	Set *inventory.ComponentSet

	// Components is the extracted list (create_project, create_set, extract).
	Components []component.Component

	Stats Stats
}

// Stats contains action timings.
type Stats struct {
	ComponentCount int
	ExtractTime    time.Duration
	SubmitTime     time.Duration
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateAction checks that an action name is known.
func ValidateAction(action string) error {
	if !ValidActions[action] {
		return errors.New(errors.ErrCodeInvalidInput, "unknown action %q", action)
	}
	return nil
}

// needs lists which names an action requires.
var needs = map[string]struct{ platform, project bool }{
	ActionCreatePlatform:  {platform: true},
	ActionCreateProject:   {platform: true, project: true},
	ActionCreateSet:       {platform: true, project: true},
	ActionShowProjects:    {platform: true},
	ActionShowSet:         {platform: true, project: true},
	ActionDeletePlatform:  {platform: true},
	ActionDeleteProject:   {platform: true, project: true},
	ActionArchivePlatform: {platform: true},
	ActionArchiveProject:  {platform: true, project: true},
}

// Validate checks the request fields the action requires.
func (r *Request) Validate(action string) error {
	if err := ValidateAction(action); err != nil {
		return err
	}
	n := needs[action]
	if n.platform {
		if err := errors.ValidateName("platform", r.Platform); err != nil {
			return err
		}
	}
	if n.project {
		if err := errors.ValidateName("project", r.Project); err != nil {
			return err
		}
	}
	if r.Set != "" {
		if err := errors.ValidateName("set", r.Set); err != nil {
			return err
		}
	}
	return nil
}

// submitsComponents reports whether the action runs the dispatch layer.
func submitsComponents(action string) bool {
	return action == ActionCreateProject || action == ActionCreateSet || action == ActionExtract
}

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}
