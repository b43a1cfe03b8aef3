package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/surepatch/pkg/backend"
	"github.com/matzehuels/surepatch/pkg/component"
	"github.com/matzehuels/surepatch/pkg/dispatch"
	"github.com/matzehuels/surepatch/pkg/errors"
	"github.com/matzehuels/surepatch/pkg/inventory"
)

// Service is the part of the backend client the runner uses.
type Service interface {
	Login(ctx context.Context, cred backend.Credentials) error
	Organization(ctx context.Context) (*inventory.Organization, error)
	CreatePlatform(ctx context.Context, name, description string) error
	DeletePlatform(ctx context.Context, platform string) error
	ArchivePlatform(ctx context.Context, platform string) error
	CreateProject(ctx context.Context, platform, project, set string, components []component.Component) error
	DeleteProject(ctx context.Context, platform, project string) error
	ArchiveProject(ctx context.Context, platform, project string) error
	CreateSet(ctx context.Context, platform, project, set string, components []component.Component) error
}

// Extractor produces the component list of an acquisition context as a
// tagged result; a failed extraction carries its error in Result.Err.
type Extractor interface {
	Run(ctx context.Context, c dispatch.Context) dispatch.Result
}

var (
	_ Service   = (*backend.Client)(nil)
	_ Extractor = (*dispatch.Dispatcher)(nil)
)

// Runner executes actions. It holds no per-action state, so one Runner
// can serve several actions in sequence.
type Runner struct {
	Service   Service
	Extractor Extractor
	Logger    *log.Logger
}

// NewRunner creates a runner. A nil logger discards output.
func NewRunner(svc Service, x Extractor, logger *log.Logger) *Runner {
	if logger == nil {
		logger = discardLogger()
	}
	return &Runner{Service: svc, Extractor: x, Logger: logger}
}

// Run executes action. Online actions log in and fetch the organisation
// before they validate names against it.
func (r *Runner) Run(ctx context.Context, action string, req Request) (*Result, error) {
	if err := req.Validate(action); err != nil {
		return nil, err
	}
	result := &Result{Action: action}

	if action == ActionExtract {
		return result, r.extract(ctx, req, result)
	}

	if err := r.Service.Login(ctx, req.Credentials); err != nil {
		return nil, err
	}
	r.Logger.Debug("logged in", "team", req.Credentials.Team, "user", req.Credentials.User)

	org, err := r.Service.Organization(ctx)
	if err != nil {
		return nil, err
	}
	r.Logger.Debug("fetched organization", "platforms", len(org.Platforms))

	switch action {
	case ActionCreatePlatform:
		err = r.createPlatform(ctx, org, req, result)
	case ActionCreateProject:
		err = r.createProject(ctx, org, req, result)
	case ActionCreateSet:
		err = r.createSet(ctx, org, req, result)
	case ActionShowPlatforms:
		result.Platforms = org.Platforms
	case ActionShowProjects:
		result.Platform, err = org.Platform(req.Platform)
	case ActionShowSet:
		err = r.showSet(org, req, result)
	case ActionDeletePlatform, ActionArchivePlatform:
		err = r.platformOp(ctx, action, org, req, result)
	case ActionDeleteProject, ActionArchiveProject:
		err = r.projectOp(ctx, action, org, req, result)
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (r *Runner) createPlatform(ctx context.Context, org *inventory.Organization, req Request, result *Result) error {
	if org.HasPlatform(req.Platform) {
		return errors.New(errors.ErrCodeAlreadyExists, "platform %s already exists", req.Platform)
	}
	description := req.Description
	if description == "" {
		r.Logger.Warn("empty platform description", "using", inventory.DefaultPlatformDescription)
		description = inventory.DefaultPlatformDescription
	}
	if err := r.submit(func() error {
		return r.Service.CreatePlatform(ctx, req.Platform, description)
	}, result); err != nil {
		return err
	}
	result.Platform = &inventory.Platform{Name: req.Platform, Description: description}
	r.Logger.Info("created platform", "platform", req.Platform)
	return nil
}

func (r *Runner) createProject(ctx context.Context, org *inventory.Organization, req Request, result *Result) error {
	platform, err := org.Platform(req.Platform)
	if err != nil {
		return err
	}
	if _, err := org.Project(req.Platform, req.Project); err == nil {
		return errors.New(errors.ErrCodeAlreadyExists, "project %s already exists in platform %s", req.Project, req.Platform).
			WithHint("use 'surepatch set create' to submit a new component set")
	}
	result.Platform = platform

	if err := r.extract(ctx, req, result); err != nil {
		return err
	}
	set := req.Set
	if set == "" {
		set = backend.DefaultSetName
	}
	if err := r.submit(func() error {
		return r.Service.CreateProject(ctx, req.Platform, req.Project, set, result.Components)
	}, result); err != nil {
		return err
	}
	result.Set = &inventory.ComponentSet{Name: set, Components: result.Components}
	r.Logger.Info("created project", "platform", req.Platform, "project", req.Project, "set", set,
		"components", result.Stats.ComponentCount)
	return nil
}

func (r *Runner) createSet(ctx context.Context, org *inventory.Organization, req Request, result *Result) error {
	project, err := org.Project(req.Platform, req.Project)
	if err != nil {
		return err
	}
	result.Platform, _ = org.Platform(req.Platform)

	current := project.CurrentComponentSet.Name
	set := req.Set
	switch {
	case set == "":
		set = inventory.NextSetName(current)
		r.Logger.Debug("derived set name", "current", current, "next", set)
	case set == current:
		return errors.New(errors.ErrCodeAlreadyExists, "current set %s already exists", set).
			WithHint("use another name, or omit --set to increment the set name")
	}

	if err := r.extract(ctx, req, result); err != nil {
		return err
	}
	if err := r.submit(func() error {
		return r.Service.CreateSet(ctx, req.Platform, req.Project, set, result.Components)
	}, result); err != nil {
		return err
	}
	result.Set = &inventory.ComponentSet{Name: set, Components: result.Components}
	r.Logger.Info("created set", "platform", req.Platform, "project", req.Project, "set", set,
		"components", result.Stats.ComponentCount)
	return nil
}

func (r *Runner) showSet(org *inventory.Organization, req Request, result *Result) error {
	project, err := org.Project(req.Platform, req.Project)
	if err != nil {
		return err
	}
	result.Platform, _ = org.Platform(req.Platform)
	set := project.CurrentComponentSet
	result.Set = &set
	result.Stats.ComponentCount = len(set.Components)
	return nil
}

func (r *Runner) platformOp(ctx context.Context, action string, org *inventory.Organization, req Request, result *Result) error {
	platform, err := org.Platform(req.Platform)
	if err != nil {
		return err
	}
	result.Platform = platform
	op := r.Service.DeletePlatform
	if action == ActionArchivePlatform {
		op = r.Service.ArchivePlatform
	}
	if err := r.submit(func() error { return op(ctx, req.Platform) }, result); err != nil {
		return err
	}
	r.Logger.Info(actionVerb(action)+" platform", "platform", req.Platform)
	return nil
}

func (r *Runner) projectOp(ctx context.Context, action string, org *inventory.Organization, req Request, result *Result) error {
	if _, err := org.Project(req.Platform, req.Project); err != nil {
		return err
	}
	result.Platform, _ = org.Platform(req.Platform)
	op := r.Service.DeleteProject
	if action == ActionArchiveProject {
		op = r.Service.ArchiveProject
	}
	if err := r.submit(func() error { return op(ctx, req.Platform, req.Project) }, result); err != nil {
		return err
	}
	r.Logger.Info(actionVerb(action)+" project", "platform", req.Platform, "project", req.Project)
	return nil
}

// extract runs the dispatch layer for req.Source and records the list.
func (r *Runner) extract(ctx context.Context, req Request, result *Result) error {
	if !submitsComponents(result.Action) {
		return nil
	}
	if r.Extractor == nil {
		return errors.New(errors.ErrCodeInternal, "no extractor configured")
	}
	start := time.Now()
	res := r.Extractor.Run(ctx, req.Source)
	if !res.OK() {
		return res.Err
	}
	list := res.Components
	result.Components = list
	result.Stats.ComponentCount = len(list)
	result.Stats.ExtractTime = time.Since(start)

	r.Logger.Info("extracted components",
		"source", res.Key.String(),
		"count", len(list),
		"duration", result.Stats.ExtractTime)
	if len(list) == 0 {
		r.Logger.Warn("no components found", "source", res.Key.String())
	}
	return nil
}

func (r *Runner) submit(call func() error, result *Result) error {
	start := time.Now()
	err := call()
	result.Stats.SubmitTime = time.Since(start)
	return err
}

func actionVerb(action string) string {
	switch action {
	case ActionDeletePlatform, ActionDeleteProject:
		return "deleted"
	default:
		return "archived"
	}
}
