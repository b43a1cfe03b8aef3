package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/surepatch/pkg/backend"
	"github.com/matzehuels/surepatch/pkg/component"
	"github.com/matzehuels/surepatch/pkg/dispatch"
	"github.com/matzehuels/surepatch/pkg/errors"
	"github.com/matzehuels/surepatch/pkg/inventory"
)

// fakeService records calls against a fixed organisation.
type fakeService struct {
	org      inventory.Organization
	loginErr error
	calls    []string
	sets     map[string][]component.Component
}

func newFakeService() *fakeService {
	return &fakeService{
		org: inventory.Organization{Platforms: []inventory.Platform{
			{Name: "web", Description: "frontend", Projects: []inventory.Project{
				{Name: "shop", CurrentComponentSet: inventory.ComponentSet{Name: "1.0"}},
			}},
		}},
		sets: map[string][]component.Component{},
	}
}

func (f *fakeService) record(call string) error {
	f.calls = append(f.calls, call)
	return nil
}

func (f *fakeService) Login(context.Context, backend.Credentials) error {
	f.calls = append(f.calls, "login")
	return f.loginErr
}

func (f *fakeService) Organization(context.Context) (*inventory.Organization, error) {
	f.calls = append(f.calls, "organization")
	return &f.org, nil
}

func (f *fakeService) CreatePlatform(_ context.Context, name, description string) error {
	return f.record("create_platform " + name + " " + description)
}

func (f *fakeService) DeletePlatform(_ context.Context, p string) error {
	return f.record("delete_platform " + p)
}

func (f *fakeService) ArchivePlatform(_ context.Context, p string) error {
	return f.record("archive_platform " + p)
}

func (f *fakeService) CreateProject(_ context.Context, p, q, set string, comps []component.Component) error {
	f.sets[set] = comps
	return f.record("create_project " + p + "/" + q + " " + set)
}

func (f *fakeService) DeleteProject(_ context.Context, p, q string) error {
	return f.record("delete_project " + p + "/" + q)
}

func (f *fakeService) ArchiveProject(_ context.Context, p, q string) error {
	return f.record("archive_project " + p + "/" + q)
}

func (f *fakeService) CreateSet(_ context.Context, p, q, set string, comps []component.Component) error {
	f.sets[set] = comps
	return f.record("create_set " + p + "/" + q + " " + set)
}

type fakeExtractor struct {
	list []component.Component
	err  error
	got  []dispatch.Context
}

func (f *fakeExtractor) Run(_ context.Context, c dispatch.Context) dispatch.Result {
	f.got = append(f.got, c)
	return dispatch.Result{Key: c.Key(), Components: f.list, Err: f.err}
}

var lockSource = dispatch.Context{
	Target: dispatch.TargetPackageLockJSON,
	Method: dispatch.MethodAuto,
	Format: dispatch.FormatSystem,
	File:   "package-lock.json",
}

var extracted = []component.Component{{Name: "express", Version: "4.18.2"}}

func TestValidateAction(t *testing.T) {
	for action := range ValidActions {
		if err := ValidateAction(action); err != nil {
			t.Errorf("ValidateAction(%q) error = %v", action, err)
		}
	}
	for _, action := range []string{"", "save_config", "CREATE_SET"} {
		if err := ValidateAction(action); !errors.Is(err, errors.ErrCodeInvalidInput) {
			t.Errorf("ValidateAction(%q) error = %v, want INVALID_INPUT", action, err)
		}
	}
}

func TestRequestValidate(t *testing.T) {
	tests := []struct {
		action  string
		req     Request
		wantErr bool
	}{
		{ActionShowPlatforms, Request{}, false},
		{ActionExtract, Request{}, false},
		{ActionCreatePlatform, Request{}, true},
		{ActionCreatePlatform, Request{Platform: "web"}, false},
		{ActionCreateProject, Request{Platform: "web"}, true},
		{ActionCreateSet, Request{Platform: "web", Project: "shop"}, false},
		{ActionCreateSet, Request{Platform: "web", Project: "shop", Set: "a/b"}, true},
		{ActionDeleteProject, Request{Platform: "web", Project: "  "}, true},
		{ActionArchivePlatform, Request{Platform: "we/b"}, true},
	}
	for _, tt := range tests {
		err := tt.req.Validate(tt.action)
		if (err != nil) != tt.wantErr {
			t.Errorf("Validate(%s, %+v) error = %v, wantErr %v", tt.action, tt.req, err, tt.wantErr)
		}
	}
}

func TestRunCreatePlatform(t *testing.T) {
	svc := newFakeService()
	r := NewRunner(svc, nil, nil)

	res, err := r.Run(context.Background(), ActionCreatePlatform, Request{Platform: "db"})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	want := []string{"login", "organization", "create_platform db default platform"}
	if diff := cmp.Diff(want, svc.calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
	if res.Platform.Description != inventory.DefaultPlatformDescription {
		t.Errorf("Description = %q", res.Platform.Description)
	}

	if _, err := r.Run(context.Background(), ActionCreatePlatform, Request{Platform: "web"}); !errors.Is(err, errors.ErrCodeAlreadyExists) {
		t.Errorf("Run(existing platform) error = %v, want ALREADY_EXISTS", err)
	}
}

func TestRunCreateProject(t *testing.T) {
	svc := newFakeService()
	x := &fakeExtractor{list: extracted}
	r := NewRunner(svc, x, nil)

	res, err := r.Run(context.Background(), ActionCreateProject, Request{Platform: "web", Project: "api", Source: lockSource})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if diff := cmp.Diff([]dispatch.Context{lockSource}, x.got); diff != "" {
		t.Errorf("extract contexts mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(extracted, svc.sets[backend.DefaultSetName]); diff != "" {
		t.Errorf("submitted set mismatch (-want +got):\n%s", diff)
	}
	if res.Stats.ComponentCount != 1 || res.Set.Name != backend.DefaultSetName {
		t.Errorf("Result = %+v", res)
	}
}

func TestRunCreateProjectChecks(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want errors.Code
	}{
		{"missing platform", Request{Platform: "mobile", Project: "app"}, errors.ErrCodeNotFound},
		{"existing project", Request{Platform: "web", Project: "shop"}, errors.ErrCodeAlreadyExists},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newFakeService()
			x := &fakeExtractor{list: extracted}
			_, err := NewRunner(svc, x, nil).Run(context.Background(), ActionCreateProject, tt.req)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Run() error = %v, want %s", err, tt.want)
			}
			if len(x.got) != 0 {
				t.Error("extractor ran for a rejected request")
			}
		})
	}
}

func TestRunCreateSet(t *testing.T) {
	tests := []struct {
		name    string
		set     string
		wantSet string
		wantErr errors.Code
	}{
		{name: "derived name", wantSet: "1.1"},
		{name: "explicit name", set: "2.0", wantSet: "2.0"},
		{name: "current name rejected", set: "1.0", wantErr: errors.ErrCodeAlreadyExists},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newFakeService()
			r := NewRunner(svc, &fakeExtractor{list: extracted}, nil)

			res, err := r.Run(context.Background(), ActionCreateSet, Request{
				Platform: "web", Project: "shop", Set: tt.set, Source: lockSource,
			})
			if tt.wantErr != "" {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Run() error = %v, want %s", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if res.Set.Name != tt.wantSet {
				t.Errorf("Set.Name = %q, want %q", res.Set.Name, tt.wantSet)
			}
			if _, ok := svc.sets[tt.wantSet]; !ok {
				t.Errorf("set %q was not submitted: %v", tt.wantSet, svc.calls)
			}
		})
	}
}

func TestRunExtractionFailureSubmitsNothing(t *testing.T) {
	svc := newFakeService()
	x := &fakeExtractor{err: errors.New(errors.ErrCodeFileNotFound, "missing")}
	_, err := NewRunner(svc, x, nil).Run(context.Background(), ActionCreateSet, Request{Platform: "web", Project: "shop"})
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Fatalf("Run() error = %v, want FILE_NOT_FOUND", err)
	}
	if len(svc.sets) != 0 {
		t.Errorf("sets submitted after failed extraction: %v", svc.calls)
	}
}

func TestRunShow(t *testing.T) {
	svc := newFakeService()
	svc.org.Platforms[0].Projects[0].CurrentComponentSet.Components = extracted
	r := NewRunner(svc, nil, nil)
	ctx := context.Background()

	res, err := r.Run(ctx, ActionShowPlatforms, Request{})
	if err != nil || len(res.Platforms) != 1 {
		t.Fatalf("show_platforms = %+v, %v", res, err)
	}

	res, err = r.Run(ctx, ActionShowProjects, Request{Platform: "web"})
	if err != nil || res.Platform.Name != "web" {
		t.Fatalf("show_projects = %+v, %v", res, err)
	}
	if _, err := r.Run(ctx, ActionShowProjects, Request{Platform: "mobile"}); !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("show_projects(mobile) error = %v, want NOT_FOUND", err)
	}

	res, err = r.Run(ctx, ActionShowSet, Request{Platform: "web", Project: "shop"})
	if err != nil {
		t.Fatalf("show_set error = %v", err)
	}
	want := &inventory.ComponentSet{Name: "1.0", Components: extracted}
	if diff := cmp.Diff(want, res.Set); diff != "" {
		t.Errorf("show_set mismatch (-want +got):\n%s", diff)
	}
}

func TestRunDeleteAndArchive(t *testing.T) {
	tests := []struct {
		action string
		req    Request
		want   string
	}{
		{ActionDeletePlatform, Request{Platform: "web"}, "delete_platform web"},
		{ActionArchivePlatform, Request{Platform: "web"}, "archive_platform web"},
		{ActionDeleteProject, Request{Platform: "web", Project: "shop"}, "delete_project web/shop"},
		{ActionArchiveProject, Request{Platform: "web", Project: "shop"}, "archive_project web/shop"},
	}
	for _, tt := range tests {
		svc := newFakeService()
		if _, err := NewRunner(svc, nil, nil).Run(context.Background(), tt.action, tt.req); err != nil {
			t.Errorf("Run(%s) error = %v", tt.action, err)
			continue
		}
		if got := svc.calls[len(svc.calls)-1]; got != tt.want {
			t.Errorf("Run(%s) last call = %q, want %q", tt.action, got, tt.want)
		}
	}

	svc := newFakeService()
	_, err := NewRunner(svc, nil, nil).Run(context.Background(), ActionDeleteProject, Request{Platform: "web", Project: "blog"})
	if !errors.Is(err, errors.ErrCodeNotFound) {
		t.Errorf("Run(delete missing project) error = %v, want NOT_FOUND", err)
	}
}

func TestRunLoginFailure(t *testing.T) {
	svc := newFakeService()
	svc.loginErr = errors.New(errors.ErrCodeUnauthorized, "bad credentials")
	_, err := NewRunner(svc, nil, nil).Run(context.Background(), ActionShowPlatforms, Request{})
	if !errors.Is(err, errors.ErrCodeUnauthorized) {
		t.Fatalf("Run() error = %v, want UNAUTHORIZED", err)
	}
	if diff := cmp.Diff([]string{"login"}, svc.calls); diff != "" {
		t.Errorf("calls mismatch (-want +got):\n%s", diff)
	}
}

func TestRunExtractIsOffline(t *testing.T) {
	svc := newFakeService()
	x := &fakeExtractor{list: extracted}
	res, err := NewRunner(svc, x, nil).Run(context.Background(), ActionExtract, Request{Source: lockSource})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(svc.calls) != 0 {
		t.Errorf("extract called the backend: %v", svc.calls)
	}
	if diff := cmp.Diff(extracted, res.Components); diff != "" {
		t.Errorf("Components mismatch (-want +got):\n%s", diff)
	}
}

func TestRunWithDispatcher(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.txt")
	if err := os.WriteFile(path, []byte("rails=7.0.4\nrails=7.1.0\nrake=\n"), 0644); err != nil {
		t.Fatal(err)
	}
	d := dispatch.New(dispatch.Config{})

	tests := []struct {
		name    string
		source  dispatch.Context
		want    []component.Component
		wantErr errors.Code
	}{
		{
			name:   "user list",
			source: dispatch.Context{Target: dispatch.TargetGem, Method: dispatch.MethodAuto, Format: dispatch.FormatUser, File: path},
			want:   []component.Component{{Name: "rails", Version: "7.0.4"}, {Name: "rake", Version: component.Wildcard}},
		},
		{
			name:    "missing file",
			source:  dispatch.Context{Target: dispatch.TargetGem, Method: dispatch.MethodAuto, Format: dispatch.FormatUser, File: path + ".gone"},
			wantErr: errors.ErrCodeFileNotFound,
		},
		{
			name:    "unsupported combination",
			source:  dispatch.Context{Target: dispatch.TargetGemfile, Method: dispatch.MethodAuto, Format: dispatch.FormatSystem},
			wantErr: errors.ErrCodeUnsupported,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := NewRunner(nil, d, nil).Run(context.Background(), ActionExtract, Request{Source: tt.source})
			if tt.wantErr != "" {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Run() error = %v, want %s", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Run() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, res.Components); diff != "" {
				t.Errorf("Components mismatch (-want +got):\n%s", diff)
			}
			if res.Stats.ComponentCount != len(tt.want) {
				t.Errorf("ComponentCount = %d, want %d", res.Stats.ComponentCount, len(tt.want))
			}
		})
	}
}
