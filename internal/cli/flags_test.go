package cli

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"

	"github.com/matzehuels/surepatch/pkg/dispatch"
	"github.com/matzehuels/surepatch/pkg/errors"
)

func TestSourceFlagsContext(t *testing.T) {
	var src sourceFlags
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	src.bind(cmd)
	cmd.SetArgs([]string{"-t", "os", "-f", "listing.txt", "--os-type", "windows", "--os-version", "10"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}

	want := dispatch.Context{
		Target:    dispatch.TargetOS,
		Method:    dispatch.MethodAuto,
		Format:    dispatch.FormatSystem,
		File:      "listing.txt",
		OSType:    dispatch.OSWindows,
		OSVersion: "10",
	}
	if diff := cmp.Diff(want, src.context()); diff != "" {
		t.Errorf("context() mismatch (-want +got):\n%s", diff)
	}
}

func TestSourceFlagsValidate(t *testing.T) {
	tests := []struct {
		name    string
		src     sourceFlags
		wantErr bool
	}{
		{"target set", sourceFlags{target: "pip", pipResolver: resolverCommand, npmResolver: resolverCommand}, false},
		{"user format without target", sourceFlags{format: dispatch.FormatUser, pipResolver: resolverCommand, npmResolver: resolverRegistry}, false},
		{"missing target", sourceFlags{format: dispatch.FormatSystem, pipResolver: resolverCommand, npmResolver: resolverCommand}, true},
		{"bad resolver", sourceFlags{target: "npm", pipResolver: resolverCommand, npmResolver: "cache"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.src.validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Errorf("code = %s, want INVALID_INPUT", errors.GetCode(err))
			}
		})
	}
}

func TestSourceFlagsCompletion(t *testing.T) {
	values, directive := fixedCompletion(dispatch.Targets...)(nil, nil, "")
	if diff := cmp.Diff(dispatch.Targets, values); diff != "" {
		t.Errorf("completion mismatch (-want +got):\n%s", diff)
	}
	if directive != cobra.ShellCompDirectiveNoFileComp {
		t.Errorf("directive = %v", directive)
	}
}
