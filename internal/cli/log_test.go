package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/surepatch/pkg/component"
	"github.com/matzehuels/surepatch/pkg/observability"
	"github.com/matzehuels/surepatch/pkg/pipeline"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", LogInfo, func(l *log.Logger) { l.Info("created platform") }, true},
		{"debug at info level", LogInfo, func(l *log.Logger) { l.Debug("loaded config") }, false},
		{"debug at debug level", LogDebug, func(l *log.Logger) { l.Debug("loaded config") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("got log output = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestProgressDone(t *testing.T) {
	tests := []struct {
		name   string
		action string
		result *pipeline.Result
		want   string
	}{
		{
			name:   "no result",
			action: pipeline.ActionDeletePlatform,
			want:   "Finished " + pipeline.ActionDeletePlatform + " (",
		},
		{
			name:   "nothing extracted",
			action: pipeline.ActionShowPlatforms,
			result: &pipeline.Result{Action: pipeline.ActionShowPlatforms},
			want:   "Finished " + pipeline.ActionShowPlatforms + " (",
		},
		{
			name:   "extracted components",
			action: pipeline.ActionCreateSet,
			result: &pipeline.Result{Components: []component.Component{{Name: "rails", Version: "7.0.4"}, {Name: "rake", Version: "13.0.6"}}},
			want:   "Finished " + pipeline.ActionCreateSet + " with 2 components (",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			newProgress(newLogger(&buf, LogInfo), tt.action).done(tt.result)
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("done() = %q, want it to contain %q", buf.String(), tt.want)
			}
		})
	}
}

func TestLoggerFromContext(t *testing.T) {
	if got := loggerFromContext(context.Background()); got != log.Default() {
		t.Error("loggerFromContext() without a logger should return log.Default()")
	}

	l := newLogger(io.Discard, LogInfo)
	if got := loggerFromContext(withLogger(context.Background(), l)); got != l {
		t.Error("loggerFromContext() did not return the attached logger")
	}
}

func TestRootAttachesLogger(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	var got *log.Logger
	root.AddCommand(&cobra.Command{
		Use: "whoami",
		RunE: func(cmd *cobra.Command, args []string) error {
			got = loggerFromContext(cmd.Context())
			return nil
		},
	})
	root.SetArgs([]string{"whoami"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatal(err)
	}
	if got != c.Logger {
		t.Error("command context does not carry the CLI logger")
	}
}

func TestVerboseLogsExtraction(t *testing.T) {
	t.Cleanup(observability.Reset)
	swapOutput(t, io.Discard)
	req := writeFile(t, "requirements.txt", "requests==2.31.0\nurllib3==2.0.7\n")

	var buf bytes.Buffer
	root := New(&buf, LogInfo).RootCommand()
	root.SetArgs([]string{"--verbose", "components", "--target", "requirements", "--file", req})
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{"extract done", "source=requirements/auto/system/file", "components=2"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("debug log missing %q:\n%s", want, buf.String())
		}
	}
}
