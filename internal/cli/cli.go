package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/surepatch/pkg/backend"
	"github.com/matzehuels/surepatch/pkg/buildinfo"
	"github.com/matzehuels/surepatch/pkg/config"
	"github.com/matzehuels/surepatch/pkg/dispatch"
	"github.com/matzehuels/surepatch/pkg/pipeline"
	"github.com/matzehuels/surepatch/pkg/runner"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the binary name used in help text and hints.
const appName = "surepatch"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// configPath overrides ~/.surepatch.yaml (--config).
	configPath string

	// prompter is used for manual entry and missing credentials.
	prompter *surveyPrompter

	verbose bool
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:   newLogger(w, level),
		prompter: newSurveyPrompter(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Surepatch reports installed software components to the surepatch service",
		Long: `Surepatch collects the components installed on a host (OS packages, PIP,
NPM and Ruby gems) or declared in manifest files, and submits them as
component sets of a project in your surepatch organisation.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if c.verbose {
				c.SetLogLevel(LogDebug)
				registerDebugHooks(c.Logger)
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default ~/"+config.FileName+")")

	root.AddCommand(c.configCommand())
	root.AddCommand(c.platformCommand())
	root.AddCommand(c.projectCommand())
	root.AddCommand(c.setCommand())
	root.AddCommand(c.componentsCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// loadConfig reads the config file named by --config.
func (c *CLI) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("loaded config", "team", cfg.Team, "user", cfg.User, "base_url", cfg.BaseURL)
	return cfg, nil
}

// newDispatcher wires the dispatch layer for one command.
func (c *CLI) newDispatcher(src *sourceFlags, timeout time.Duration) *dispatch.Dispatcher {
	exec := &runner.Exec{Timeout: timeout}
	cfg := dispatch.Config{
		Runner:   exec,
		Logger:   c.Logger.Debugf,
		Prompter: c.prompter,
	}
	cfg.PipResolver, cfg.NPMResolver = src.resolvers(exec)
	return dispatch.New(cfg)
}

// newRunner creates a pipeline runner backed by the configured service.
func (c *CLI) newRunner(cfg *config.Config, src *sourceFlags) *pipeline.Runner {
	client := backend.NewClient(cfg.BaseURL)
	return pipeline.NewRunner(client, c.newDispatcher(src, cfg.CommandTimeout), c.Logger)
}
