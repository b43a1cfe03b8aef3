package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/surepatch/pkg/backend"
	"github.com/matzehuels/surepatch/pkg/config"
	"github.com/matzehuels/surepatch/pkg/runner"
)

// configCommand creates the config command group.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the surepatch configuration file",
	}
	cmd.AddCommand(c.configSaveCommand())
	return cmd
}

// configSaveCommand writes credentials to the config file.
func (c *CLI) configSaveCommand() *cobra.Command {
	cfg := config.Config{
		BaseURL:        backend.DefaultBaseURL,
		CommandTimeout: runner.DefaultTimeout,
	}

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Save credentials to the config file",
		Long: `Save writes team, user and password to ~/` + config.FileName + ` (or the file named
by --config). The password is asked for when --password is omitted.

The file is readable by its owner only. Environment variables prefixed with
` + config.EnvPrefix + `_ override its values at run time.`,
		Example: `  surepatch config save --team acme --user alice
  surepatch config save --team acme --user alice --base-url https://surepatch.internal`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.Password == "" {
				password, err := c.prompter.Password("Password:")
				if err != nil {
					return err
				}
				cfg.Password = password
			}

			path := c.configPath
			if path == "" {
				p, err := config.DefaultPath()
				if err != nil {
					return err
				}
				path = p
			}
			if err := config.Save(path, &cfg); err != nil {
				return err
			}

			loggerFromContext(cmd.Context()).Debug("saved config", "path", path)
			printSuccess("Configuration saved")
			printKeyValue("File", path)
			printKeyValue("Team", cfg.Team)
			printKeyValue("User", cfg.User)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfg.Team, "team", "", "team name")
	f.StringVar(&cfg.User, "user", "", "user name")
	f.StringVar(&cfg.Password, "password", "", "password (asked for when omitted)")
	f.StringVar(&cfg.AuthToken, "auth-token", "", "authentication token")
	f.StringVar(&cfg.BaseURL, "base-url", cfg.BaseURL, "service base URL")
	f.DurationVar(&cfg.CommandTimeout, "command-timeout", cfg.CommandTimeout, "timeout for listing commands")
	_ = cmd.MarkFlagRequired("team")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
