package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/surepatch/pkg/pipeline"
)

// projectCommand creates the project command group.
func (c *CLI) projectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "project",
		Aliases: []string{"projects"},
		Short:   "Create, show, delete or archive projects",
	}
	cmd.AddCommand(c.projectCreateCommand())
	cmd.AddCommand(c.projectShowCommand())
	cmd.AddCommand(c.projectRemoveCommand(pipeline.ActionDeleteProject))
	cmd.AddCommand(c.projectRemoveCommand(pipeline.ActionArchiveProject))
	return cmd
}

func (c *CLI) projectCreateCommand() *cobra.Command {
	var (
		src sourceFlags
		set string
	)

	cmd := &cobra.Command{
		Use:   "create <platform> <project>",
		Short: "Create a project with its first component set",
		Long: `Create a project in an existing platform. The components found by the
source flags become the project's first component set, named "1.0" unless
--set is given.`,
		Example: `  # Installed OS packages
  surepatch project create web shop --target os --os-type windows --os-version 10

  # A lock file
  surepatch project create web shop --target package_lock_json --file package-lock.json

  # Entered by hand
  surepatch project create web shop --method manual --format user`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := pipeline.Request{Platform: args[0], Project: args[1], Set: set}
			result, err := c.runAction(cmd.Context(), pipeline.ActionCreateProject, req, &src, "Creating project...")
			if err != nil {
				return err
			}
			if len(result.Components) == 0 {
				printWarning("No components found")
			}
			printSuccess("Created project %s in platform %s", req.Project, req.Platform)
			printKeyValue("Set", result.Set.Name)
			printStats(result.Stats.ComponentCount, result.Stats.ExtractTime, result.Stats.SubmitTime)
			printNextStep("Next", appName+" set create "+req.Platform+" "+req.Project+" --target <target>")
			return nil
		},
	}
	src.bind(cmd)
	cmd.Flags().StringVarP(&set, "set", "s", "", "name of the first component set (default 1.0)")
	return cmd
}

func (c *CLI) projectShowCommand() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "show <platform>",
		Short: "Show the projects of a platform",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := pipeline.Request{Platform: args[0]}
			result, err := c.runAction(cmd.Context(), pipeline.ActionShowProjects, req, nil, "Fetching projects...")
			if err != nil {
				return err
			}
			if len(result.Platform.Projects) == 0 {
				printInfo("Platform %s has no projects", req.Platform)
				printNextStep("Create one", appName+" project create "+req.Platform+" <project> --target <target>")
				return nil
			}
			return writeTable("Projects of "+result.Platform.Name, projectsTable(result.Platform), outPath)
		},
	}
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write the table to a file")
	return cmd
}

// projectRemoveCommand creates the delete or archive subcommand.
func (c *CLI) projectRemoveCommand(action string) *cobra.Command {
	use, verb, past, doing := "delete", "Delete", "Deleted", "Deleting"
	if action == pipeline.ActionArchiveProject {
		use, verb, past, doing = "archive", "Archive", "Archived", "Archiving"
	}

	return &cobra.Command{
		Use:   use + " <platform> <project>",
		Short: verb + " a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := pipeline.Request{Platform: args[0], Project: args[1]}
			result, err := c.runAction(cmd.Context(), action, req, nil, doing+" project...")
			if err != nil {
				return err
			}
			printSuccess("%s project %s in platform %s", past, req.Project, req.Platform)
			printStats(0, 0, result.Stats.SubmitTime)
			return nil
		},
	}
}
