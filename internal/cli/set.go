package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/surepatch/pkg/pipeline"
)

// setCommand creates the set command group.
func (c *CLI) setCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Submit or show component sets",
	}
	cmd.AddCommand(c.setCreateCommand())
	cmd.AddCommand(c.setShowCommand())
	return cmd
}

func (c *CLI) setCreateCommand() *cobra.Command {
	var (
		src sourceFlags
		set string
	)

	cmd := &cobra.Command{
		Use:   "create <platform> <project>",
		Short: "Submit a new component set for a project",
		Long: `Extract components and submit them as the project's new current set.

Without --set the name is derived from the current set by incrementing its
last digit: 1.0 becomes 1.1, 1.9 becomes 1.10.`,
		Example: `  surepatch set create web shop --target pip
  surepatch set create web shop --target requirements --file requirements.txt --set 2.0`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := pipeline.Request{Platform: args[0], Project: args[1], Set: set}
			result, err := c.runAction(cmd.Context(), pipeline.ActionCreateSet, req, &src, "Submitting component set...")
			if err != nil {
				return err
			}
			if len(result.Components) == 0 {
				printWarning("No components found")
			}
			printSuccess("Created set %s for project %s", result.Set.Name, req.Project)
			printStats(result.Stats.ComponentCount, result.Stats.ExtractTime, result.Stats.SubmitTime)
			printNextStep("Review", appName+" set show "+req.Platform+" "+req.Project)
			return nil
		},
	}
	src.bind(cmd)
	cmd.Flags().StringVarP(&set, "set", "s", "", "set name (default: current set incremented)")
	return cmd
}

func (c *CLI) setShowCommand() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "show <platform> <project>",
		Short: "Show the current component set of a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := pipeline.Request{Platform: args[0], Project: args[1]}
			result, err := c.runAction(cmd.Context(), pipeline.ActionShowSet, req, nil, "Fetching component set...")
			if err != nil {
				return err
			}
			title := "Set " + result.Set.Name + " of " + req.Project
			return writeTable(title, componentsTable(result.Set.Components), outPath)
		},
	}
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write the table to a file")
	return cmd
}
