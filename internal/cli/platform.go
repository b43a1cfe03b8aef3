package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/surepatch/pkg/inventory"
	"github.com/matzehuels/surepatch/pkg/pipeline"
)

// platformCommand creates the platform command group.
func (c *CLI) platformCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "platform",
		Aliases: []string{"platforms"},
		Short:   "Create, show, delete or archive platforms",
	}
	cmd.AddCommand(c.platformCreateCommand())
	cmd.AddCommand(c.platformShowCommand())
	cmd.AddCommand(c.platformRemoveCommand(pipeline.ActionDeletePlatform))
	cmd.AddCommand(c.platformRemoveCommand(pipeline.ActionArchivePlatform))
	return cmd
}

func (c *CLI) platformCreateCommand() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "create <platform>",
		Short: "Create a platform",
		Long: `Create a new platform in your organisation. Platform names are unique.

When --description is omitted the platform is described as "` + inventory.DefaultPlatformDescription + `".`,
		Example: `  surepatch platform create web --description "public web servers"`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := pipeline.Request{Platform: args[0], Description: description}
			result, err := c.runAction(cmd.Context(), pipeline.ActionCreatePlatform, req, nil, "Creating platform...")
			if err != nil {
				return err
			}
			printSuccess("Created platform %s", result.Platform.Name)
			printKeyValue("Description", result.Platform.Description)
			printStats(0, 0, result.Stats.SubmitTime)
			printNextStep("Next", appName+" project create "+result.Platform.Name+" <project> --target <target>")
			return nil
		},
	}
	cmd.Flags().StringVarP(&description, "description", "d", "", "platform description")
	return cmd
}

func (c *CLI) platformShowCommand() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show all platforms of your organisation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := c.runAction(cmd.Context(), pipeline.ActionShowPlatforms, pipeline.Request{}, nil, "Fetching platforms...")
			if err != nil {
				return err
			}
			if len(result.Platforms) == 0 {
				printInfo("No platforms yet")
				printNextStep("Create one", appName+" platform create <platform>")
				return nil
			}
			return writeTable("Platforms", platformsTable(result.Platforms), outPath)
		},
	}
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write the table to a file")
	return cmd
}

// platformRemoveCommand creates the delete or archive subcommand.
func (c *CLI) platformRemoveCommand(action string) *cobra.Command {
	use, verb, past, doing := "delete", "Delete", "Deleted", "Deleting"
	if action == pipeline.ActionArchivePlatform {
		use, verb, past, doing = "archive", "Archive", "Archived", "Archiving"
	}

	return &cobra.Command{
		Use:   use + " <platform>",
		Short: verb + " a platform and its projects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := pipeline.Request{Platform: args[0]}
			result, err := c.runAction(cmd.Context(), action, req, nil, doing+" platform...")
			if err != nil {
				return err
			}
			printSuccess("%s platform %s", past, req.Platform)
			printStats(0, 0, result.Stats.SubmitTime)
			return nil
		},
	}
}
