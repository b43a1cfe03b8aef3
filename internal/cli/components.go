package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/surepatch/pkg/pipeline"
	"github.com/matzehuels/surepatch/pkg/runner"
)

// componentsCommand extracts components without contacting the service.
func (c *CLI) componentsCommand() *cobra.Command {
	var (
		src     sourceFlags
		list    bool
		outPath string
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "components",
		Short: "Extract and print components without submitting them",
		Long: `Components runs the same extraction as 'project create' and 'set create'
and prints the result. It needs no configuration and never contacts the
service, which makes it useful for checking a source before submitting it.

Use --list to print every supported target/method/format/input combination.`,
		Example: `  surepatch components --list
  surepatch components --target gemfile_lock --file Gemfile.lock
  surepatch components --target npm --output npm.txt`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				for _, k := range c.newDispatcher(&src, timeout).Keys() {
					fmt.Fprintln(output, k.String())
				}
				return nil
			}
			if err := src.validate(); err != nil {
				return err
			}

			r := pipeline.NewRunner(nil, c.newDispatcher(&src, timeout), c.Logger)
			req := pipeline.Request{Source: src.context()}
			result, err := r.Run(cmd.Context(), pipeline.ActionExtract, req)
			if err != nil {
				return err
			}
			if len(result.Components) == 0 {
				printWarning("No components found")
				return nil
			}
			if err := writeTable("Components", componentsTable(result.Components), outPath); err != nil {
				return err
			}
			printStats(result.Stats.ComponentCount, result.Stats.ExtractTime, 0)
			return nil
		},
	}
	src.bind(cmd)
	cmd.Flags().BoolVarP(&list, "list", "l", false, "list supported sources and exit")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "write the table to a file")
	cmd.Flags().DurationVar(&timeout, "timeout", runner.DefaultTimeout, "timeout for listing commands")
	return cmd
}
