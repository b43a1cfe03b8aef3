package cli

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/matzehuels/surepatch/pkg/component"
	"github.com/matzehuels/surepatch/pkg/errors"
	"github.com/matzehuels/surepatch/pkg/inventory"
)

// versionWidth wraps long version lists (gem list prints several).
const versionWidth = 80

// newTable returns a table writer in the CLI's style.
func newTable(header ...any) table.Writer {
	w := table.NewWriter()
	w.SetStyle(table.StyleLight)
	w.AppendHeader(table.Row(header))
	return w
}

// componentsTable renders components as Name/Version rows.
func componentsTable(list []component.Component) table.Writer {
	w := newTable("Name", "Version")
	w.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: versionWidth, WidthMaxEnforcer: text.WrapSoft},
	})
	for _, c := range list {
		w.AppendRow(table.Row{c.Name, c.Version})
	}
	w.AppendFooter(table.Row{"Total", len(list)})
	return w
}

// platformsTable renders platforms as Name/Description rows.
func platformsTable(platforms []inventory.Platform) table.Writer {
	w := newTable("Name", "Description", "Projects")
	for _, p := range platforms {
		w.AppendRow(table.Row{p.Name, p.Description, len(p.Projects)})
	}
	return w
}

// projectsTable renders the projects of a platform.
func projectsTable(p *inventory.Platform) table.Writer {
	w := newTable("Name", "Description", "Current set")
	for _, q := range p.Projects {
		w.AppendRow(table.Row{q.Name, inventory.DefaultProjectDescription, q.CurrentComponentSet.Name})
	}
	return w
}

// writeTable prints title and w to the console, or writes them to path
// without styling when path is set.
func writeTable(title string, w table.Writer, path string) error {
	if path == "" {
		if title != "" {
			fmt.Fprintln(output, StyleTitle.Render(title))
		}
		fmt.Fprintln(output, w.Render())
		return nil
	}

	body := w.Render() + "\n"
	if title != "" {
		body = title + "\n" + body
	}
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "write %s", path)
	}
	printFile(path)
	return nil
}
