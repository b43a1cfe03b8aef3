// Package windows parses Windows OS package listings produced by
//
//	powershell "Get-AppxPackage -AllUsers | Select Name, PackageFullName"
//
// Each data row ends with a package full name such as
// Microsoft.WindowsCalculator_10.2103.8.0_x64__8wekyb3d8bbwe. The component
// name is the last dotted segment of the name part ("WindowsCalculator")
// and the version is truncated to major.minor ("10.2103"). All .NET
// framework packages collapse to the single name net_framework.
package windows

import (
	"strings"

	"github.com/matzehuels/surepatch/pkg/component"
	"github.com/matzehuels/surepatch/pkg/errors"
)

// HeaderLines is the number of banner lines printed by the listing command
// before the first package row.
const HeaderLines = 9

// ListCommand enumerates installed Appx packages.
const ListCommand = `powershell "Get-AppxPackage -AllUsers | Select Name, PackageFullName"`

// NetFramework is the name reported for every Microsoft.NET.* package.
const NetFramework = "net_framework"

// AdminHint is attached to listing errors; an unreadable listing is most
// often the result of running without elevated rights.
const AdminHint = "try running surepatch with Administrator rights"

// Lines splits raw listing text into rows, drops carriage returns and
// skips the HeaderLines banner.
func Lines(text string) []string {
	rows := strings.Split(strings.ReplaceAll(text, "\r", ""), "\n")
	if len(rows) <= HeaderLines {
		return nil
	}
	return rows[HeaderLines:]
}

// Parse converts listing rows (banner already removed) into components.
//
// Rows without fields and rows whose last field has no underscore are
// skipped. A version without a minor part means the listing is not what
// the command normally prints; the whole batch is then rejected with
// MALFORMED_LISTING.
func Parse(rows []string) ([]component.Component, error) {
	components := make([]component.Component, 0, len(rows))
	for i, row := range rows {
		fields := strings.Fields(row)
		if len(fields) == 0 {
			continue
		}
		parts := strings.Split(fields[len(fields)-1], "_")
		if len(parts) < 2 {
			continue
		}

		version := strings.Split(parts[1], ".")
		if len(version) < 2 {
			return nil, errors.New(errors.ErrCodeMalformedListing,
				"row %d: unexpected package version %q", i+1, parts[1]).WithHint(AdminHint)
		}

		components = append(components, component.Component{
			Name:    packageName(parts[0]),
			Version: version[0] + "." + version[1],
		})
	}
	return components, nil
}

func packageName(full string) string {
	segments := strings.Split(full, ".")
	if len(segments) >= 3 && segments[1] == "NET" {
		return NetFramework
	}
	return segments[len(segments)-1]
}
