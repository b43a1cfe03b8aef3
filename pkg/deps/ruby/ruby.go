package ruby

import "strings"

// ListCommand prints locally installed gems as "name (version, ...)".
const ListCommand = "gem list"

// Lines splits text on newlines and drops trailing carriage returns.
func Lines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
