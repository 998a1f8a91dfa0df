package reckon

import (
	_ "embed"
	"strings"
)

//go:embed help.txt
var helpText string

// HelpText returns the command reference shown for the help command.
func HelpText() string {
	return strings.TrimRight(helpText, "\n")
}
