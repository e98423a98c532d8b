package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/Binkle/DefaultApplication/internal/assoc"
	"github.com/Binkle/DefaultApplication/internal/workflow"
)

// PrintAssociations prints the ordered association table. Extensions are
// cyan, unresolved applications dim.
func PrintAssociations(out io.Writer, list []assoc.Association) {
	if len(list) == 0 {
		fmt.Fprintln(out, "No associations.")
		return
	}

	extWidth := len("EXTENSION")
	nameWidth := len("APPLICATION")
	for _, a := range list {
		if w := len(a.Extension) + 1; w > extWidth {
			extWidth = w
		}
		if w := len(a.ApplicationName); w > nameWidth {
			nameWidth = w
		}
	}

	header := color.New(color.Bold).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	fmt.Fprintf(out, "%s  %s  %s\n",
		header(pad("EXTENSION", extWidth)),
		header(pad("APPLICATION", nameWidth)),
		header("PATH"))
	for _, a := range list {
		name := a.ApplicationName
		if a.ApplicationPath == "" {
			name = dim(pad(name, nameWidth))
		} else {
			name = pad(name, nameWidth)
		}
		fmt.Fprintf(out, "%s  %s  %s\n",
			cyan(pad("."+a.Extension, extWidth)),
			name,
			dim(a.ApplicationPath))
	}
}

// PrintPermission prints the permission state with a status symbol.
func PrintPermission(out io.Writer, state workflow.PermissionState, symbols Symbols) {
	switch state {
	case workflow.PermissionGranted:
		green := color.New(color.FgGreen, color.Bold).SprintFunc()
		fmt.Fprintf(out, "%s Full Disk Access granted\n", green(symbols.Checkmark))
	case workflow.PermissionDenied:
		red := color.New(color.FgRed, color.Bold).SprintFunc()
		fmt.Fprintf(out, "%s Full Disk Access denied\n", red(symbols.Failure))
	default:
		fmt.Fprintln(out, "Checking Full Disk Access...")
	}
}

// PrintFeedback prints a confirmation line with a green checkmark.
func PrintFeedback(out io.Writer, message string, symbols Symbols) {
	if message == "" {
		return
	}
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	fmt.Fprintf(out, "%s %s\n", green(symbols.Checkmark), message)
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
