package ui

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Out is where status lines are written. Colors are disabled automatically
// when it is not a terminal or NO_COLOR is set.
var Out io.Writer = color.Output

var (
	bold   = color.New(color.Bold)
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
)

func PrintHeader(msg string) {
	fmt.Fprintf(Out, "\n%s\n", bold.Sprint(msg))
}

func PrintSuccess(label, detail string) {
	fmt.Fprintf(Out, "  %s %-15s %s\n", green.Sprint("✔"), label, green.Sprint(detail))
}

func PrintError(label, detail string) {
	fmt.Fprintf(Out, "  %s %-15s %s\n", red.Sprint("✘"), label, red.Sprint(detail))
}

func PrintWarning(label, detail string) {
	fmt.Fprintf(Out, "  %s %-15s %s\n", yellow.Sprint("!"), label, yellow.Sprint(detail))
}
