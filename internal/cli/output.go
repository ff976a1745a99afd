package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

func printSuccess(w io.Writer, message string) {
	green := color.New(color.FgGreen, color.Bold)
	green.Fprintf(w, "✓ %s\n", message)
}

func printError(w io.Writer, message string) {
	red := color.New(color.FgRed, color.Bold)
	red.Fprintf(w, "✗ %s\n", message)
}

func printInfo(w io.Writer, message string) {
	yellow := color.New(color.FgYellow)
	yellow.Fprintf(w, "ℹ %s\n", message)
}

func printWarning(w io.Writer, message string) {
	magenta := color.New(color.FgMagenta)
	magenta.Fprintf(w, "! %s\n", message)
}

// PrintFatal reports an error that ends the process.
func PrintFatal(w io.Writer, err error) {
	printError(w, fmt.Sprintf("Error: %v", err))
}
