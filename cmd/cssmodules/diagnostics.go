package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
)

// Terminal styles for consistent output formatting across subcommands.
// Lipgloss automatically degrades colors based on terminal capabilities.
var (
	styleYellow = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	styleCyan   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	styleGray   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// renderStyle applies a lipgloss style to text when colors are enabled.
func renderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}

// errorColor renders the "error:" prefix in bold red, the same way the
// teacher's linter renders its issue severities with fatih/color.
var errorColor = color.New(color.FgRed, color.Bold)

// reportError prints a load failure to stderr, styled in red when colors
// are enabled. The error's own Error() already carries file:line:column
// context for SyntaxError/ResolutionError/etc., so no further formatting
// is done here.
func reportError(err error, useColors bool) {
	prefix := "error:"
	if useColors {
		prefix = errorColor.Sprint(prefix)
	}
	fmt.Fprintln(os.Stderr, prefix, err.Error())
}
