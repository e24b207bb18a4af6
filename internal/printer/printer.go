// Package printer renders styled console output for relver. Diagnostics go
// to stderr so that the machine-readable stdout contract stays intact.
package printer

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Style definitions for consistent console output across the application.
var (
	faintStyle   = lipgloss.NewStyle().Faint(true)
	boldStyle    = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // Green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // Red
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // Yellow
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // Cyan
)

// noColor disables styling. It starts from the environment (NO_COLOR,
// non-TTY stderr) and can be forced on via SetNoColor.
var noColor = detectNoColor()

// SetNoColor enables or disables styled output.
func SetNoColor(disable bool) {
	if disable {
		noColor = true
		return
	}
	noColor = detectNoColor()
}

// detectNoColor reports whether styling should be off by default:
// NO_COLOR is set, or stderr is not a terminal (pipe, CI log, etc.).
func detectNoColor() bool {
	if termenv.EnvNoColor() {
		return true
	}
	return !term.IsTerminal(int(os.Stderr.Fd()))
}

func render(style lipgloss.Style, text string) string {
	if noColor {
		return text
	}
	return style.Render(text)
}

// Render functions return styled strings without printing.

// Faint returns text with faint styling.
func Faint(text string) string {
	return render(faintStyle, text)
}

// Bold returns text with bold styling.
func Bold(text string) string {
	return render(boldStyle, text)
}

// Success returns text with success (green) styling.
func Success(text string) string {
	return render(successStyle, text)
}

// Error returns text with error (red) styling.
func Error(text string) string {
	return render(errorStyle, text)
}

// Warning returns text with warning (yellow) styling.
func Warning(text string) string {
	return render(warningStyle, text)
}

// Info returns text with info (cyan) styling.
func Info(text string) string {
	return render(infoStyle, text)
}

// Print functions write styled text with a newline. Errors and warnings
// go to stderr; informational output goes to stdout.

// PrintFaint prints text with faint styling.
func PrintFaint(text string) {
	fmt.Println(Faint(text))
}

// PrintBold prints text with bold styling.
func PrintBold(text string) {
	fmt.Println(Bold(text))
}

// PrintSuccess prints text with success (green) styling.
func PrintSuccess(text string) {
	fmt.Println(Success(text))
}

// PrintError prints text with error (red) styling to stderr.
func PrintError(text string) {
	fmt.Fprintln(os.Stderr, Error(text))
}

// PrintWarning prints text with warning (yellow) styling to stderr.
func PrintWarning(text string) {
	fmt.Fprintln(os.Stderr, Warning(text))
}

// PrintInfo prints text with info (cyan) styling.
func PrintInfo(text string) {
	fmt.Println(Info(text))
}
