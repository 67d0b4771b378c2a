package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Color modes accepted by Init.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ColorEnabled decides whether styled output should be produced.
// NO_COLOR (https://no-color.org) only applies in auto mode.
func ColorEnabled(mode string, isTTY, noColorEnv bool) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return isTTY && !noColorEnv
	}
}

// Init configures the global lipgloss color profile for output written to f.
func Init(mode string, f *os.File) {
	_, noColor := os.LookupEnv("NO_COLOR")
	isTTY := f != nil && term.IsTerminal(int(f.Fd()))

	if !ColorEnabled(mode, isTTY, noColor) {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	if mode == ColorAlways && !isTTY {
		lipgloss.SetColorProfile(termenv.ANSI256)
	}
}

// Fail renders a diagnostic line.
func Fail(msg string) string {
	return lipgloss.NewStyle().Foreground(ColorError).Render(SymbolFail) + " " + msg
}

// Success renders a confirmation line.
func Success(msg string) string {
	return lipgloss.NewStyle().Foreground(ColorSuccess).Render(SymbolSuccess) + " " + msg
}

// Warn renders a warning line.
func Warn(msg string) string {
	return lipgloss.NewStyle().Foreground(ColorWarning).Render(SymbolWarning) + " " + msg
}

// Muted renders secondary text such as captured command output.
func Muted(msg string) string {
	return lipgloss.NewStyle().Foreground(ColorMuted).Render(msg)
}

// Command renders a command line about to be reported in debug output.
func Command(cmd string) string {
	return lipgloss.NewStyle().Foreground(ColorInfo).Render(SymbolArrow) + " " + cmd
}
