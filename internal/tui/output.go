package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how non-interactive output is rendered.
type OutputMode int

const (
	// OutputModePlain writes unstyled text.
	OutputModePlain OutputMode = iota
	// OutputModeStyled writes lipgloss-styled text.
	OutputModeStyled
	// OutputModeInteractive runs the Bubble Tea program.
	OutputModeInteractive
)

// String returns the string representation of an OutputMode.
func (m OutputMode) String() string {
	switch m {
	case OutputModePlain:
		return "plain"
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// DetectOutputMode picks the richest mode the terminal supports.
// noColor forces plain output; plain terminals (TERM=dumb, NO_COLOR set or
// stdout not a TTY) never get the interactive mode.
func DetectOutputMode(noColor, plain bool) OutputMode {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return OutputModePlain
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) || os.Getenv("TERM") == "dumb" {
		return OutputModePlain
	}
	if plain {
		return OutputModeStyled
	}
	return OutputModeInteractive
}

// TerminalWidth returns the stdout width or defaultWidth when unknown.
func TerminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}
