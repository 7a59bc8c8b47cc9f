package ui

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Palette shared by the one-shot commands. Accent hues follow the crystal
// theme so cards and boxes look related to the interactive UI.
var (
	PrimaryColor = lipgloss.Color("#9B5DE5") // amethyst: borders, headers
	SuccessColor = lipgloss.Color("#2EC4B6") // jade
	ErrorColor   = lipgloss.Color("#E63946") // garnet
	WarningColor = lipgloss.Color("#F4A261") // amber: work in progress
	MutedColor   = lipgloss.Color("#8D99AE")
	TextColor    = lipgloss.Color("#F1FAEE")
)

// Output is never narrower than MinTerminalWidth nor wider than
// MaxContentWidth, whatever the terminal reports.
const (
	MinTerminalWidth = 60
	MaxContentWidth  = 100
)

func fg(c lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c)
}

var (
	HeaderTitleStyle   = fg(TextColor).Bold(true).PaddingLeft(2)
	HeaderCommandStyle = fg(MutedColor).PaddingLeft(2)
	ParamKeyStyle      = fg(MutedColor).PaddingLeft(2)
	ParamValueStyle    = fg(TextColor)

	StepCompleteStyle = fg(SuccessColor)
	StepRunningStyle  = fg(WarningColor)
	StepPendingStyle  = fg(MutedColor)
	StepNoteStyle     = fg(MutedColor).Italic(true)

	SuccessTitleStyle = fg(SuccessColor).Bold(true)
	ErrorTitleStyle   = fg(ErrorColor).Bold(true)
	ErrorMessageStyle = fg(ErrorColor)

	// Key column of detail tables; wide enough for "Стихия:".
	ResultKeyStyle   = fg(MutedColor).Width(15)
	ResultValueStyle = fg(TextColor)
)

const (
	MarkerComplete = "✓"
	MarkerRunning  = "●"
	MarkerPending  = "·"
	MarkerFailed   = "✗"
)

func clampWidth(width int) int {
	return max(MinTerminalWidth, min(width, MaxContentWidth))
}

// GetTerminalWidth returns the clamped width of stdout, or the minimum
// width when stdout is not a terminal.
func GetTerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return MinTerminalWidth
	}
	return clampWidth(width)
}

// IsTerminal reports whether stdout is a terminal.
func IsTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// HeaderBorderStyle frames a command header.
func HeaderBorderStyle(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(PrimaryColor).
		Width(width - 2)
}

// ResultBoxStyle frames a success or error result in the given colour.
func ResultBoxStyle(border lipgloss.Color, width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(border).
		Width(width - 2).
		Padding(1, 2)
}

// RenderHorizontalDivider repeats char width times in the primary colour.
func RenderHorizontalDivider(width int, char string) string {
	return fg(PrimaryColor).Render(strings.Repeat(char, max(width, 1)))
}
