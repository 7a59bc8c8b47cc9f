package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/learnquest/internal/catalog"
	"github.com/muurk/learnquest/internal/version"
)

// Application branding
const (
	AppName = "LEARNQUEST"
)

// Layout constants
const (
	DefaultWidth  = 80 // used until the first tea.WindowSizeMsg arrives
	DefaultHeight = 24
	ModalWidth    = 64
)

// Palette is the colour set of one theme.
type Palette struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color
}

var palettes = map[catalog.Theme]Palette{
	catalog.ThemeEducation: {
		Primary:   lipgloss.Color("#7D56F4"), // Purple
		Secondary: lipgloss.Color("#43BF6D"), // Green
		Accent:    lipgloss.Color("#FFD166"), // Gold
	},
	catalog.ThemeCrystals: {
		Primary:   lipgloss.Color("#9B5DE5"), // Violet
		Secondary: lipgloss.Color("#00BBF9"), // Cyan
		Accent:    lipgloss.Color("#F15BB5"), // Pink
	},
}

// PaletteFor returns the palette of theme.
func PaletteFor(theme catalog.Theme) Palette {
	if p, ok := palettes[theme]; ok {
		return p
	}
	return palettes[catalog.ThemeEducation]
}

// Neutral colours
var (
	TextColor    = lipgloss.Color("#FFFFFF")
	SubtleColor  = lipgloss.Color("#626262")
	WarningColor = lipgloss.Color("#FFA500")
	ErrorColor   = lipgloss.Color("#FF5555")
	SuccessColor = lipgloss.Color("#43BF6D")
)

var (
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Italic(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	ListItemStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	LockedStyle = lipgloss.NewStyle().
			Foreground(SubtleColor).
			Faint(true)

	CoinStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD166")).
			Bold(true)
)

var difficultyColors = map[catalog.Difficulty]lipgloss.Color{
	catalog.DifficultyEasy:   SuccessColor,
	catalog.DifficultyMedium: WarningColor,
	catalog.DifficultyHard:   ErrorColor,
}

// RenderDifficulty renders a difficulty tag in its colour.
func RenderDifficulty(d catalog.Difficulty) string {
	c, ok := difficultyColors[d]
	if !ok {
		c = SubtleColor
	}
	return lipgloss.NewStyle().Foreground(c).Render(string(d))
}

// RenderSwatch draws one block per colour of a crystal's gradient.
func RenderSwatch(colors []string) string {
	var b strings.Builder
	for _, c := range colors {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render("██"))
	}
	return b.String()
}

// RenderGlyph renders a crystal glyph in the first colour of its gradient.
func RenderGlyph(cr *catalog.Crystal) string {
	if len(cr.Colors) == 0 {
		return cr.Glyph
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(cr.Colors[0])).Bold(true).Render(cr.Glyph)
}

// RenderCursor renders a list row with a selection marker.
func RenderCursor(text string, selected bool, p Palette) string {
	if selected {
		return lipgloss.NewStyle().Foreground(p.Secondary).Bold(true).Render("→ " + text)
	}
	return ListItemStyle.Render(text)
}

// RenderTitle renders a section title.
func RenderTitle(text string, p Palette) string {
	return lipgloss.NewStyle().Foreground(p.Primary).Bold(true).MarginBottom(1).Render(text)
}

// RenderTabs renders the tab bar with the active tab highlighted.
func RenderTabs(labels []string, active int, p Palette) string {
	activeStyle := lipgloss.NewStyle().
		Foreground(TextColor).
		Background(p.Primary).
		Bold(true).
		Padding(0, 1)
	idleStyle := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Padding(0, 1)

	tabs := make([]string, len(labels))
	for i, l := range labels {
		if i == active {
			tabs[i] = activeStyle.Render(l)
		} else {
			tabs[i] = idleStyle.Render(l)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// BuildHeaderContent shows the app name, version and the profile summary.
func BuildHeaderContent(summary string, p Palette) string {
	left := lipgloss.NewStyle().
		Foreground(p.Primary).
		Bold(true).
		Render(AppName + " v" + version.Version)

	right := lipgloss.NewStyle().
		Foreground(SubtleColor).
		Render(summary)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, "  ", right)
}

// RenderApplicationContainer wraps every screen: header, content, and a
// footer with help text inside a border filling the terminal.
func RenderApplicationContainer(header, content, footer string, p Palette, width, height int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	inner := width - 4
	if inner < 10 {
		inner = 10
	}

	styledHeader := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Bottom: "─"}).
		BorderForeground(p.Primary).
		Width(inner).
		Padding(0, 1).
		Render(header)

	styledFooter := lipgloss.NewStyle().
		BorderStyle(lipgloss.Border{Top: "─"}).
		BorderForeground(p.Primary).
		Width(inner).
		Padding(0, 1).
		Render(lipgloss.NewStyle().Foreground(SubtleColor).Render(footer))

	styledContent := lipgloss.NewStyle().
		Width(inner).
		Padding(0, 1).
		Render(content)

	bordered := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(p.Primary).
		Width(width - 2).
		Height(height - 2).
		AlignVertical(lipgloss.Top).
		Render(lipgloss.JoinVertical(lipgloss.Left, styledHeader, styledContent, styledFooter))

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, bordered)
}

// RenderModal centres modal content over a dimmed background.
func RenderModal(modal string, width, height int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		modal,
		lipgloss.WithWhitespaceChars("░"),
		lipgloss.WithWhitespaceForeground(lipgloss.Color("240")),
	)
}

// ModalStyle is the box around a modal.
func ModalStyle(border lipgloss.Color, width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(1, 2).
		Width(SafeModalWidth(ModalWidth, width))
}

// SafeModalWidth keeps a modal inside the terminal.
func SafeModalWidth(requested, terminalWidth int) int {
	if terminalWidth <= 0 {
		terminalWidth = DefaultWidth
	}
	max := terminalWidth - 4
	if max < 30 {
		max = 30
	}
	if requested < max {
		return requested
	}
	return max
}
