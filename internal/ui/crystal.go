package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/learnquest/internal/catalog"
	"github.com/muurk/learnquest/internal/tone"
)

// CrystalCard renders a crystal with its details and markdown description.
type CrystalCard struct {
	Crystal     *catalog.Crystal
	Affirmation *catalog.Affirmation // optional
	Width       int
	Style       string // glamour style; empty means StyleDark
}

// Render returns the styled card
func (c CrystalCard) Render() string {
	cr := c.Crystal
	width := clampWidth(c.Width)
	style := c.Style
	if style == "" {
		style = StyleDark
	}

	border := PrimaryColor
	if len(cr.Colors) > 0 {
		border = lipgloss.Color(cr.Colors[0])
	}

	var swatch strings.Builder
	for _, col := range cr.Colors {
		swatch.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(col)).Render("██"))
	}

	status := StepCompleteStyle.Render("открыт")
	if !cr.Unlocked {
		status = StepPendingStyle.Render(fmt.Sprintf("откроется на уровне %d", cr.LevelRequirement))
	}

	title := lipgloss.NewStyle().Foreground(border).Bold(true).Render(cr.Glyph + "  " + cr.Name)
	details := renderParams([]Param{
		{Key: "Чакра", Value: cr.Chakra},
		{Key: "Стихия", Value: cr.Element},
		{Key: "Частота", Value: fmt.Sprintf("%.1f Гц", tone.FrequencyFor(cr.Chakra))},
		{Key: "Цвета", Value: swatch.String()},
		{Key: "Статус", Value: status},
	}, ResultKeyStyle, ResultValueStyle)

	parts := []string{title, "", details}
	if md := RenderMarkdownStyle(cr.Description, width-8, style); md != "" {
		parts = append(parts, "", md)
	}
	if c.Affirmation != nil {
		parts = append(parts, "", StepNoteStyle.Render("«"+c.Affirmation.Text+"»"))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(width-2).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// String implements fmt.Stringer
func (c CrystalCard) String() string {
	return c.Render()
}
