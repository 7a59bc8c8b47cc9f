package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/learnquest/internal/tone"
)

func (m AppModel) renderCrystalModalContent() string {
	cr := m.State.Selected
	c := m.Catalog

	border := m.palette.Primary
	if len(cr.Colors) > 0 {
		border = lipgloss.Color(cr.Colors[0])
	}

	title := lipgloss.NewStyle().Bold(true).Render(RenderGlyph(cr) + "  " + cr.Name)

	label := MutedStyle.Width(12)
	details := lipgloss.JoinVertical(lipgloss.Left,
		label.Render("Чакра")+cr.Chakra,
		label.Render("Стихия")+cr.Element,
		label.Render("Частота")+fmt.Sprintf("%.1f Гц", tone.FrequencyFor(cr.Chakra)),
		label.Render("Цвета")+RenderSwatch(cr.Colors),
	)

	parts := []string{title, "", details, "", m.detail}
	if a := c.AffirmationFor(cr.Chakra); a != nil {
		parts = append(parts, lipgloss.NewStyle().Italic(true).Foreground(m.palette.Secondary).Render("«"+a.Text+"»"), "")
	}
	parts = append(parts, SubtitleStyle.Render("esc: закрыть"))

	return ModalStyle(border, m.Width).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m AppModel) renderCelebrationModalContent() string {
	title := lipgloss.NewStyle().
		Foreground(m.palette.Accent).
		Bold(true).
		Render("🎉  Отлично!  🎉")

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		"Вы получили награду. Так держать!",
		"",
		SubtitleStyle.Render("esc: закрыть"),
	)

	return ModalStyle(m.palette.Accent, m.Width).
		Align(lipgloss.Center).
		Render(content)
}

func (m AppModel) renderHelpModalContent() string {
	title := lipgloss.NewStyle().
		Foreground(m.palette.Primary).
		Bold(true).
		Render("СПРАВКА")

	full := m.Help
	full.ShowAll = true

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		full.View(m.Keys),
		"",
		"Press any key to close this help screen",
	)

	return ModalStyle(m.palette.Primary, m.Width).Render(content)
}
