package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/learnquest/internal/catalog"
	"github.com/muurk/learnquest/internal/meter"
	"github.com/muurk/learnquest/internal/viewstate"
)

// View renders the current screen
func (m AppModel) View() string {
	if m.ShowingHelp {
		return RenderModal(m.renderHelpModalContent(), m.Width, m.Height)
	}
	switch m.State.Modal() {
	case viewstate.ModalCrystal:
		return RenderModal(m.renderCrystalModalContent(), m.Width, m.Height)
	case viewstate.ModalCelebration:
		return RenderModal(m.renderCelebrationModalContent(), m.Width, m.Height)
	}

	return RenderApplicationContainer(
		BuildHeaderContent(m.Catalog.Summary(), m.palette),
		m.buildContent(),
		m.Help.View(m.Keys),
		m.palette,
		m.Width,
		m.Height,
	)
}

func (m AppModel) buildContent() string {
	tabs := m.sections()
	labels := make([]string, len(tabs))
	for i, s := range tabs {
		labels[i] = fmt.Sprintf("%d %s", i+1, s.Label())
	}

	var body string
	switch m.State.Section {
	case viewstate.SectionHome:
		body = m.renderHome()
	case viewstate.SectionGames:
		body = m.renderGames()
	case viewstate.SectionCourses:
		body = m.renderCourses()
	case viewstate.SectionAchievements:
		body = m.renderAchievements()
	case viewstate.SectionLeaderboard:
		body = m.renderLeaderboard()
	case viewstate.SectionShop:
		body = m.renderShop()
	case viewstate.SectionProfile:
		body = m.renderProfile()
	case viewstate.SectionMap:
		body = m.renderMap()
	case viewstate.SectionCollection:
		body = m.renderCollection()
	case viewstate.SectionPractices:
		body = m.renderPractices()
	case viewstate.SectionAffirmations:
		body = m.renderAffirmations()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		RenderTabs(labels, m.activeTab(), m.palette),
		"",
		body,
	)
}

func (m AppModel) xpLine() string {
	p := m.Catalog.Profile
	return fmt.Sprintf("Уровень %d  %s  %d / %d XP",
		p.Level,
		m.XPBar.ViewAs(meter.Fraction(float64(p.XP), float64(p.XPToNext))),
		p.XP, p.XPToNext)
}

func (m AppModel) energyLine() string {
	p := m.Catalog.Profile
	return fmt.Sprintf("Энергия    %s  %d / %d",
		m.EnergyBar.ViewAs(meter.Fraction(float64(p.Energy), float64(p.MaxEnergy))),
		p.Energy, p.MaxEnergy)
}

func (m AppModel) renderHome() string {
	c := m.Catalog
	var b strings.Builder

	b.WriteString(RenderTitle("Привет, "+c.Profile.Name+"!", m.palette))
	b.WriteString("\n")
	b.WriteString(m.xpLine())
	b.WriteString("\n\n")

	var stats []string
	for _, s := range c.Profile.Stats {
		style := lipgloss.NewStyle().Bold(true)
		if s.Highlight {
			style = style.Foreground(m.palette.Accent)
		}
		stats = append(stats, style.Render(fmt.Sprint(s.Value))+" "+MutedStyle.Render(s.Label))
	}
	b.WriteString(strings.Join(stats, "   "))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(m.palette.Secondary).Bold(true).Render("Популярные игры"))
	b.WriteString("\n")
	for _, g := range c.FeaturedGames(2) {
		b.WriteString(ListItemStyle.Render(fmt.Sprintf("%s %s  +%d XP", g.Icon, g.Title, g.XP)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().Foreground(m.palette.Secondary).Bold(true).Render("Продолжить обучение"))
	b.WriteString("\n")
	for _, course := range c.FeaturedCourses(2) {
		b.WriteString(ListItemStyle.Render(fmt.Sprintf("%s %-28s %s", course.Icon, course.Title, m.RowBar.ViewAs(meter.Fraction(float64(course.Progress), 100)))))
		b.WriteString("\n")
	}

	return b.String()
}

func (m AppModel) renderGames() string {
	var b strings.Builder
	b.WriteString(RenderTitle("Все игры", m.palette))
	b.WriteString("\n")
	for i, g := range m.Catalog.Games {
		row := fmt.Sprintf("%s %-26s %s  %s", g.Icon, g.Title, RenderDifficulty(g.Difficulty), CoinStyle.Render(fmt.Sprintf("+%d XP", g.XP)))
		b.WriteString(RenderCursor(row, i == m.Cursor, m.palette))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render("enter: сыграть"))
	return b.String()
}

func (m AppModel) renderCourses() string {
	var b strings.Builder
	b.WriteString(RenderTitle("Мои курсы", m.palette))
	b.WriteString("\n")
	for i, course := range m.Catalog.Courses {
		row := fmt.Sprintf("%s %-28s %s", course.Icon, course.Title, m.RowBar.ViewAs(meter.Fraction(float64(course.Progress), 100)))
		b.WriteString(RenderCursor(row, i == m.Cursor, m.palette))
		b.WriteString("\n")
	}
	return b.String()
}

func (m AppModel) renderAchievements() string {
	c := m.Catalog
	var b strings.Builder
	b.WriteString(RenderTitle(fmt.Sprintf("Достижения %d / %d", len(c.UnlockedAchievements()), len(c.Achievements)), m.palette))
	b.WriteString("\n")
	for i, a := range c.Achievements {
		var row string
		if a.Unlocked {
			row = fmt.Sprintf("%s %s  %s", a.Icon, a.Title, MutedStyle.Render(a.Description))
		} else {
			row = LockedStyle.Render(fmt.Sprintf("🔒 %s  %s", a.Title, a.Description))
		}
		b.WriteString(RenderCursor(row, i == m.Cursor, m.palette))
		b.WriteString("\n")
	}
	return b.String()
}

func (m AppModel) renderLeaderboard() string {
	var b strings.Builder
	b.WriteString(RenderTitle("Рейтинг", m.palette))
	b.WriteString("\n")
	you := lipgloss.NewStyle().Foreground(m.palette.Accent).Bold(true)
	for i, e := range m.Catalog.Leaderboard {
		row := fmt.Sprintf("#%-3d %-16s ур. %-3d %6d XP", e.Rank, e.Name, e.Level, e.XP)
		if e.You {
			row = you.Render(row)
		}
		b.WriteString(RenderCursor(row, i == m.Cursor, m.palette))
		b.WriteString("\n")
	}
	return b.String()
}

func (m AppModel) renderShop() string {
	var b strings.Builder
	b.WriteString(RenderTitle("Магазин", m.palette))
	b.WriteString("\n")
	b.WriteString("Баланс: " + CoinStyle.Render(fmt.Sprintf("%d 🪙", m.Catalog.Profile.Coins)))
	b.WriteString("\n\n")
	for i, item := range m.Catalog.Shop {
		price := CoinStyle.Render(fmt.Sprintf("%d 🪙", item.Price))
		if item.Price > m.Catalog.Profile.Coins {
			price = LockedStyle.Render(fmt.Sprintf("%d 🪙", item.Price))
		}
		row := fmt.Sprintf("%s %-24s %s", item.Icon, item.Title, price)
		b.WriteString(RenderCursor(row, i == m.Cursor, m.palette))
		b.WriteString("\n")
	}
	return b.String()
}

func (m AppModel) renderProfile() string {
	c := m.Catalog
	p := c.Profile
	var b strings.Builder

	b.WriteString(RenderTitle(p.Name, m.palette))
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render("Участник с " + p.MemberSince))
	b.WriteString("\n\n")
	b.WriteString(m.xpLine())
	b.WriteString("\n")
	if c.Theme == catalog.ThemeCrystals {
		b.WriteString(m.energyLine())
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("Кристаллов %d / %d", len(c.UnlockedCrystals()), len(c.Crystals)))
		b.WriteString("\n")
		if next := c.NextCrystal(); next != nil {
			b.WriteString(MutedStyle.Render(fmt.Sprintf("Следующий: %s на уровне %d", next.Name, next.LevelRequirement)))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(fmt.Sprintf("Достижений %d / %d", len(c.UnlockedAchievements()), len(c.Achievements)))
		b.WriteString("\n")
	}
	b.WriteString("Монет " + CoinStyle.Render(fmt.Sprint(p.Coins)))
	b.WriteString("\n\n")

	for _, s := range p.Stats {
		b.WriteString(fmt.Sprintf("%-26s %d\n", s.Label, s.Value))
	}
	return b.String()
}

// Map grid size in cells.
const (
	mapCols = 44
	mapRows = 9
)

func (m AppModel) renderMap() string {
	c := m.Catalog
	var b strings.Builder
	b.WriteString(RenderTitle("Карта кристаллов", m.palette))
	b.WriteString("\n")
	b.WriteString(m.energyLine())
	b.WriteString("\n\n")
	b.WriteString(renderMapGrid(c.Map, m.Cursor, m.palette))
	b.WriteString("\n\n")

	for i, lvl := range c.Map {
		cr := c.CrystalByID(lvl.CrystalID)
		name, required := "?", 0
		if cr != nil {
			name, required = cr.Name+" · "+cr.Chakra, cr.LevelRequirement
		}
		var row string
		switch {
		case lvl.Completed:
			row = fmt.Sprintf("✓ %d  %s", lvl.ID, name)
		case lvl.Unlocked:
			row = fmt.Sprintf("● %d  %s", lvl.ID, name)
		default:
			row = LockedStyle.Render(fmt.Sprintf("🔒 %d  %s (уровень %d)", lvl.ID, name, required))
		}
		b.WriteString(RenderCursor(row, i == m.Cursor, m.palette))
		b.WriteString("\n")
	}
	return b.String()
}

// renderMapGrid places each level's number at its percentage position.
func renderMapGrid(levels []catalog.MapLevel, cursor int, p Palette) string {
	grid := make([][]string, mapRows)
	for r := range grid {
		grid[r] = make([]string, mapCols)
		for c := range grid[r] {
			grid[r][c] = MutedStyle.Render("·")
		}
	}

	for i, lvl := range levels {
		col := int(lvl.X / 100 * float64(mapCols-1))
		row := int(lvl.Y / 100 * float64(mapRows-1))
		if col < 0 || col >= mapCols || row < 0 || row >= mapRows {
			continue
		}
		style := LockedStyle
		switch {
		case i == cursor:
			style = lipgloss.NewStyle().Foreground(p.Accent).Bold(true)
		case lvl.Completed:
			style = lipgloss.NewStyle().Foreground(SuccessColor)
		case lvl.Unlocked:
			style = lipgloss.NewStyle().Foreground(p.Secondary)
		}
		grid[row][col] = style.Render(fmt.Sprint(lvl.ID % 10))
	}

	lines := make([]string, mapRows)
	for r := range grid {
		lines[r] = strings.Join(grid[r], "")
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Render(strings.Join(lines, "\n"))
}

func (m AppModel) renderCollection() string {
	c := m.Catalog
	var b strings.Builder
	b.WriteString(RenderTitle(fmt.Sprintf("Коллекция %d / %d", len(c.UnlockedCrystals()), len(c.Crystals)), m.palette))
	b.WriteString("\n")
	for i := range c.Crystals {
		cr := &c.Crystals[i]
		var row string
		if cr.Unlocked {
			row = fmt.Sprintf("%s %s %-16s %s", RenderGlyph(cr), RenderSwatch(cr.Colors), cr.Name, MutedStyle.Render(cr.Chakra+" · "+cr.Element))
		} else {
			row = LockedStyle.Render(fmt.Sprintf("🔒 %-20s откроется на уровне %d", cr.Name, cr.LevelRequirement))
		}
		b.WriteString(RenderCursor(row, i == m.Cursor, m.palette))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render("enter: открыть кристалл и услышать его тон"))
	return b.String()
}

func (m AppModel) renderPractices() string {
	var b strings.Builder
	b.WriteString(RenderTitle("Практики", m.palette))
	b.WriteString("\n")
	for i, pr := range m.Catalog.Practices {
		row := fmt.Sprintf("%-30s %3d мин  +%d энергии  %s", pr.Title, pr.Minutes, pr.Energy, MutedStyle.Render(pr.Chakra))
		b.WriteString(RenderCursor(row, i == m.Cursor, m.palette))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(SubtitleStyle.Render("enter: завершить практику"))
	return b.String()
}

func (m AppModel) renderAffirmations() string {
	var b strings.Builder
	b.WriteString(RenderTitle("Аффирмации", m.palette))
	b.WriteString("\n")
	quote := lipgloss.NewStyle().Italic(true)
	for i, a := range m.Catalog.Affirmations {
		row := quote.Render("«"+a.Text+"»") + "  " + MutedStyle.Render(a.Chakra)
		b.WriteString(RenderCursor(row, i == m.Cursor, m.palette))
		b.WriteString("\n")
	}
	return b.String()
}
