package catalog

import (
	"fmt"
	"strings"

	"github.com/muurk/learnquest/internal/meter"
)

// Summary returns a one-line summary of the profile
func (c *Catalog) Summary() string {
	p := c.Profile
	s := fmt.Sprintf("Уровень %d • %d / %d XP • %d монет", p.Level, p.XP, p.XPToNext, p.Coins)
	if p.MaxEnergy > 0 {
		s += fmt.Sprintf(" • энергия %d / %d", p.Energy, p.MaxEnergy)
	}
	return s
}

// FormatProfile returns the profile card and statistics
func (c *Catalog) FormatProfile() string {
	var b strings.Builder
	p := c.Profile

	b.WriteString("=== Профиль ===\n")
	b.WriteString(fmt.Sprintf("%s #%d, участник с %s\n", p.Name, p.Level, p.MemberSince))
	b.WriteString(fmt.Sprintf("Уровень:     %d (%.0f%% до следующего)\n", p.Level, meter.Percent(float64(p.XP), float64(p.XPToNext))))
	b.WriteString(fmt.Sprintf("Монет:       %d\n", p.Coins))
	if c.Theme == ThemeEducation {
		b.WriteString(fmt.Sprintf("Достижений:  %d\n", len(c.UnlockedAchievements())))
	} else {
		b.WriteString(fmt.Sprintf("Кристаллов:  %d / %d\n", len(c.UnlockedCrystals()), len(c.Crystals)))
		b.WriteString(fmt.Sprintf("Энергия:     %d / %d\n", p.Energy, p.MaxEnergy))
	}
	for _, s := range p.Stats {
		b.WriteString(fmt.Sprintf("%-24s %d\n", s.Label+":", s.Value))
	}

	return b.String()
}

// FormatGames lists every game with its reward
func (c *Catalog) FormatGames() string {
	return formatGames("=== Все игры ===\n", c.Games)
}

func formatGames(title string, games []Game) string {
	var b strings.Builder
	b.WriteString(title)
	for _, g := range games {
		b.WriteString(fmt.Sprintf("%s %-24s %-7s +%d XP\n", g.Icon, g.Title, g.Difficulty, g.XP))
	}
	return b.String()
}

// FormatCourses lists every course with its completion
func (c *Catalog) FormatCourses() string {
	return formatCourses("=== Мои курсы ===\n", c.Courses)
}

func formatCourses(title string, courses []Course) string {
	var b strings.Builder
	b.WriteString(title)
	for _, course := range courses {
		b.WriteString(fmt.Sprintf("%s %-26s %3d%% завершено\n", course.Icon, course.Title, course.Progress))
	}
	return b.String()
}

// FormatHome returns the home screen: featured games and courses
func (c *Catalog) FormatHome() string {
	var b strings.Builder
	b.WriteString(formatGames("=== Популярные игры ===\n", c.FeaturedGames(2)))
	b.WriteString("\n")
	b.WriteString(formatCourses("=== Продолжить обучение ===\n", c.FeaturedCourses(2)))
	return b.String()
}

// FormatAchievements lists achievements, marking earned ones
func (c *Catalog) FormatAchievements() string {
	var b strings.Builder
	b.WriteString("=== Достижения ===\n")
	for _, a := range c.Achievements {
		mark := " "
		if a.Unlocked {
			mark = "✓"
		}
		b.WriteString(fmt.Sprintf("[%s] %s %s: %s\n", mark, a.Icon, a.Title, a.Description))
	}
	return b.String()
}

// FormatLeaderboard lists the leaderboard rows
func (c *Catalog) FormatLeaderboard() string {
	var b strings.Builder
	b.WriteString("=== Таблица лидеров ===\n")
	for _, e := range c.Leaderboard {
		crown := ""
		if e.Rank <= 3 {
			crown = " 👑"
		}
		b.WriteString(fmt.Sprintf("%2d. %-12s Уровень %d • %d XP%s\n", e.Rank, e.Name, e.Level, e.XP, crown))
	}
	return b.String()
}

// FormatShop lists shop items with prices
func (c *Catalog) FormatShop() string {
	var b strings.Builder
	b.WriteString("=== Магазин ===\n")
	for _, item := range c.Shop {
		b.WriteString(fmt.Sprintf("%s %-20s %d монет\n", item.Icon, item.Title, item.Price))
	}
	return b.String()
}

// FormatCrystals lists the collection with lock state
func (c *Catalog) FormatCrystals() string {
	var b strings.Builder
	b.WriteString("=== Коллекция кристаллов ===\n")
	for _, cr := range c.Crystals {
		state := "открыт"
		if !cr.Unlocked {
			state = fmt.Sprintf("с %d уровня", cr.LevelRequirement)
		}
		b.WriteString(fmt.Sprintf("%s %-16s %-12s %-8s %s\n", cr.Glyph, cr.Name, cr.Chakra, cr.Element, state))
	}
	return b.String()
}

// FormatMap lists the path stops in order
func (c *Catalog) FormatMap() string {
	var b strings.Builder
	b.WriteString("=== Карта ===\n")
	for _, lvl := range c.Map {
		state := "закрыт"
		switch {
		case lvl.Completed:
			state = "пройден"
		case lvl.Unlocked:
			state = "открыт"
		}
		glyph := "?"
		if cr := c.CrystalByID(lvl.CrystalID); cr != nil {
			glyph = cr.Glyph
		}
		b.WriteString(fmt.Sprintf("%d. %s %s\n", lvl.ID, glyph, state))
	}
	return b.String()
}

// FormatPractices lists practices with duration and reward
func (c *Catalog) FormatPractices() string {
	var b strings.Builder
	b.WriteString("=== Практики ===\n")
	for _, p := range c.Practices {
		b.WriteString(fmt.Sprintf("%-20s %2d мин  +%d энергии  (%s)\n", p.Title, p.Minutes, p.Energy, p.Chakra))
	}
	return b.String()
}

// FormatAffirmations lists affirmations by chakra
func (c *Catalog) FormatAffirmations() string {
	var b strings.Builder
	b.WriteString("=== Аффирмации ===\n")
	for _, a := range c.Affirmations {
		b.WriteString(fmt.Sprintf("%-12s %s\n", a.Chakra, a.Text))
	}
	return b.String()
}
