package viewstate

import "github.com/muurk/learnquest/internal/catalog"

// Section is one tab of the UI.
type Section string

const (
	SectionHome         Section = "home"
	SectionGames        Section = "games"
	SectionCourses      Section = "courses"
	SectionAchievements Section = "achievements"
	SectionLeaderboard  Section = "leaderboard"
	SectionShop         Section = "shop"
	SectionProfile      Section = "profile"

	SectionMap          Section = "map"
	SectionCollection   Section = "collection"
	SectionPractices    Section = "practices"
	SectionAffirmations Section = "affirmations"
)

var educationSections = []Section{
	SectionHome,
	SectionGames,
	SectionCourses,
	SectionAchievements,
	SectionLeaderboard,
	SectionShop,
	SectionProfile,
}

var crystalSections = []Section{
	SectionMap,
	SectionCollection,
	SectionPractices,
	SectionAffirmations,
	SectionProfile,
}

var sectionLabels = map[Section]string{
	SectionHome:         "Главная",
	SectionGames:        "Игры",
	SectionCourses:      "Курсы",
	SectionAchievements: "Достижения",
	SectionLeaderboard:  "Рейтинг",
	SectionShop:         "Магазин",
	SectionProfile:      "Профиль",
	SectionMap:          "Карта",
	SectionCollection:   "Коллекция",
	SectionPractices:    "Практики",
	SectionAffirmations: "Аффирмации",
}

// Valid reports whether s is in the closed set of sections.
func (s Section) Valid() bool {
	_, ok := sectionLabels[s]
	return ok
}

// Label is the tab caption.
func (s Section) Label() string {
	if l, ok := sectionLabels[s]; ok {
		return l
	}
	return string(s)
}

// SectionsFor returns the tabs of theme in display order.
func SectionsFor(theme catalog.Theme) []Section {
	if theme == catalog.ThemeCrystals {
		return crystalSections
	}
	return educationSections
}

// DefaultSection is the tab a theme opens on.
func DefaultSection(theme catalog.Theme) Section {
	return SectionsFor(theme)[0]
}

// Offers reports whether theme has a tab for s.
func Offers(theme catalog.Theme, s Section) bool {
	for _, candidate := range SectionsFor(theme) {
		if candidate == s {
			return true
		}
	}
	return false
}
