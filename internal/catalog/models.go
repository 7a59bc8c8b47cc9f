package catalog

// Theme selects which of the two apps is shown.
type Theme string

const (
	ThemeEducation Theme = "education"
	ThemeCrystals  Theme = "crystals"
)

// Themes lists the supported themes.
var Themes = []Theme{ThemeEducation, ThemeCrystals}

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool {
	return t == ThemeEducation || t == ThemeCrystals
}

// Difficulty is the difficulty tag of a game.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Легко"
	DifficultyMedium Difficulty = "Средне"
	DifficultyHard   Difficulty = "Сложно"
)

// Catalog is the static reference data for one theme.
// Lists a theme does not use are empty.
type Catalog struct {
	Theme   Theme   `yaml:"theme" json:"theme"`
	Profile Profile `yaml:"profile" json:"profile"`

	// Education theme
	Games        []Game             `yaml:"games,omitempty" json:"games,omitempty"`
	Courses      []Course           `yaml:"courses,omitempty" json:"courses,omitempty"`
	Achievements []Achievement      `yaml:"achievements,omitempty" json:"achievements,omitempty"`
	Leaderboard  []LeaderboardEntry `yaml:"leaderboard,omitempty" json:"leaderboard,omitempty"`
	Shop         []ShopItem         `yaml:"shop,omitempty" json:"shop,omitempty"`

	// Crystals theme
	Crystals     []Crystal     `yaml:"crystals,omitempty" json:"crystals,omitempty"`
	Map          []MapLevel    `yaml:"map,omitempty" json:"map,omitempty"`
	Practices    []Practice    `yaml:"practices,omitempty" json:"practices,omitempty"`
	Affirmations []Affirmation `yaml:"affirmations,omitempty" json:"affirmations,omitempty"`
}

// Profile is the current user's standing.
type Profile struct {
	Name        string `yaml:"name" json:"name"`
	Level       int    `yaml:"level" json:"level"`
	XP          int    `yaml:"xp" json:"xp"`
	XPToNext    int    `yaml:"xp_to_next" json:"xp_to_next"`
	Coins       int    `yaml:"coins" json:"coins"`
	Energy      int    `yaml:"energy,omitempty" json:"energy,omitempty"`
	MaxEnergy   int    `yaml:"max_energy,omitempty" json:"max_energy,omitempty"`
	MemberSince string `yaml:"member_since" json:"member_since"`
	Stats       []Stat `yaml:"stats,omitempty" json:"stats,omitempty"`
}

// Stat is one labelled counter on the profile screen.
type Stat struct {
	Label     string `yaml:"label" json:"label"`
	Value     int    `yaml:"value" json:"value"`
	Highlight bool   `yaml:"highlight,omitempty" json:"highlight,omitempty"`
}

type Game struct {
	ID         int        `yaml:"id" json:"id"`
	Title      string     `yaml:"title" json:"title"`
	XP         int        `yaml:"xp" json:"xp"`
	Difficulty Difficulty `yaml:"difficulty" json:"difficulty"`
	Icon       string     `yaml:"icon" json:"icon"`
}

type Course struct {
	ID       int    `yaml:"id" json:"id"`
	Title    string `yaml:"title" json:"title"`
	Progress int    `yaml:"progress" json:"progress"` // percent complete, 0-100
	Icon     string `yaml:"icon" json:"icon"`
}

type Achievement struct {
	ID          int    `yaml:"id" json:"id"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"desc" json:"desc"`
	Unlocked    bool   `yaml:"unlocked" json:"unlocked"`
	Icon        string `yaml:"icon" json:"icon"`
}

// LeaderboardEntry is one leaderboard row. The row marked You mirrors the
// profile's level and XP.
type LeaderboardEntry struct {
	Rank  int    `yaml:"rank" json:"rank"`
	Name  string `yaml:"name" json:"name"`
	Level int    `yaml:"level" json:"level"`
	XP    int    `yaml:"xp" json:"xp"`
	You   bool   `yaml:"you,omitempty" json:"you,omitempty"`
}

type ShopItem struct {
	ID    int    `yaml:"id" json:"id"`
	Title string `yaml:"title" json:"title"`
	Price int    `yaml:"price" json:"price"`
	Icon  string `yaml:"icon" json:"icon"`
}

// Crystal is a collectible tied to one chakra.
// Unlocked is never read from data; it is derived from LevelRequirement.
type Crystal struct {
	ID               int      `yaml:"id" json:"id"`
	Name             string   `yaml:"name" json:"name"`
	Colors           []string `yaml:"colors" json:"colors"` // gradient, first to last
	Element          string   `yaml:"element" json:"element"`
	Chakra           string   `yaml:"chakra" json:"chakra"`
	Glyph            string   `yaml:"glyph" json:"glyph"`
	Description      string   `yaml:"description" json:"description"` // markdown
	LevelRequirement int      `yaml:"level_requirement" json:"level_requirement"`
	Unlocked         bool     `yaml:"-" json:"unlocked"`
}

// MapLevel is a stop on the crystal path. Positions are percentages of the
// map width and height. Unlocked follows the level's crystal.
type MapLevel struct {
	ID        int     `yaml:"id" json:"id"`
	X         float64 `yaml:"x" json:"x"`
	Y         float64 `yaml:"y" json:"y"`
	CrystalID int     `yaml:"crystal_id" json:"crystal_id"`
	Completed bool    `yaml:"completed" json:"completed"`
	Unlocked  bool    `yaml:"-" json:"unlocked"`
}

type Practice struct {
	ID      int    `yaml:"id" json:"id"`
	Title   string `yaml:"title" json:"title"`
	Minutes int    `yaml:"minutes" json:"minutes"`
	Energy  int    `yaml:"energy" json:"energy"`
	Chakra  string `yaml:"chakra" json:"chakra"`
}

type Affirmation struct {
	ID     int    `yaml:"id" json:"id"`
	Text   string `yaml:"text" json:"text"`
	Chakra string `yaml:"chakra" json:"chakra"`
}
