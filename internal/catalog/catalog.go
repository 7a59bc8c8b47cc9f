// Package catalog holds the static reference data shown by learnquest:
// games, courses, achievements, the leaderboard and shop for the education
// theme, and crystals, the map, practices and affirmations for the crystals
// theme.
//
// Catalogs are embedded YAML parsed once at start-up. Unlock flags on
// crystals and map levels are derived from the profile level rather than
// read from data, so the two can never disagree.
package catalog

import (
	"embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Load returns the built-in catalog for theme.
func Load(theme Theme) (*Catalog, error) {
	if !theme.Valid() {
		return nil, NewValidationError("theme", fmt.Sprintf("unknown theme %q", theme))
	}
	data, err := dataFS.ReadFile("data/" + string(theme) + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read built-in catalog: %w", err)
	}
	return parseFor(theme, data)
}

// LoadFile reads a replacement catalog for theme from path.
func LoadFile(theme Theme, path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return parseFor(theme, data)
}

func parseFor(theme Theme, data []byte) (*Catalog, error) {
	c, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if c.Theme != theme {
		return nil, NewValidationError("theme", fmt.Sprintf("catalog is for theme %q, want %q", c.Theme, theme))
	}
	return c, nil
}

// Parse decodes a YAML catalog, fills in derived fields and validates it.
// All validation failures are returned together.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	c.derive()

	if errs := c.Validate(); len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return &c, nil
}

// derive fills in the fields that follow from the profile.
func (c *Catalog) derive() {
	for i := range c.Crystals {
		c.Crystals[i].Unlocked = c.Crystals[i].LevelRequirement <= c.Profile.Level
	}
	for i := range c.Map {
		if cr := c.CrystalByID(c.Map[i].CrystalID); cr != nil {
			c.Map[i].Unlocked = cr.Unlocked
		}
	}
	for i := range c.Leaderboard {
		if c.Leaderboard[i].You {
			c.Leaderboard[i].Level = c.Profile.Level
			c.Leaderboard[i].XP = c.Profile.XP
		}
	}
}

// CrystalByID returns the crystal with id, or nil.
func (c *Catalog) CrystalByID(id int) *Crystal {
	for i := range c.Crystals {
		if c.Crystals[i].ID == id {
			return &c.Crystals[i]
		}
	}
	return nil
}

// FeaturedGames returns at most n games from the top of the list.
func (c *Catalog) FeaturedGames(n int) []Game {
	return head(c.Games, n)
}

// FeaturedCourses returns at most n courses from the top of the list.
func (c *Catalog) FeaturedCourses(n int) []Course {
	return head(c.Courses, n)
}

// UnlockedAchievements returns the achievements the user has earned.
func (c *Catalog) UnlockedAchievements() []Achievement {
	var out []Achievement
	for _, a := range c.Achievements {
		if a.Unlocked {
			out = append(out, a)
		}
	}
	return out
}

// UnlockedCrystals returns the crystals available at the profile level.
func (c *Catalog) UnlockedCrystals() []Crystal {
	var out []Crystal
	for _, cr := range c.Crystals {
		if cr.Unlocked {
			out = append(out, cr)
		}
	}
	return out
}

// NextCrystal returns the locked crystal with the lowest level requirement,
// or nil when everything is unlocked.
func (c *Catalog) NextCrystal() *Crystal {
	var next *Crystal
	for i := range c.Crystals {
		cr := &c.Crystals[i]
		if cr.Unlocked {
			continue
		}
		if next == nil || cr.LevelRequirement < next.LevelRequirement {
			next = cr
		}
	}
	return next
}

// AffirmationFor returns the first affirmation for chakra, or nil.
func (c *Catalog) AffirmationFor(chakra string) *Affirmation {
	for i := range c.Affirmations {
		if c.Affirmations[i].Chakra == chakra {
			return &c.Affirmations[i]
		}
	}
	return nil
}

func head[T any](list []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if n > len(list) {
		n = len(list)
	}
	return list[:n]
}
