package catalog

import (
	"fmt"

	"github.com/muurk/learnquest/internal/tone"
)

// ValidateDifficulty validates a game difficulty tag.
func ValidateDifficulty(d Difficulty) error {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return nil
	}
	return NewValidationError("difficulty", fmt.Sprintf("unknown difficulty %q", d))
}

// ValidateProgress validates a course completion percentage (0-100).
func ValidateProgress(progress int) error {
	if progress < 0 || progress > 100 {
		return NewValidationError("progress", fmt.Sprintf("must be 0-100, got %d", progress))
	}
	return nil
}

// ValidateChakra validates that a name is one of the seven chakras.
func ValidateChakra(name string) error {
	if !tone.IsChakra(name) {
		return NewValidationError("chakra", fmt.Sprintf("unknown chakra %q", name))
	}
	return nil
}

// uniqueIDs reports every duplicate id in a list.
func uniqueIDs(list string, ids []int) []error {
	var errs []error
	seen := make(map[int]bool, len(ids))
	for i, id := range ids {
		if seen[id] {
			errs = append(errs, NewValidationError(fmt.Sprintf("%s[%d].id", list, i), fmt.Sprintf("duplicate id %d", id)))
		}
		seen[id] = true
	}
	return errs
}

func field(list string, i int, name string, err error) error {
	if ve, ok := err.(*ValidationError); ok {
		return NewValidationError(fmt.Sprintf("%s[%d].%s", list, i, name), ve.Message)
	}
	return fmt.Errorf("%s[%d].%s: %w", list, i, name, err)
}

// Validate checks every catalog invariant.
// Returns a slice of validation errors (empty if valid).
// Derived fields must already be filled in (see Parse).
func (c *Catalog) Validate() []error {
	var errs []error

	if !c.Theme.Valid() {
		errs = append(errs, NewValidationError("theme", fmt.Sprintf("unknown theme %q", c.Theme)))
	}
	errs = append(errs, c.validateProfile()...)
	errs = append(errs, c.validateEducation()...)
	errs = append(errs, c.validateCrystals()...)

	return errs
}

func (c *Catalog) validateProfile() []error {
	var errs []error
	p := c.Profile

	if p.Level < 1 {
		errs = append(errs, NewValidationError("profile.level", fmt.Sprintf("must be at least 1, got %d", p.Level)))
	}
	if p.XPToNext <= 0 {
		errs = append(errs, NewValidationError("profile.xp_to_next", "must be positive"))
	}
	if p.XP < 0 {
		errs = append(errs, NewValidationError("profile.xp", "must not be negative"))
	}
	if c.Theme == ThemeCrystals && p.MaxEnergy <= 0 {
		errs = append(errs, NewValidationError("profile.max_energy", "must be positive"))
	}
	return errs
}

func (c *Catalog) validateEducation() []error {
	var errs []error

	ids := make([]int, len(c.Games))
	for i, g := range c.Games {
		ids[i] = g.ID
		if err := ValidateDifficulty(g.Difficulty); err != nil {
			errs = append(errs, field("games", i, "difficulty", err))
		}
		if g.XP < 0 {
			errs = append(errs, NewValidationError(fmt.Sprintf("games[%d].xp", i), "must not be negative"))
		}
	}
	errs = append(errs, uniqueIDs("games", ids)...)

	ids = make([]int, len(c.Courses))
	for i, course := range c.Courses {
		ids[i] = course.ID
		if err := ValidateProgress(course.Progress); err != nil {
			errs = append(errs, field("courses", i, "progress", err))
		}
	}
	errs = append(errs, uniqueIDs("courses", ids)...)

	ids = make([]int, len(c.Achievements))
	for i, a := range c.Achievements {
		ids[i] = a.ID
	}
	errs = append(errs, uniqueIDs("achievements", ids)...)

	ids = make([]int, len(c.Shop))
	for i, item := range c.Shop {
		ids[i] = item.ID
		if item.Price <= 0 {
			errs = append(errs, NewValidationError(fmt.Sprintf("shop[%d].price", i), "must be positive"))
		}
	}
	errs = append(errs, uniqueIDs("shop", ids)...)

	// Ranks run 1..n in order. XP ordering is left to the data.
	for i, e := range c.Leaderboard {
		if e.Rank != i+1 {
			errs = append(errs, NewValidationError(fmt.Sprintf("leaderboard[%d].rank", i), fmt.Sprintf("expected rank %d, got %d", i+1, e.Rank)))
		}
	}

	return errs
}

func (c *Catalog) validateCrystals() []error {
	var errs []error

	ids := make([]int, len(c.Crystals))
	for i, cr := range c.Crystals {
		ids[i] = cr.ID
		if err := ValidateChakra(cr.Chakra); err != nil {
			errs = append(errs, field("crystals", i, "chakra", err))
		}
		if len(cr.Colors) == 0 {
			errs = append(errs, NewValidationError(fmt.Sprintf("crystals[%d].colors", i), "at least one color required"))
		}
		if cr.LevelRequirement < 1 {
			errs = append(errs, NewValidationError(fmt.Sprintf("crystals[%d].level_requirement", i), "must be at least 1"))
		}
	}
	errs = append(errs, uniqueIDs("crystals", ids)...)

	ids = make([]int, len(c.Practices))
	for i, p := range c.Practices {
		ids[i] = p.ID
		if err := ValidateChakra(p.Chakra); err != nil {
			errs = append(errs, field("practices", i, "chakra", err))
		}
	}
	errs = append(errs, uniqueIDs("practices", ids)...)

	ids = make([]int, len(c.Affirmations))
	for i, a := range c.Affirmations {
		ids[i] = a.ID
		if err := ValidateChakra(a.Chakra); err != nil {
			errs = append(errs, field("affirmations", i, "chakra", err))
		}
	}
	errs = append(errs, uniqueIDs("affirmations", ids)...)

	errs = append(errs, c.validateMap()...)
	return errs
}

// validateMap checks the path: ids 1..n in order, every level points at a
// crystal, completed implies unlocked, and neither flag turns back on once
// it has turned off along the path.
func (c *Catalog) validateMap() []error {
	var errs []error
	lockedSeen, incompleteSeen := false, false

	for i, lvl := range c.Map {
		name := fmt.Sprintf("map[%d]", i)

		if lvl.ID != i+1 {
			errs = append(errs, NewValidationError(name+".id", fmt.Sprintf("expected id %d, got %d", i+1, lvl.ID)))
		}
		if c.CrystalByID(lvl.CrystalID) == nil {
			errs = append(errs, NewValidationError(name+".crystal_id", fmt.Sprintf("no crystal with id %d", lvl.CrystalID)))
		}
		if lvl.X < 0 || lvl.X > 100 || lvl.Y < 0 || lvl.Y > 100 {
			errs = append(errs, NewValidationError(name, fmt.Sprintf("position (%.0f, %.0f) outside 0-100", lvl.X, lvl.Y)))
		}
		if lvl.Completed && !lvl.Unlocked {
			errs = append(errs, NewValidationError(name+".completed", "level is completed but locked"))
		}
		if lvl.Unlocked && lockedSeen {
			errs = append(errs, NewValidationError(name+".unlocked", "unlocked after a locked level"))
		}
		if lvl.Completed && incompleteSeen {
			errs = append(errs, NewValidationError(name+".completed", "completed after an incomplete level"))
		}

		lockedSeen = lockedSeen || !lvl.Unlocked
		incompleteSeen = incompleteSeen || !lvl.Completed
	}

	return errs
}
