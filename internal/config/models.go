package config

import (
	"fmt"

	"github.com/muurk/learnquest/internal/catalog"
	"github.com/muurk/learnquest/internal/logging"
	"github.com/muurk/learnquest/internal/viewstate"
)

// CurrentVersion is the only config file version this build reads.
const CurrentVersion = 1

// DefaultVolume is the tone volume for a fresh config.
const DefaultVolume = 0.8

// Config represents the entire user configuration file.
type Config struct {
	Version     int          `yaml:"version"`
	Preferences *Preferences `yaml:"preferences,omitempty"`
}

// Preferences are the application-wide user preferences.
// Each field can be overridden by a LEARNQUEST_* environment variable.
type Preferences struct {
	Theme        string  `yaml:"theme" env:"THEME"`                     // education or crystals
	StartSection string  `yaml:"start_section,omitempty" env:"SECTION"` // tab to open on, empty for the theme default
	Sound        bool    `yaml:"sound" env:"SOUND"`                     // play tones
	Volume       float64 `yaml:"volume" env:"VOLUME"`                   // 0..1
	Catalog      string  `yaml:"catalog,omitempty" env:"CATALOG"`       // YAML file replacing the built-in catalog
	LogLevel     string  `yaml:"log_level,omitempty" env:"LOG_LEVEL"`   // empty keeps logging silent
	LogFile      string  `yaml:"log_file,omitempty" env:"LOG_FILE"`     // empty logs to stderr
}

// NewConfig creates a Config with default values.
func NewConfig() *Config {
	return &Config{
		Version:     CurrentVersion,
		Preferences: defaultPreferences(),
	}
}

func defaultPreferences() *Preferences {
	return &Preferences{
		Theme:  string(catalog.ThemeEducation),
		Sound:  true,
		Volume: DefaultVolume,
	}
}

// Validate checks the preferences and fills empty fields with defaults.
func (p *Preferences) Validate() error {
	if p.Theme == "" {
		p.Theme = string(catalog.ThemeEducation)
	}
	theme := catalog.Theme(p.Theme)
	if !theme.Valid() {
		return fmt.Errorf("invalid theme %q", p.Theme)
	}

	if p.StartSection != "" {
		s := viewstate.Section(p.StartSection)
		if !s.Valid() {
			return fmt.Errorf("invalid start section %q", p.StartSection)
		}
		if !viewstate.Offers(theme, s) {
			return fmt.Errorf("theme %s has no %q section", theme, p.StartSection)
		}
	}

	if p.Volume < 0 || p.Volume > 1 {
		return fmt.Errorf("invalid volume %v (expected 0..1)", p.Volume)
	}

	switch p.LogLevel {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level %q", p.LogLevel)
	}

	return nil
}

// ThemeValue returns the validated theme.
func (p *Preferences) ThemeValue() catalog.Theme {
	return catalog.Theme(p.Theme)
}

// Section returns the start section, or the theme default when unset.
func (p *Preferences) Section() viewstate.Section {
	if p.StartSection == "" {
		return viewstate.DefaultSection(p.ThemeValue())
	}
	return viewstate.Section(p.StartSection)
}

// LoggingOptions maps the log preferences onto logging.Options.
func (p *Preferences) LoggingOptions() logging.Options {
	return logging.Options{Level: p.LogLevel, File: p.LogFile}
}
