package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/muurk/learnquest/internal/viewstate"
)

func TestGetConfigDir(t *testing.T) {
	configDir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}

	if !strings.Contains(configDir, "learnquest") {
		t.Errorf("GetConfigDir() = %v, should contain 'learnquest'", configDir)
	}

	t.Logf("Config directory: %s", configDir)
}

func TestGetConfigDirXDG(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("XDG_CONFIG_HOME only applies on Linux and other Unix systems")
	}

	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)

	configPath, err := GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath() error = %v", err)
	}
	want := filepath.Join(tmp, "learnquest", "config.yaml")
	if configPath != want {
		t.Errorf("GetConfigPath() = %v, want %v", configPath, want)
	}
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig()

	if cfg.Version != CurrentVersion {
		t.Errorf("NewConfig().Version = %v, want %v", cfg.Version, CurrentVersion)
	}
	if cfg.Preferences == nil {
		t.Fatal("NewConfig().Preferences should not be nil")
	}
	if cfg.Preferences.Theme != "education" {
		t.Errorf("Theme = %v, want education", cfg.Preferences.Theme)
	}
	if !cfg.Preferences.Sound {
		t.Error("Sound should be on by default")
	}
	if cfg.Preferences.Volume != DefaultVolume {
		t.Errorf("Volume = %v, want %v", cfg.Preferences.Volume, DefaultVolume)
	}
	if err := cfg.Preferences.Validate(); err != nil {
		t.Errorf("default preferences invalid: %v", err)
	}
}

func TestPreferencesValidate(t *testing.T) {
	tests := []struct {
		name    string
		prefs   Preferences
		wantErr bool
	}{
		{"defaults", *defaultPreferences(), false},
		{"empty theme normalised", Preferences{Volume: 0.5}, false},
		{"crystals with map", Preferences{Theme: "crystals", StartSection: "map"}, false},
		{"education with shop", Preferences{Theme: "education", StartSection: "shop"}, false},
		{"unknown theme", Preferences{Theme: "space"}, true},
		{"unknown section", Preferences{Theme: "education", StartSection: "settings"}, true},
		{"section from other theme", Preferences{Theme: "education", StartSection: "map"}, true},
		{"volume too loud", Preferences{Theme: "education", Volume: 1.5}, true},
		{"negative volume", Preferences{Theme: "education", Volume: -0.1}, true},
		{"warning level", Preferences{Theme: "education", LogLevel: "warning"}, false},
		{"bad level", Preferences{Theme: "education", LogLevel: "loud"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.prefs
			err := p.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestPreferencesSection(t *testing.T) {
	p := Preferences{Theme: "crystals"}
	if got := p.Section(); got != viewstate.SectionMap {
		t.Errorf("Section() = %v, want %v", got, viewstate.SectionMap)
	}

	p.StartSection = "practices"
	if got := p.Section(); got != viewstate.SectionPractices {
		t.Errorf("Section() = %v, want %v", got, viewstate.SectionPractices)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("LEARNQUEST_THEME", "crystals")
	t.Setenv("LEARNQUEST_SOUND", "false")
	t.Setenv("LEARNQUEST_VOLUME", "0.25")
	t.Setenv("LEARNQUEST_LOG_LEVEL", "debug")

	cfg := NewConfig()
	cfg.Preferences.Catalog = "/srv/catalog.yaml"
	if err := cfg.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv() error = %v", err)
	}

	p := cfg.Preferences
	if p.Theme != "crystals" {
		t.Errorf("Theme = %v, want crystals", p.Theme)
	}
	if p.Sound {
		t.Error("Sound should be overridden to false")
	}
	if p.Volume != 0.25 {
		t.Errorf("Volume = %v, want 0.25", p.Volume)
	}
	if p.LogLevel != "debug" {
		t.Errorf("LogLevel = %v, want debug", p.LogLevel)
	}
	if p.Catalog != "/srv/catalog.yaml" {
		t.Errorf("Catalog = %v, unset variable should keep file value", p.Catalog)
	}
}

func TestApplyEnvThemeDropsStartSection(t *testing.T) {
	tests := []struct {
		name    string
		theme   string
		section string // empty leaves LEARNQUEST_SECTION unset
		want    string
	}{
		{"theme switch resets section", "crystals", "", ""},
		{"same theme keeps section", "education", "", "home"},
		{"explicit section wins", "crystals", "practices", "practices"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LEARNQUEST_THEME", tt.theme)
			if tt.section != "" {
				t.Setenv("LEARNQUEST_SECTION", tt.section)
			}

			cfg := NewConfig()
			cfg.Preferences.StartSection = "home"
			if err := cfg.ApplyEnv(); err != nil {
				t.Fatalf("ApplyEnv() error = %v", err)
			}
			if got := cfg.Preferences.StartSection; got != tt.want {
				t.Errorf("StartSection = %q, want %q", got, tt.want)
			}
			if err := cfg.Preferences.Validate(); err != nil {
				t.Errorf("Validate() error = %v", err)
			}
		})
	}
}

func TestLoadFromDiskEnvThemeOverSavedSection(t *testing.T) {
	if runtime.GOOS == "windows" || runtime.GOOS == "darwin" {
		t.Skip("XDG_CONFIG_HOME only applies on Linux and other Unix systems")
	}
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("LEARNQUEST_THEME", "crystals")

	path := filepath.Join(dir, appName, configFile)
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		t.Fatal(err)
	}
	data := "version: 1\npreferences:\n  theme: education\n  start_section: home\n  sound: true\n  volume: 0.8\n"
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadFromDisk()
	if err != nil {
		t.Fatalf("loadFromDisk() error = %v", err)
	}
	if got := cfg.Preferences.Section(); got != "map" {
		t.Errorf("Section() = %q, want the crystals default map", got)
	}
}

func TestApplyEnvBadValue(t *testing.T) {
	t.Setenv("LEARNQUEST_VOLUME", "loud")

	if err := NewConfig().ApplyEnv(); err == nil {
		t.Error("ApplyEnv() should fail on a non-numeric volume")
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := NewConfig()
	cfg.Preferences.Theme = "crystals"
	cfg.Preferences.StartSection = "collection"
	cfg.Preferences.Volume = 0.4

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("SaveTo() error = %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should be renamed away")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.HasPrefix(string(data), "# learnquest configuration") {
		t.Error("saved file should start with the header comment")
	}

	loaded, err := loadFromFile(path)
	if err != nil {
		t.Fatalf("loadFromFile() error = %v", err)
	}
	p := loaded.Preferences
	if p.Theme != "crystals" || p.StartSection != "collection" || p.Volume != 0.4 {
		t.Errorf("loaded preferences = %+v, want crystals/collection/0.4", p)
	}
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := loadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("loadFromFile() error = %v", err)
	}
	if cfg.Preferences.Theme != "education" {
		t.Errorf("Theme = %v, want education default", cfg.Preferences.Theme)
	}
}

func TestLoadRejectsBadFiles(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"wrong version", "version: 2\n"},
		{"malformed yaml", "version: [1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.content), 0600); err != nil {
				t.Fatal(err)
			}
			if _, err := loadFromFile(path); err == nil {
				t.Error("loadFromFile() should fail")
			}
		})
	}
}

func TestLoadFillsMissingPreferences(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("version: 1\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadFromFile(path)
	if err != nil {
		t.Fatalf("loadFromFile() error = %v", err)
	}
	if cfg.Preferences == nil || !cfg.Preferences.Sound {
		t.Errorf("Preferences = %+v, want defaults", cfg.Preferences)
	}
}
