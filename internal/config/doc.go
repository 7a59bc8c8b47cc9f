// Package config manages learnquest's user preferences.
//
// Preferences live in a YAML file that follows OS conventions:
//   - Linux: $XDG_CONFIG_HOME/learnquest/config.yaml or $HOME/.config/learnquest/config.yaml
//   - macOS: $HOME/.config/learnquest/config.yaml
//   - Windows: %LOCALAPPDATA%\learnquest\config.yaml
//
// A missing file is not an error; defaults are used. Every preference can be
// overridden with an environment variable prefixed LEARNQUEST_ (THEME,
// SECTION, SOUND, VOLUME, CATALOG, LOG_LEVEL, LOG_FILE).
//
// Learning progress is never written here. It comes from the catalog and
// resets on restart.
//
// # Usage Example
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	cfg.Preferences.Theme = "crystals"
//	if err := cfg.Save(); err != nil {
//	    return err
//	}
//
// Load caches its result with sync.Once; writes go through a temporary file
// and rename under a mutex.
package config
