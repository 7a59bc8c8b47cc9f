package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

const (
	appName    = "learnquest"
	configFile = "config.yaml"

	// EnvPrefix prefixes every environment override.
	EnvPrefix = "LEARNQUEST_"
)

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigErr  error

	fileMutex sync.Mutex
)

// GetConfigDir returns the OS-appropriate configuration directory:
//   - Linux: $XDG_CONFIG_HOME/learnquest or $HOME/.config/learnquest
//   - macOS: $HOME/.config/learnquest
//   - Windows: %LOCALAPPDATA%\learnquest
func GetConfigDir() (string, error) {
	switch runtime.GOOS {
	case "windows":
		if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
			return filepath.Join(localAppData, appName), nil
		}
		userProfile := os.Getenv("USERPROFILE")
		if userProfile == "" {
			return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
		}
		return filepath.Join(userProfile, "AppData", "Local", appName), nil

	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".config", appName), nil

	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, appName), nil
		}
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(homeDir, ".config", appName), nil
	}
}

// GetConfigPath returns the full path to the configuration file.
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFile), nil
}

// Load returns the configuration from disk with environment overrides
// applied. A missing file yields defaults. The result is cached.
func Load() (*Config, error) {
	globalConfigOnce.Do(func() {
		globalConfig, globalConfigErr = loadFromDisk()
	})
	return globalConfig, globalConfigErr
}

func loadFromDisk() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}

	cfg, err := loadFromFile(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Preferences.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// loadFromFile reads path without applying environment overrides.
func loadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return NewConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Version != CurrentVersion {
		return nil, fmt.Errorf("unsupported config version: %d (expected %d)", cfg.Version, CurrentVersion)
	}
	if cfg.Preferences == nil {
		cfg.Preferences = defaultPreferences()
	}

	return cfg, nil
}

// ApplyEnv overrides preferences from LEARNQUEST_* variables.
// Unset variables leave the file value alone. Switching the theme without
// LEARNQUEST_SECTION drops the saved start section, which belongs to the
// old theme.
func (c *Config) ApplyEnv() error {
	if c.Preferences == nil {
		c.Preferences = defaultPreferences()
	}
	theme := c.Preferences.Theme
	if err := env.ParseWithOptions(c.Preferences, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parsing environment: %w", err)
	}
	if c.Preferences.Theme != theme {
		if _, ok := os.LookupEnv(EnvPrefix + "SECTION"); !ok {
			c.Preferences.StartSection = ""
		}
	}
	return nil
}

func marshalConfig(c *Config, location string) ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}

	header := []byte(`# learnquest configuration
# Any preference can be overridden with a LEARNQUEST_* environment variable,
# e.g. LEARNQUEST_THEME=crystals or LEARNQUEST_SOUND=false.
#
# Location: ` + location + `

`)
	return append(header, data...), nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	return c.SaveTo(configPath)
}

// SaveTo writes the configuration to path via a temporary file and rename.
func (c *Config) SaveTo(path string) error {
	fileMutex.Lock()
	defer fileMutex.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := marshalConfig(c, path)
	if err != nil {
		return err
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write temporary config file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to save config file: %w", err)
	}

	return nil
}

// CreateDefaultConfig writes a default configuration file unless one exists.
// It returns the path written.
func CreateDefaultConfig(force bool) (string, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return "", fmt.Errorf("failed to get config path: %w", err)
	}

	if !force {
		if _, err := os.Stat(configPath); err == nil {
			return configPath, fmt.Errorf("config file already exists: %s (use --force to overwrite)", configPath)
		}
	}

	return configPath, NewConfig().SaveTo(configPath)
}

// Marshal renders c as YAML, the way Save writes it minus the header.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
