package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// FilePermissions is the default permission mode for regular files
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories
	DirPermissions = 0755

	// DefaultPreviewPort is where the embedded preview server listens
	DefaultPreviewPort = 4311
)

var (
	// ConfigDir is the global configuration directory (~/.minicoder)
	ConfigDir string

	// SettingsFile is the YAML settings file
	SettingsFile string

	// KeybindsFile holds user keybinding overrides
	KeybindsFile string

	// PreviewLogFile receives preview-server log output (the TUI owns the
	// terminal, so server logs cannot go to stdout)
	PreviewLogFile string
)

// Settings are the user-tunable options read from config.yaml. Zero values
// fall back to defaults at load time.
type Settings struct {
	// PreviewPort is the localhost port the preview server binds
	PreviewPort int `yaml:"preview_port,omitempty"`
	// CurriculumURL is the base directory listing the lesson tree is
	// crawled from
	CurriculumURL string `yaml:"curriculum_url,omitempty"`
	// OpenBrowser launches the preview URL at startup
	OpenBrowser bool `yaml:"open_browser,omitempty"`
}

// DefaultSettings returns the settings used when config.yaml is absent.
func DefaultSettings() Settings {
	return Settings{
		PreviewPort:   DefaultPreviewPort,
		CurriculumURL: "http://localhost:8000/curriculum/",
	}
}

// Initialize sets up the configuration directory and files, creating
// ~/.minicoder/ and a default config.yaml on first run.
func Initialize() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	ConfigDir = filepath.Join(homeDir, ".minicoder")
	SettingsFile = filepath.Join(ConfigDir, "config.yaml")
	KeybindsFile = filepath.Join(ConfigDir, "keybinds.yaml")
	PreviewLogFile = filepath.Join(ConfigDir, "preview.log")

	if err := os.MkdirAll(ConfigDir, DirPermissions); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", ConfigDir, err)
	}

	if _, err := os.Stat(SettingsFile); os.IsNotExist(err) {
		if err := Save(DefaultSettings()); err != nil {
			return fmt.Errorf("failed to write default settings: %w", err)
		}
	}

	return nil
}

// Load reads config.yaml, filling any unset option with its default. A
// missing file yields plain defaults; a malformed file is an error so the
// user notices a broken config instead of silently losing it.
func Load() (Settings, error) {
	settings := DefaultSettings()

	data, err := os.ReadFile(SettingsFile)
	if err != nil {
		if os.IsNotExist(err) {
			return settings, nil
		}
		return settings, fmt.Errorf("failed to read %s: %w", SettingsFile, err)
	}

	var loaded Settings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return settings, fmt.Errorf("invalid config.yaml: %w", err)
	}

	if loaded.PreviewPort != 0 {
		settings.PreviewPort = loaded.PreviewPort
	}
	if loaded.CurriculumURL != "" {
		settings.CurriculumURL = loaded.CurriculumURL
	}
	settings.OpenBrowser = loaded.OpenBrowser
	return settings, nil
}

// Save writes settings to config.yaml.
func Save(settings Settings) error {
	data, err := yaml.Marshal(settings)
	if err != nil {
		return err
	}
	return os.WriteFile(SettingsFile, data, FilePermissions)
}
