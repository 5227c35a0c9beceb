package keybinds

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the user's keybinding overrides: context name ->
// key -> action name. Missing contexts keep their defaults.
type Config struct {
	Version  string                        `yaml:"version,omitempty"`
	Contexts map[Context]map[string]Action `yaml:"contexts,omitempty"`
}

// LoadConfig loads keybinding overrides from a YAML file. A missing file is
// not an error; the caller keeps the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("invalid keybinds.yaml: %w", err)
	}
	return &config, nil
}

// ApplyConfig overlays user bindings onto a registry. Every override is
// validated first; an invalid file changes nothing.
func ApplyConfig(registry *Registry, config *Config) error {
	if err := Validate(config); err != nil {
		return err
	}
	for context, bindings := range config.Contexts {
		for key, action := range bindings {
			registry.Register(context, key, action)
		}
	}
	return nil
}

// NewRegistryWithOverrides builds the default registry and overlays the
// overrides file when present.
func NewRegistryWithOverrides(path string) (*Registry, error) {
	registry := NewDefaultRegistry()
	config, err := LoadConfig(path)
	if err != nil {
		return registry, err
	}
	if err := ApplyConfig(registry, config); err != nil {
		return registry, err
	}
	return registry, nil
}
