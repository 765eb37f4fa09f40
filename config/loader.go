package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// LocalPath is the project-relative config location.
const LocalPath = "configs/ungravity.yaml"

// Load reads the configuration.
// Search order: customPath -> ~/.ungravity/config.yaml -> ./configs/ungravity.yaml -> embedded default
// Keys missing from a file keep their default values.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, p := range []string{userConfigPath(), LocalPath} {
		if p == "" {
			continue
		}
		data, err := os.ReadFile(p)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultYAML)
	if err != nil {
		return Default(), nil
	}
	return cfg, nil
}

func parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns ~/.ungravity/config.yaml, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".ungravity", "config.yaml")
}
