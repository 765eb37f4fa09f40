// Package config holds the game settings.
package config

import (
	"fmt"
	"strings"

	"github.com/milk9111/ungravity/common"
)

type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Gameplay GameplayConfig `yaml:"gameplay"`
	Storage  StorageConfig  `yaml:"storage"`
	Levels   LevelsConfig   `yaml:"levels"`
	Log      LogConfig      `yaml:"log"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type PhysicsConfig struct {
	FixedStep      float64 `yaml:"fixed_step"`
	MaxAccumulated float64 `yaml:"max_accumulated"`
	MaxSubsteps    int     `yaml:"max_substeps"`
	MaxFrameDt     float64 `yaml:"max_frame_dt"`
	Gravity        float64 `yaml:"gravity"`
	Iterations     int     `yaml:"iterations"`
}

type GameplayConfig struct {
	RequiredStarRatio float64 `yaml:"required_star_ratio"`
	Seed              int64   `yaml:"seed"`
}

type StorageBackend string

const (
	StorageFile   StorageBackend = "file"
	StorageSQLite StorageBackend = "sqlite"
	StorageMemory StorageBackend = "memory"
)

type StorageConfig struct {
	Backend StorageBackend `yaml:"backend"`
	// Path is a directory for the file backend and a database file for sqlite.
	Path string `yaml:"path"`
}

type LevelsConfig struct {
	Catalog string `yaml:"catalog"`
	MapsDir string `yaml:"maps_dir"`
	Watch   bool   `yaml:"watch"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Default mirrors default.yaml.
func Default() Config {
	return Config{
		Window: WindowConfig{Width: common.BaseWidth, Height: common.BaseHeight, Title: "ungravity"},
		Physics: PhysicsConfig{
			FixedStep:      common.FixedStep,
			MaxAccumulated: common.MaxAccumulated,
			MaxSubsteps:    common.MaxSubsteps,
			MaxFrameDt:     common.MaxFrameDt,
			Gravity:        common.Gravity,
			Iterations:     10,
		},
		Gameplay: GameplayConfig{RequiredStarRatio: common.RequiredStarRatio},
		Storage:  StorageConfig{Backend: StorageFile, Path: "~/.ungravity"},
		Log:      LogConfig{Level: "info"},
	}
}

// Validate rejects settings the game cannot run with.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Physics.FixedStep <= 0 {
		return fmt.Errorf("physics.fixed_step must be positive")
	}
	if c.Physics.MaxSubsteps <= 0 {
		return fmt.Errorf("physics.max_substeps must be positive")
	}
	if c.Physics.MaxAccumulated < c.Physics.FixedStep {
		return fmt.Errorf("physics.max_accumulated must be at least fixed_step")
	}
	if c.Gameplay.RequiredStarRatio < 0 || c.Gameplay.RequiredStarRatio > 1 {
		return fmt.Errorf("gameplay.required_star_ratio must be within [0, 1]")
	}
	switch c.Storage.Backend {
	case StorageFile, StorageSQLite, StorageMemory:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	return nil
}
