// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/tarunark/weekplan/internal/domain"
)

// Loader loads configuration from TOML files. Settings merge in order:
// built-in defaults, then the global config, then the working-directory
// config, later sources taking precedence.
type Loader struct {
	workDir       string // Directory holding the local weekplan.toml
	globalConfDir string // Global config directory (e.g. ~/.config/weekplan)
}

// NewLoader creates a new Loader.
func NewLoader(workDir string) *Loader {
	return &Loader{
		workDir:       workDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config
// directory. This is useful for testing.
func NewLoaderWithGlobalDir(workDir, globalConfDir string) *Loader {
	return &Loader{
		workDir:       workDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "weekplan")
}

// fileConfig mirrors domain.Config with optional sections so absent keys
// fall through to lower-precedence sources.
type fileConfig struct {
	Schedule  *scheduleSection  `toml:"schedule"`
	Lifecycle *lifecycleSection `toml:"lifecycle"`
	Notes     *notesSection     `toml:"notes"`
	Store     *storeSection     `toml:"store"`
	Log       *logSection       `toml:"log"`
}

type scheduleSection struct {
	WeekStart *string  `toml:"week_start"`
	Labels    []string `toml:"labels"`
}

type lifecycleSection struct {
	ArchiveGraceDays *int `toml:"archive_grace_days"`
	DormantAfterDays *int `toml:"dormant_after_days"`
}

type notesSection struct {
	Dir     *string `toml:"dir"`
	History *bool   `toml:"history"`
}

type storeSection struct {
	Path *string `toml:"path"`
}

type logSection struct {
	Level *string `toml:"level"`
}

// Load returns the merged configuration.
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	globalPath := filepath.Join(l.globalConfDir, "config.toml")
	if err := l.applyFile(base, globalPath); err != nil {
		return nil, err
	}

	localPath := filepath.Join(l.workDir, domain.ConfigFileName)
	if err := l.applyFile(base, localPath); err != nil {
		return nil, err
	}

	return base, nil
}

func (l *Loader) applyFile(cfg *domain.Config, path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var fc fileConfig
	if err := toml.Unmarshal(content, &fc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	apply(cfg, &fc)
	return nil
}

// apply copies the present fields of fc onto cfg.
func apply(cfg *domain.Config, fc *fileConfig) {
	if fc.Schedule != nil {
		if fc.Schedule.WeekStart != nil {
			cfg.Schedule.WeekStart = *fc.Schedule.WeekStart
		}
		if len(fc.Schedule.Labels) > 0 {
			cfg.Schedule.Labels = fc.Schedule.Labels
		}
	}
	if fc.Lifecycle != nil {
		if fc.Lifecycle.ArchiveGraceDays != nil {
			cfg.Lifecycle.ArchiveGraceDays = *fc.Lifecycle.ArchiveGraceDays
		}
		if fc.Lifecycle.DormantAfterDays != nil {
			cfg.Lifecycle.DormantAfterDays = *fc.Lifecycle.DormantAfterDays
		}
	}
	if fc.Notes != nil {
		if fc.Notes.Dir != nil {
			cfg.Notes.Dir = *fc.Notes.Dir
		}
		if fc.Notes.History != nil {
			cfg.Notes.History = *fc.Notes.History
		}
	}
	if fc.Store != nil && fc.Store.Path != nil {
		cfg.Store.Path = *fc.Store.Path
	}
	if fc.Log != nil && fc.Log.Level != nil {
		cfg.Log.Level = *fc.Log.Level
	}
}
