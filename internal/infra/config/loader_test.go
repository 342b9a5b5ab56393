package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLoader_DefaultsWhenNoFiles(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), filepath.Join(t.TempDir(), "global"))

	cfg, err := loader.Load()
	require.NoError(t, err)
	assert.Equal(t, time.Monday, cfg.WeekStartDay())
	assert.Equal(t, 8, cfg.Schedule.SlotsPerDay())
	assert.Equal(t, 7, cfg.Lifecycle.ArchiveGraceDays)
	assert.Equal(t, 365, cfg.Lifecycle.DormantAfterDays)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.Notes.History)
}

func TestLoader_LocalOverridesGlobal(t *testing.T) {
	workDir := t.TempDir()
	globalDir := filepath.Join(t.TempDir(), "weekplan")

	writeConfig(t, globalDir, "config.toml", `
[schedule]
week_start = "sunday"

[log]
level = "debug"
`)
	writeConfig(t, workDir, "weekplan.toml", `
[schedule]
week_start = "tuesday"
labels = ["8:00", "12:00", "18:00"]
`)

	cfg, err := NewLoaderWithGlobalDir(workDir, globalDir).Load()
	require.NoError(t, err)

	// Local wins where both set a key; global still applies elsewhere.
	assert.Equal(t, time.Tuesday, cfg.WeekStartDay())
	assert.Equal(t, 2, cfg.Schedule.SlotsPerDay())
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoader_LifecycleAndNotesSections(t *testing.T) {
	workDir := t.TempDir()

	writeConfig(t, workDir, "weekplan.toml", `
[lifecycle]
archive_grace_days = 14
dormant_after_days = 400

[notes]
dir = "/tmp/weekplan-notes"
history = true

[store]
path = "/tmp/weekplan/tasks.json"
`)

	cfg, err := NewLoaderWithGlobalDir(workDir, filepath.Join(t.TempDir(), "none")).Load()
	require.NoError(t, err)

	assert.Equal(t, 14, cfg.Lifecycle.ArchiveGraceDays)
	assert.Equal(t, 400, cfg.Lifecycle.DormantAfterDays)
	assert.Equal(t, "/tmp/weekplan-notes", cfg.Notes.Dir)
	assert.True(t, cfg.Notes.History)
	assert.Equal(t, "/tmp/weekplan/tasks.json", cfg.Store.Path)

	policy := cfg.LifecyclePolicy()
	assert.Equal(t, 14, policy.ArchiveGraceDays)
	assert.Equal(t, 400, policy.DormantAfterDays)
}

func TestLoader_InvalidTOMLFails(t *testing.T) {
	workDir := t.TempDir()
	writeConfig(t, workDir, "weekplan.toml", "not [valid toml")

	_, err := NewLoaderWithGlobalDir(workDir, filepath.Join(t.TempDir(), "none")).Load()
	assert.Error(t, err)
}
