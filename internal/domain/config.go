package domain

import (
	"strings"
	"time"
)

// ConfigFileName is the per-directory configuration file name.
const ConfigFileName = "weekplan.toml"

// Config represents the application configuration.
type Config struct {
	Schedule  ScheduleConfig  // [schedule] settings
	Lifecycle LifecycleConfig // [lifecycle] settings
	Notes     NotesConfig     // [notes] settings
	Store     StoreConfig     // [store] settings
	Log       LogConfig       // [log] settings
}

// ScheduleConfig holds the weekly grid shape from the [schedule] section.
type ScheduleConfig struct {
	WeekStart string   // First day of the week, e.g. "monday"
	Labels    []string // Slot boundary labels, one more than the slot count
}

// SlotsPerDay derives the number of schedulable slots from the boundaries.
func (c ScheduleConfig) SlotsPerDay() int {
	if len(c.Labels) < 2 {
		return 0
	}
	return len(c.Labels) - 1
}

// LifecycleConfig holds archival timing from the [lifecycle] section.
type LifecycleConfig struct {
	ArchiveGraceDays int // Full days past the completion week before archiving
	DormantAfterDays int // Days since creation before an archived task goes dormant
}

// NotesConfig holds notes storage settings from the [notes] section.
type NotesConfig struct {
	Dir     string // Directory holding per-task notes blobs
	History bool   // Keep notes revisions in a local git repository
}

// StoreConfig holds aggregate storage settings from the [store] section.
type StoreConfig struct {
	Path string // Path to the aggregate JSON file
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string // Log level: debug, info, warn, error
}

// NewDefaultConfig returns the built-in configuration.
func NewDefaultConfig() *Config {
	return &Config{
		Schedule: ScheduleConfig{
			WeekStart: "monday",
			Labels:    []string{"9:00", "10:00", "12:00", "12:30", "14:30", "16:00", "18:00", "19:00", "23:00"},
		},
		Lifecycle: LifecycleConfig{
			ArchiveGraceDays: 7,
			DormantAfterDays: 365,
		},
		Notes: NotesConfig{},
		Log:   LogConfig{Level: "info"},
	}
}

// WeekStartDay parses the configured week start name, defaulting to Monday.
func (c *Config) WeekStartDay() time.Weekday {
	switch strings.ToLower(strings.TrimSpace(c.Schedule.WeekStart)) {
	case "sunday":
		return time.Sunday
	case "tuesday":
		return time.Tuesday
	case "wednesday":
		return time.Wednesday
	case "thursday":
		return time.Thursday
	case "friday":
		return time.Friday
	case "saturday":
		return time.Saturday
	default:
		return time.Monday
	}
}

// LifecyclePolicy builds the evaluator policy from the configuration.
func (c *Config) LifecyclePolicy() LifecyclePolicy {
	p := DefaultLifecyclePolicy()
	p.WeekStart = c.WeekStartDay()
	if c.Lifecycle.ArchiveGraceDays > 0 {
		p.ArchiveGraceDays = c.Lifecycle.ArchiveGraceDays
	}
	if c.Lifecycle.DormantAfterDays > 0 {
		p.DormantAfterDays = c.Lifecycle.DormantAfterDays
	}
	return p
}
