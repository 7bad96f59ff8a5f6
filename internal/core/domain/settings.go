package domain

import (
	"runtime"
	"time"
)

const (
	// SettingsFile is the optional settings file read next to package.json.
	SettingsFile = ".typeget.yaml"

	// DefaultPackageManager is the executable used when none is configured.
	DefaultPackageManager = "npm"
)

// Settings controls how type packages are installed.
type Settings struct {
	// PackageManager is the executable invoked for every install.
	PackageManager string

	// Parallelism bounds the number of concurrent installs.
	Parallelism int

	// Timeout bounds a single install. Zero means no timeout.
	Timeout time.Duration

	// Skip lists dependency names that never get a type package.
	Skip []string
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		PackageManager: DefaultPackageManager,
		Parallelism:    runtime.NumCPU(),
	}
}

// Normalize replaces unset or invalid values with their defaults.
func (s Settings) Normalize() Settings {
	def := DefaultSettings()
	if s.PackageManager == "" {
		s.PackageManager = def.PackageManager
	}
	if s.Parallelism < 1 {
		s.Parallelism = def.Parallelism
	}
	if s.Timeout < 0 {
		s.Timeout = 0
	}
	return s
}
