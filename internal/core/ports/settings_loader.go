package ports

import "go.trai.ch/typeget/internal/core/domain"

// SettingsLoader defines the interface for loading install settings.
//
//go:generate mockgen -source=settings_loader.go -destination=mocks/mock_settings_loader.go -package=mocks
type SettingsLoader interface {
	// Load returns the settings for the given directory.
	// A missing settings file yields the default settings.
	Load(dir string) (domain.Settings, error)
}
