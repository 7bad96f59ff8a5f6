package domain

import "go.trai.ch/zerr"

var (
	// ErrManifestNotFound is returned when package.json cannot be found or read.
	ErrManifestNotFound = zerr.New("could not read package.json")

	// ErrManifestParseFailed is returned when package.json is not a well-formed manifest.
	ErrManifestParseFailed = zerr.New("failed to parse package.json")

	// ErrSettingsReadFailed is returned when the settings file exists but cannot be read.
	ErrSettingsReadFailed = zerr.New("failed to read settings file")

	// ErrSettingsParseFailed is returned when the settings file cannot be parsed.
	ErrSettingsParseFailed = zerr.New("failed to parse settings file")

	// ErrProcessSpawnFailed is returned when the package manager process cannot be started.
	ErrProcessSpawnFailed = zerr.New("failed to start package manager")

	// ErrInstallInterrupted is returned when an install was cancelled or timed out.
	ErrInstallInterrupted = zerr.New("install interrupted")
)
