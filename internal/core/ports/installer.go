// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/typeget/internal/core/domain"
)

// Installer installs a single type package.
//
//go:generate mockgen -source=installer.go -destination=mocks/mock_installer.go -package=mocks
type Installer interface {
	// Install runs the package manager for the job and blocks until it exits.
	//
	// It returns an error only when the package manager could not be started
	// or was interrupted. The exit status of the package manager is not reported.
	Install(ctx context.Context, job domain.InstallJob) error
}
