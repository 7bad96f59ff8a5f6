package ports

import "go.trai.ch/typeget/internal/core/domain"

// ManifestLoader defines the interface for loading package.json.
//
//go:generate mockgen -source=manifest_loader.go -destination=mocks/mock_manifest_loader.go -package=mocks
type ManifestLoader interface {
	// Load reads and parses the manifest in the given directory.
	Load(dir string) (*domain.Manifest, error)
}
