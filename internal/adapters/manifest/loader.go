// Package manifest reads and parses package.json.
package manifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"go.trai.ch/typeget/internal/core/domain"
	"go.trai.ch/zerr"
)

var utf8BOM = []byte("\xef\xbb\xbf")

// Loader implements ports.ManifestLoader for package.json files.
type Loader struct {
	// Filename is the manifest name inside the directory passed to Load.
	Filename string
}

// NewLoader creates a Loader for package.json.
func NewLoader() *Loader {
	return &Loader{Filename: domain.ManifestFile}
}

// Load reads and parses the manifest in dir.
func (l *Loader) Load(dir string) (*domain.Manifest, error) {
	data, err := l.Read(dir)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Read returns the raw manifest text from dir.
func (l *Loader) Read(dir string) ([]byte, error) {
	path := filepath.Join(dir, l.Filename)

	data, err := os.ReadFile(path) //nolint:gosec // path is the manifest in the working directory
	if err != nil {
		return nil, errors.Join(
			domain.ErrManifestNotFound,
			zerr.With(zerr.Wrap(err, "failed to read manifest"), "path", path),
		)
	}
	return data, nil
}

// Parse decodes manifest text into a domain.Manifest.
// Missing dependency groups are returned as nil maps.
func Parse(data []byte) (*domain.Manifest, error) {
	data = bytes.TrimPrefix(data, utf8BOM)

	var pkg *PackageFile
	if err := json.Unmarshal(data, &pkg); err != nil {
		return nil, errors.Join(domain.ErrManifestParseFailed, zerr.Wrap(err, "invalid manifest"))
	}
	if pkg == nil {
		return nil, errors.Join(domain.ErrManifestParseFailed, zerr.New("manifest is null"))
	}

	return &domain.Manifest{
		Dependencies:    pkg.Dependencies,
		DevDependencies: pkg.DevDependencies,
	}, nil
}
