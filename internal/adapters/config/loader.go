// Package config provides the settings loader for typeget.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/typeget/internal/core/domain"
	"go.trai.ch/typeget/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.SettingsLoader using a YAML file.
type Loader struct {
	Logger   ports.Logger
	Filename string
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{
		Logger:   logger,
		Filename: domain.SettingsFile,
	}
}

// Load reads the settings file in dir. A missing file yields the defaults.
func (l *Loader) Load(dir string) (domain.Settings, error) {
	path := filepath.Join(dir, l.Filename)

	data, err := os.ReadFile(path) //nolint:gosec // path is the settings file in the working directory
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.DefaultSettings(), nil
		}
		return domain.Settings{}, errors.Join(
			domain.ErrSettingsReadFailed,
			zerr.With(zerr.Wrap(err, "failed to read settings"), "path", path),
		)
	}

	typefile, err := decode(data)
	if err != nil {
		return domain.Settings{}, errors.Join(
			domain.ErrSettingsParseFailed,
			zerr.With(err, "path", path),
		)
	}

	return l.toSettings(typefile, path)
}

func decode(data []byte) (Typefile, error) {
	var typefile Typefile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&typefile); err != nil && !errors.Is(err, io.EOF) {
		return Typefile{}, zerr.Wrap(err, "invalid settings")
	}
	return typefile, nil
}

func (l *Loader) toSettings(typefile Typefile, path string) (domain.Settings, error) {
	settings := domain.Settings{
		PackageManager: typefile.PackageManager,
		Parallelism:    typefile.Parallelism,
		Skip:           typefile.Skip,
	}

	if typefile.Timeout != "" {
		timeout, err := time.ParseDuration(typefile.Timeout)
		if err != nil || timeout < 0 {
			err = zerr.With(zerr.New("invalid timeout"), "timeout", typefile.Timeout)
			return domain.Settings{}, errors.Join(domain.ErrSettingsParseFailed, zerr.With(err, "path", path))
		}
		settings.Timeout = timeout
	}

	if typefile.Parallelism < 0 && l.Logger != nil {
		l.Logger.Warn(fmt.Sprintf("ignoring parallelism %d in %s, using the CPU count", typefile.Parallelism, path))
	}

	return settings.Normalize(), nil
}
