// Package filesystem routes every disk access through a swappable afero backend,
// so tests can run against memory.
package filesystem

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active backend.
func API() afero.Afero {
	return backend
}

// SetOsFs restores the native operating system backend.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs switches to a volatile in-memory backend.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// Create creates or truncates the named file, making parent directories as needed.
func Create(path string) (afero.File, error) {
	if err := backend.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return nil, err
	}
	return backend.Create(path)
}
