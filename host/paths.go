package host

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrDataDirUnavailable indicates the application data directory
// cannot be determined on this platform or in the current environment.
var ErrDataDirUnavailable = errors.New("application data directory not available")

// PathResolver reports where an application keeps its persistent files.
type PathResolver interface {
	// AppDataDir returns the absolute application data directory.
	// The directory is not required to exist yet.
	AppDataDir() (string, error)
}

// Ensure resolvers implement the interface.
var (
	_ PathResolver = DataDirResolver{}
	_ PathResolver = StaticDir("")
)

// DataDirResolver resolves the per-user data directory from the platform
// configuration directory and the application identifier.
type DataDirResolver struct {
	Identifier string
}

// AppDataDir returns os.UserConfigDir() joined with the identifier.
func (r DataDirResolver) AppDataDir() (string, error) {
	if r.Identifier == "" {
		return "", fmt.Errorf("%w: empty application identifier", ErrDataDirUnavailable)
	}

	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDataDirUnavailable, err)
	}

	return filepath.Join(base, r.Identifier), nil
}

// StaticDir is a PathResolver returning a fixed directory.
// The empty StaticDir reports ErrDataDirUnavailable.
type StaticDir string

// AppDataDir returns the directory as an absolute path.
func (d StaticDir) AppDataDir() (string, error) {
	if d == "" {
		return "", ErrDataDirUnavailable
	}

	dir, err := filepath.Abs(string(d))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDataDirUnavailable, err)
	}
	return dir, nil
}
