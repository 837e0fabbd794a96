// Package manifest reads and writes the declared-state manifest: the
// list of packages the user wants installed.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"sigs.k8s.io/yaml"

	"github.com/cargosync/cli/internal/crates"
)

// ErrLoadManifest indicates the manifest could not be read or is not
// valid YAML.
var ErrLoadManifest = errors.New("loading manifest")

// Manifest is the on-disk declared state.
type Manifest struct {
	// Packages are the packages that should be installed.
	Packages []crates.Package `json:"packages"`
}

// Load reads the manifest at path. Package names must be unique; the
// manifest format has no notion of two simultaneous installs of the
// same crate.
func Load(path string) ([]crates.Package, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadManifest, err)
	}

	var m Manifest
	if err := yaml.UnmarshalStrict(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadManifest, err)
	}

	seen := make(map[string]bool, len(m.Packages))
	for _, pkg := range m.Packages {
		if pkg.Name == "" {
			return nil, fmt.Errorf("%w: package with empty name", ErrLoadManifest)
		}
		if pkg.Version == nil {
			return nil, fmt.Errorf("%w: package %q has no version", ErrLoadManifest, pkg.Name)
		}
		if seen[pkg.Name] {
			return nil, fmt.Errorf("%w: duplicate package %q", ErrLoadManifest, pkg.Name)
		}
		seen[pkg.Name] = true
	}

	return m.Packages, nil
}

// Save writes the manifest to path, creating parent directories as
// needed.
func Save(path string, pkgs []crates.Package) error {
	data, err := yaml.Marshal(Manifest{Packages: pkgs})
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating manifest directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest: %w", err)
	}

	return nil
}
