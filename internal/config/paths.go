package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Paths contains standard filesystem paths for cargo-sync.
type Paths struct {
	// ConfigFile is the path to the config file (~/.cargo-sync/config.yaml).
	ConfigFile string

	// Manifest is the path to the declared-state manifest
	// (~/.cargo-sync/manifest.yaml).
	Manifest string

	// HomeDir is the cargo-sync home directory (~/.cargo-sync).
	HomeDir string

	// Record is cargo's install record (~/.cargo/.crates2.json).
	Record string

	// BinDir is cargo's binary directory (~/.cargo/bin).
	BinDir string
}

// DefaultPaths returns the default paths for cargo-sync.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	syncHome := filepath.Join(homeDir, ".cargo-sync")
	cargoHome := filepath.Join(homeDir, ".cargo")

	return &Paths{
		ConfigFile: filepath.Join(syncHome, "config.yaml"),
		Manifest:   filepath.Join(syncHome, "manifest.yaml"),
		HomeDir:    syncHome,
		Record:     filepath.Join(cargoHome, ".crates2.json"),
		BinDir:     filepath.Join(cargoHome, "bin"),
	}, nil
}

// GetConfigFile returns the config file path.
// If CARGO_SYNC_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("CARGO_SYNC_CONFIG"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// EnsureHomeDir creates the cargo-sync home directory if it doesn't exist.
func EnsureHomeDir() error {
	paths, err := DefaultPaths()
	if err != nil {
		return err
	}

	return os.MkdirAll(paths.HomeDir, 0o755)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(homeDir, strings.TrimPrefix(path, "~")), nil
	}

	return path, nil
}
