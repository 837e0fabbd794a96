// Package config provides configuration loading and management.
package config

// Config represents the cargo-sync configuration file
// (~/.cargo-sync/config.yaml by default).
type Config struct {
	// Record is the path to cargo's install record.
	// Env: CARGO_SYNC_RECORD, Default: ~/.cargo/.crates2.json
	Record string `json:"record,omitempty"`

	// BinDir is the directory cargo installs binaries into.
	// Env: CARGO_SYNC_BIN_DIR, Default: ~/.cargo/bin
	BinDir string `json:"binDir,omitempty"`

	// Manifest is the path to the declared-state manifest.
	// Env: CARGO_SYNC_MANIFEST, Default: ~/.cargo-sync/manifest.yaml
	Manifest string `json:"manifest,omitempty"`

	// Cargo is the cargo binary to invoke.
	// Env: CARGO_SYNC_CARGO, Default: "cargo"
	Cargo string `json:"cargo,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `json:"log,omitempty"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: false. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty"`
}

// WithDefaults fills unset fields with built-in defaults. Path defaults
// come from DefaultPaths; on failure the fields are left empty.
func (c *Config) WithDefaults() *Config {
	out := *c

	if out.Cargo == "" {
		out.Cargo = "cargo"
	}

	paths, err := DefaultPaths()
	if err != nil {
		return &out
	}

	if out.Record == "" {
		out.Record = paths.Record
	}
	if out.BinDir == "" {
		out.BinDir = paths.BinDir
	}
	if out.Manifest == "" {
		out.Manifest = paths.Manifest
	}

	return &out
}
