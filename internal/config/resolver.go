package config

import (
	"os"
)

// Source indicates where a configuration value came from.
type Source string

const (
	// SourceFlag indicates the value came from a command-line flag.
	SourceFlag Source = "flag"
	// SourceEnv indicates the value came from an environment variable.
	SourceEnv Source = "env"
	// SourceConfig indicates the value came from the config file.
	SourceConfig Source = "config"
	// SourceDefault indicates the value is the built-in default.
	SourceDefault Source = "default"
)

// Value is a resolved configuration value and its provenance.
type Value struct {
	Value  string
	Source Source
}

// ResolveOptions carries the flag values and loaded config for
// resolution.
type ResolveOptions struct {
	// RecordFlag is the --record flag value (empty if not set).
	RecordFlag string
	// BinDirFlag is the --bin-dir flag value (empty if not set).
	BinDirFlag string
	// ManifestFlag is the --manifest flag value (empty if not set).
	ManifestFlag string
	// CargoFlag is the --cargo flag value (empty if not set).
	CargoFlag string
	// Config is the loaded config file (may be nil).
	Config *Config
}

// Resolved holds every configuration value after precedence is applied.
type Resolved struct {
	Record   Value
	BinDir   Value
	Manifest Value
	Cargo    Value
}

// Resolve applies the precedence flag > env > config file > default to
// every configuration value.
func Resolve(opts ResolveOptions) (*Resolved, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return nil, err
	}

	cfg := opts.Config
	if cfg == nil {
		cfg = &Config{}
	}

	return &Resolved{
		Record:   resolveValue(opts.RecordFlag, "CARGO_SYNC_RECORD", cfg.Record, paths.Record),
		BinDir:   resolveValue(opts.BinDirFlag, "CARGO_SYNC_BIN_DIR", cfg.BinDir, paths.BinDir),
		Manifest: resolveValue(opts.ManifestFlag, "CARGO_SYNC_MANIFEST", cfg.Manifest, paths.Manifest),
		Cargo:    resolveValue(opts.CargoFlag, "CARGO_SYNC_CARGO", cfg.Cargo, "cargo"),
	}, nil
}

// resolveValue picks the first non-empty value in precedence order.
func resolveValue(flagValue, envVar, configValue, defaultValue string) Value {
	if flagValue != "" {
		return Value{Value: flagValue, Source: SourceFlag}
	}
	if envValue := os.Getenv(envVar); envValue != "" {
		return Value{Value: envValue, Source: SourceEnv}
	}
	if configValue != "" {
		return Value{Value: configValue, Source: SourceConfig}
	}
	return Value{Value: defaultValue, Source: SourceDefault}
}
