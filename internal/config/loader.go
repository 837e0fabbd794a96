package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for cargo-sync configuration.
const envPrefix = "CARGO_SYNC"

// Loader handles loading and merging configuration from multiple sources.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	// Set up environment variable bindings
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind specific environment variables
	_ = v.BindEnv("record", "CARGO_SYNC_RECORD")
	_ = v.BindEnv("binDir", "CARGO_SYNC_BIN_DIR")
	_ = v.BindEnv("manifest", "CARGO_SYNC_MANIFEST")
	_ = v.BindEnv("cargo", "CARGO_SYNC_CARGO")

	return &Loader{v: v}
}

// Load loads configuration from the given file path.
// If configFile is empty, it uses the default config file path.
// Environment variables take precedence over file values.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	// Expand ~ in path
	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	// Set up viper for the config file
	l.v.SetConfigFile(expandedPath)
	l.v.SetConfigType("yaml")

	// Try to read config file (not an error if it doesn't exist)
	if err := l.v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
		// Config file not found is OK, we'll use defaults + env vars
	}

	// Unmarshal into Config struct
	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// LoadWithDefaults loads configuration and applies defaults.
func (l *Loader) LoadWithDefaults(configFile string) (*Config, error) {
	cfg, err := l.Load(configFile)
	if err != nil {
		return nil, err
	}

	return cfg.WithDefaults(), nil
}
