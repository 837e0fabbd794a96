package cmd

import (
	"github.com/spf13/cobra"

	"github.com/cargosync/cli/internal/config"
	"github.com/cargosync/cli/internal/output"
)

var (
	// Global flags
	configFlag     string
	recordFlag     string
	binDirFlag     string
	manifestFlag   string
	cargoFlag      string
	verboseFlag    bool
	timestampsFlag bool

	// Resolved configuration (loaded during PersistentPreRunE)
	syncConfig     *config.Config
	resolvedConfig *config.Resolved
)

// NewRootCmd creates the root command for the cargo-sync CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cargo-sync",
		Short:         "Keep cargo-installed packages in sync with a manifest",
		Long:          `cargo-sync reconciles the packages cargo reports installed against a declared manifest and drives cargo to converge the two.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: CARGO_SYNC_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&recordFlag, "record", "", "Path to cargo's install record (env: CARGO_SYNC_RECORD)")
	rootCmd.PersistentFlags().StringVar(&binDirFlag, "bin-dir", "", "Directory cargo installs binaries into (env: CARGO_SYNC_BIN_DIR)")
	rootCmd.PersistentFlags().StringVarP(&manifestFlag, "manifest", "m", "", "Path to the manifest file (env: CARGO_SYNC_MANIFEST)")
	rootCmd.PersistentFlags().StringVar(&cargoFlag, "cargo", "", "Cargo binary to invoke (env: CARGO_SYNC_CARGO)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", false, "Show timestamps in log output")

	// Add subcommands
	rootCmd.AddCommand(NewSyncCmd())
	rootCmd.AddCommand(NewDiffCmd())
	rootCmd.AddCommand(NewBackupCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals(cmd *cobra.Command) error {
	loadedConfig, err := config.NewLoader().LoadWithDefaults(configFlag)
	if err != nil {
		output.Debug("config load error", "error", err)
		// Don't fail here - commands fall back to defaults
	}

	syncConfig = loadedConfig

	resolved, err := config.Resolve(config.ResolveOptions{
		RecordFlag:   recordFlag,
		BinDirFlag:   binDirFlag,
		ManifestFlag: manifestFlag,
		CargoFlag:    cargoFlag,
		Config:       syncConfig,
	})
	if err != nil {
		return err
	}

	resolvedConfig = resolved

	// Resolve timestamps: flag (if explicitly set) > config > default (off)
	logCfg := output.LogConfig{
		Verbose: verboseFlag,
	}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if syncConfig != nil && syncConfig.Log.Timestamps != nil {
		logCfg.Timestamps = syncConfig.Log.Timestamps
	}

	output.SetupLogging(logCfg)

	if verboseFlag {
		output.Debug("initializing CLI",
			"record", resolvedConfig.Record.Value,
			"binDir", resolvedConfig.BinDir.Value,
			"manifest", resolvedConfig.Manifest.Value,
			"cargo", resolvedConfig.Cargo.Value,
		)
	}

	return nil
}

// GetResolvedConfig returns the resolved configuration.
func GetResolvedConfig() *config.Resolved {
	return resolvedConfig
}

// GetRecordPath returns the resolved install-record path.
func GetRecordPath() string {
	if resolvedConfig != nil {
		return resolvedConfig.Record.Value
	}
	return recordFlag
}

// GetBinDir returns the resolved binary directory.
func GetBinDir() string {
	if resolvedConfig != nil {
		return resolvedConfig.BinDir.Value
	}
	return binDirFlag
}

// GetManifestPath returns the resolved manifest path.
func GetManifestPath() string {
	if resolvedConfig != nil {
		return resolvedConfig.Manifest.Value
	}
	return manifestFlag
}

// GetCargoPath returns the resolved cargo binary path.
func GetCargoPath() string {
	if resolvedConfig != nil {
		return resolvedConfig.Cargo.Value
	}
	return cargoFlag
}
