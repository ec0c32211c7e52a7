package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"placer/internal/config"
)

var (
	version = "dev"
	cfgFile string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "placer",
	Short:   "A component placement registry with undo/redo",
	Long: `Placer maintains a numbered registry of placed circuit-board components
with snapshot-based undo and redo. The demo subcommand runs a scripted
editing session; library:list inspects a package library file.`,
	Version: version,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/placer/config.yaml)")
	rootCmd.PersistentFlags().StringP("library", "l", "",
		"path to a package library YAML file")
	rootCmd.PersistentFlags().Bool("flip-rotate-first", false,
		"rotate back-side components before mirroring")
	rootCmd.PersistentFlags().Bool("no-auto-reload", false,
		"disable automatic library reload when the file changes")
	rootCmd.PersistentFlags().Bool("debug", false,
		"enable debug logging")

	_ = viper.BindPFlag("library_path", rootCmd.PersistentFlags().Lookup("library"))
	_ = viper.BindPFlag("flip_style_rotate_first", rootCmd.PersistentFlags().Lookup("flip-rotate-first"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

func initConfig() {
	defaults := config.Defaults()
	viper.SetDefault("library_path", defaults.LibraryPath)
	viper.SetDefault("auto_reload", defaults.AutoReload)
	viper.SetDefault("auto_reload_debounce", defaults.AutoReloadDebounce)
	viper.SetDefault("flip_style_rotate_first", defaults.FlipStyleRotateFirst)
	viper.SetDefault("debug", defaults.Debug)
	viper.SetDefault("log_path", defaults.LogPath)
	viper.SetDefault("tracing.enabled", defaults.Tracing.Enabled)
	viper.SetDefault("tracing.exporter", defaults.Tracing.Exporter)
	viper.SetDefault("tracing.file_path", defaults.Tracing.FilePath)
	viper.SetDefault("tracing.otlp_endpoint", defaults.Tracing.OTLPEndpoint)
	viper.SetDefault("tracing.sample_rate", defaults.Tracing.SampleRate)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .placer/config.yaml (current directory)
		// 2. ~/.config/placer/config.yaml (user config)
		if _, err := os.Stat(".placer/config.yaml"); err == nil {
			viper.SetConfigFile(".placer/config.yaml")
		} else {
			home, _ := os.UserHomeDir()
			viper.AddConfigPath(filepath.Join(home, ".config", "placer"))
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "reading config: %v\n", err)
		}
		// Missing config file: continue with defaults.
	}

	_ = viper.Unmarshal(&cfg)

	if noReload, _ := rootCmd.PersistentFlags().GetBool("no-auto-reload"); noReload {
		cfg.AutoReload = false
	}
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
